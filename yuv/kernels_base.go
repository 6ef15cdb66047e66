// Copyright 2026 go-yuv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yuv

// Scalar reference kernels. They define correctness: the vector kernels
// in kernels_simd.go must reproduce their output byte for byte, and use
// forwardSpan/inverseSpan directly for column tails so the fallback
// boundary cannot diverge.

func clampU8(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// forwardSpan converts columns [x0,w) of one luma row pair to packed
// RGB24. y1 and rgb1 are nil for the unpaired last row of an odd-height
// image. cbRow/crRow address chroma samples chromaStep bytes apart:
// step 1 for planar U/V rows, step 2 for the interleaved NV12/NV21 row
// (with cbRow/crRow offset into the pair).
func forwardSpan(c *forwardCoeff, y0, y1, cbRow, crRow []byte, chromaStep int, rgb0, rgb1 []byte, x0, w int) {
	for x := x0; x < w; x++ {
		ci := (x >> 1) * chromaStep
		cb := int32(cbRow[ci]) - 128
		cr := int32(crRow[ci]) - 128
		rOff := (c.crToR*cr + 1<<(chromaBits-1)) >> chromaBits
		gOff := (c.cbToG*cb + c.crToG*cr + 1<<(lumaBits-1)) >> lumaBits
		bOff := (c.cbToB*cb + 1<<(chromaBits-1)) >> chromaBits

		luma := (c.yScale*(int32(y0[x])-c.yOffset) + 1<<(lumaBits-1)) >> lumaBits
		p := rgb0[x*3:]
		p[0] = clampU8(luma + rOff)
		p[1] = clampU8(luma - gOff)
		p[2] = clampU8(luma + bOff)

		if y1 != nil {
			luma = (c.yScale*(int32(y1[x])-c.yOffset) + 1<<(lumaBits-1)) >> lumaBits
			p = rgb1[x*3:]
			p[0] = clampU8(luma + rOff)
			p[1] = clampU8(luma - gOff)
			p[2] = clampU8(luma + bOff)
		}
	}
}

// inverseSpan converts columns [x0,w) of one packed RGB row pair to
// luma rows plus one chroma row. bpp is 3 for RGB24 and 4 for RGBA32
// (the alpha byte is read past and discarded). Chroma is taken from the
// top-left pixel of each 2x2 block, the policy of the scalar reference;
// the degenerate blocks of an odd right column or bottom row reduce to
// whatever pixels exist, so the top-left sample is always present.
func inverseSpan(c *inverseCoeff, rgb0, rgb1 []byte, bpp int, y0, y1, uRow, vRow []byte, x0, w int) {
	for x := x0; x < w; x++ {
		p := rgb0[x*bpp:]
		r, g, b := int32(p[0]), int32(p[1]), int32(p[2])
		luma := (c.rToY*r + c.gToY*g + c.bToY*b + 1<<(weightBits-1)) >> weightBits
		y0[x] = clampU8(((c.yScale*luma+1<<(lumaBits-1))>>lumaBits) + c.yOffset)

		if x&1 == 0 {
			uRow[x>>1] = clampU8(((c.bToCb*(b-luma)+1<<(weightBits-1))>>weightBits) + 128)
			vRow[x>>1] = clampU8(((c.rToCr*(r-luma)+1<<(weightBits-1))>>weightBits) + 128)
		}

		if y1 != nil {
			p = rgb1[x*bpp:]
			luma = (c.rToY*int32(p[0]) + c.gToY*int32(p[1]) + c.bToY*int32(p[2]) + 1<<(weightBits-1)) >> weightBits
			y1[x] = clampU8(((c.yScale*luma+1<<(lumaBits-1))>>lumaBits) + c.yOffset)
		}
	}
}

// scalarKernels implements Converter with the reference kernels only.
type scalarKernels struct{}

func (scalarKernels) YUV420ToRGB24(y, u, v, rgb *Plane, std ColorStandard) error {
	c, err := forwardCoeffs(std)
	if err != nil {
		return err
	}
	if err := validateForwardPlanar(y, u, v, rgb, 3); err != nil {
		return err
	}
	runForwardPlanar(c, y, u, v, rgb, forwardSpanFull)
	return nil
}

func (scalarKernels) NV12ToRGB24(y, uv, rgb *Plane, std ColorStandard) error {
	return semiPlanarToRGB24(y, uv, rgb, std, false, false, forwardSpanFull)
}

func (scalarKernels) NV21ToRGB24(y, uv, rgb *Plane, std ColorStandard) error {
	return semiPlanarToRGB24(y, uv, rgb, std, true, false, forwardSpanFull)
}

func (scalarKernels) RGB24ToYUV420(rgb, y, u, v *Plane, std ColorStandard) error {
	return packedToYUV420(rgb, y, u, v, std, 3, false, inverseSpanFull)
}

func (scalarKernels) RGBA32ToYUV420(rgba, y, u, v *Plane, std ColorStandard) error {
	return packedToYUV420(rgba, y, u, v, std, 4, false, inverseSpanFull)
}

// forwardSpanFull and inverseSpanFull adapt the span helpers to the
// whole-row signature the adapter drivers expect.
func forwardSpanFull(c *forwardCoeff, y0, y1, cbRow, crRow []byte, chromaStep int, rgb0, rgb1 []byte, w int) {
	forwardSpan(c, y0, y1, cbRow, crRow, chromaStep, rgb0, rgb1, 0, w)
}

func inverseSpanFull(c *inverseCoeff, rgb0, rgb1 []byte, bpp int, y0, y1, uRow, vRow []byte, w int) {
	inverseSpan(c, rgb0, rgb1, bpp, y0, y1, uRow, vRow, 0, w)
}
