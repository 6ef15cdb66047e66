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

import "github.com/ajroetker/go-highway/hwy"

// Vector kernels built on go-highway int32 lanes. All fixed-point
// arithmetic matches the scalar kernels operation for operation, and
// column tails fall through to the scalar span helpers, so the two
// paths produce byte-identical output on every input.

// maxLanes32 bounds the staging arrays. No current target exceeds 16
// int32 lanes (512-bit vectors).
const maxLanes32 = 16

// vecBlock returns the column step of the vector loops. It is forced
// even so each block consumes whole chroma samples.
func vecBlock() int {
	b := hwy.MaxLanes[int32]()
	if b > maxLanes32 {
		b = maxLanes32
	}
	return b &^ 1
}

func forwardSpanVec(c *forwardCoeff, y0, y1, cbRow, crRow []byte, chromaStep int, rgb0, rgb1 []byte, w int) {
	block := vecBlock()
	if block < 2 {
		forwardSpan(c, y0, y1, cbRow, crRow, chromaStep, rgb0, rgb1, 0, w)
		return
	}
	half := block / 2

	crToR := hwy.Set(c.crToR)
	cbToG := hwy.Set(c.cbToG)
	crToG := hwy.Set(c.crToG)
	cbToB := hwy.Set(c.cbToB)
	yScale := hwy.Set(c.yScale)
	yOffset := hwy.Set(c.yOffset)
	roundC := hwy.Set[int32](1 << (chromaBits - 1))
	roundL := hwy.Set[int32](1 << (lumaBits - 1))
	zero := hwy.Set[int32](0)
	hi := hwy.Set[int32](255)

	var cbArr, crArr, lumaArr [maxLanes32]int32
	var pixArr [3 * maxLanes32]int32

	x := 0
	for ; x+block <= w; x += block {
		for i := 0; i < half; i++ {
			ci := ((x >> 1) + i) * chromaStep
			cbArr[i] = int32(cbRow[ci]) - 128
			crArr[i] = int32(crRow[ci]) - 128
		}
		// InterleaveLower draws from the lower half of a full-width
		// vector, so the half block of offsets must be loaded at
		// block length; the stale upper lanes never reach the output.
		cb := hwy.Load(cbArr[:block])
		cr := hwy.Load(crArr[:block])
		rOff := hwy.ShiftRight(hwy.Add(hwy.Mul(crToR, cr), roundC), chromaBits)
		gOff := hwy.ShiftRight(hwy.Add(hwy.Add(hwy.Mul(cbToG, cb), hwy.Mul(crToG, cr)), roundL), lumaBits)
		bOff := hwy.ShiftRight(hwy.Add(hwy.Mul(cbToB, cb), roundC), chromaBits)

		// Each chroma offset covers a 2x1 pair of luma columns.
		rOff = hwy.InterleaveLower(rOff, rOff)
		gOff = hwy.InterleaveLower(gOff, gOff)
		bOff = hwy.InterleaveLower(bOff, bOff)

		for i := 0; i < block; i++ {
			lumaArr[i] = int32(y0[x+i])
		}
		luma := hwy.ShiftRight(hwy.Add(hwy.Mul(yScale, hwy.Sub(hwy.Load(lumaArr[:block]), yOffset)), roundL), lumaBits)
		r := hwy.Clamp(hwy.Add(luma, rOff), zero, hi)
		g := hwy.Clamp(hwy.Sub(luma, gOff), zero, hi)
		b := hwy.Clamp(hwy.Add(luma, bOff), zero, hi)
		hwy.StoreInterleaved3(r, g, b, pixArr[:3*block])
		dst := rgb0[x*3:]
		for i := 0; i < 3*block; i++ {
			dst[i] = byte(pixArr[i])
		}

		if y1 != nil {
			for i := 0; i < block; i++ {
				lumaArr[i] = int32(y1[x+i])
			}
			luma = hwy.ShiftRight(hwy.Add(hwy.Mul(yScale, hwy.Sub(hwy.Load(lumaArr[:block]), yOffset)), roundL), lumaBits)
			r = hwy.Clamp(hwy.Add(luma, rOff), zero, hi)
			g = hwy.Clamp(hwy.Sub(luma, gOff), zero, hi)
			b = hwy.Clamp(hwy.Add(luma, bOff), zero, hi)
			hwy.StoreInterleaved3(r, g, b, pixArr[:3*block])
			dst = rgb1[x*3:]
			for i := 0; i < 3*block; i++ {
				dst[i] = byte(pixArr[i])
			}
		}
	}
	if x < w {
		forwardSpan(c, y0, y1, cbRow, crRow, chromaStep, rgb0, rgb1, x, w)
	}
}

func inverseSpanVec(c *inverseCoeff, rgb0, rgb1 []byte, bpp int, y0, y1, uRow, vRow []byte, w int) {
	block := vecBlock()
	if block < 2 {
		inverseSpan(c, rgb0, rgb1, bpp, y0, y1, uRow, vRow, 0, w)
		return
	}

	rToY := hwy.Set(c.rToY)
	gToY := hwy.Set(c.gToY)
	bToY := hwy.Set(c.bToY)
	bToCb := hwy.Set(c.bToCb)
	rToCr := hwy.Set(c.rToCr)
	yScale := hwy.Set(c.yScale)
	yOffset := hwy.Set(c.yOffset)
	roundW := hwy.Set[int32](1 << (weightBits - 1))
	roundL := hwy.Set[int32](1 << (lumaBits - 1))
	bias := hwy.Set[int32](128)
	zero := hwy.Set[int32](0)
	hi := hwy.Set[int32](255)

	var pixArr [3 * maxLanes32]int32
	var outArr, uArr, vArr [maxLanes32]int32

	loadRGB := func(row []byte, x int) (hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32]) {
		for i := 0; i < block; i++ {
			p := row[(x+i)*bpp:]
			pixArr[3*i] = int32(p[0])
			pixArr[3*i+1] = int32(p[1])
			pixArr[3*i+2] = int32(p[2])
		}
		return hwy.LoadInterleaved3(pixArr[:3*block])
	}

	x := 0
	for ; x+block <= w; x += block {
		r, g, b := loadRGB(rgb0, x)
		luma := hwy.ShiftRight(hwy.Add(hwy.Add(hwy.Mul(rToY, r), hwy.Mul(gToY, g)), hwy.Add(hwy.Mul(bToY, b), roundW)), weightBits)
		yOut := hwy.Clamp(hwy.Add(hwy.ShiftRight(hwy.Add(hwy.Mul(yScale, luma), roundL), lumaBits), yOffset), zero, hi)
		hwy.Store(yOut, outArr[:block])
		for i := 0; i < block; i++ {
			y0[x+i] = byte(outArr[i])
		}

		uAll := hwy.Clamp(hwy.Add(hwy.ShiftRight(hwy.Add(hwy.Mul(bToCb, hwy.Sub(b, luma)), roundW), weightBits), bias), zero, hi)
		vAll := hwy.Clamp(hwy.Add(hwy.ShiftRight(hwy.Add(hwy.Mul(rToCr, hwy.Sub(r, luma)), roundW), weightBits), bias), zero, hi)
		hwy.Store(uAll, uArr[:block])
		hwy.Store(vAll, vArr[:block])
		// Chroma keeps only the even lanes, the top-left pixel of
		// each 2x2 block.
		for i := 0; i < block; i += 2 {
			uRow[(x+i)>>1] = byte(uArr[i])
			vRow[(x+i)>>1] = byte(vArr[i])
		}

		if y1 != nil {
			r, g, b = loadRGB(rgb1, x)
			luma = hwy.ShiftRight(hwy.Add(hwy.Add(hwy.Mul(rToY, r), hwy.Mul(gToY, g)), hwy.Add(hwy.Mul(bToY, b), roundW)), weightBits)
			yOut = hwy.Clamp(hwy.Add(hwy.ShiftRight(hwy.Add(hwy.Mul(yScale, luma), roundL), lumaBits), yOffset), zero, hi)
			hwy.Store(yOut, outArr[:block])
			for i := 0; i < block; i++ {
				y1[x+i] = byte(outArr[i])
			}
		}
	}
	if x < w {
		inverseSpan(c, rgb0, rgb1, bpp, y0, y1, uRow, vRow, x, w)
	}
}

// vectorKernels implements Converter with the vector spans. With
// requireAligned set it enforces the 16-byte contract of the aligned
// entry points before touching pixel data.
type vectorKernels struct {
	requireAligned bool
}

func (k vectorKernels) YUV420ToRGB24(y, u, v, rgb *Plane, std ColorStandard) error {
	c, err := forwardCoeffs(std)
	if err != nil {
		return err
	}
	if err := validateForwardPlanar(y, u, v, rgb, 3); err != nil {
		return err
	}
	if k.requireAligned {
		if err := requireAligned16(y, u, v, rgb); err != nil {
			return err
		}
	}
	runForwardPlanar(c, y, u, v, rgb, forwardSpanVec)
	return nil
}

func (k vectorKernels) NV12ToRGB24(y, uv, rgb *Plane, std ColorStandard) error {
	return semiPlanarToRGB24(y, uv, rgb, std, false, k.requireAligned, forwardSpanVec)
}

func (k vectorKernels) NV21ToRGB24(y, uv, rgb *Plane, std ColorStandard) error {
	return semiPlanarToRGB24(y, uv, rgb, std, true, k.requireAligned, forwardSpanVec)
}

func (k vectorKernels) RGB24ToYUV420(rgb, y, u, v *Plane, std ColorStandard) error {
	return packedToYUV420(rgb, y, u, v, std, 3, k.requireAligned, inverseSpanVec)
}

func (k vectorKernels) RGBA32ToYUV420(rgba, y, u, v *Plane, std ColorStandard) error {
	return packedToYUV420(rgba, y, u, v, std, 4, k.requireAligned, inverseSpanVec)
}
