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

// Row-pair drivers. Each walks an image two luma rows at a time with a
// shared chroma row, resolving plane strides into per-row slices before
// handing off to a span function. The span functions receive nil for
// the second row on the unpaired last row of an odd-height image.

type forwardSpanFunc func(c *forwardCoeff, y0, y1, cbRow, crRow []byte, chromaStep int, rgb0, rgb1 []byte, w int)

type inverseSpanFunc func(c *inverseCoeff, rgb0, rgb1 []byte, bpp int, y0, y1, uRow, vRow []byte, w int)

func runForwardPlanar(c *forwardCoeff, y, u, v, rgb *Plane, span forwardSpanFunc) {
	w, h := y.Width, y.Height
	for ry := 0; ry < h; ry += 2 {
		y0 := y.row(ry, 1)
		rgb0 := rgb.row(ry, 3)
		var y1, rgb1 []byte
		if ry+1 < h {
			y1 = y.row(ry+1, 1)
			rgb1 = rgb.row(ry+1, 3)
		}
		span(c, y0, y1, u.row(ry>>1, 1), v.row(ry>>1, 1), 1, rgb0, rgb1, w)
	}
}

func runForwardSemi(c *forwardCoeff, y, uv, rgb *Plane, vuOrder bool, span forwardSpanFunc) {
	w, h := y.Width, y.Height
	for ry := 0; ry < h; ry += 2 {
		y0 := y.row(ry, 1)
		rgb0 := rgb.row(ry, 3)
		var y1, rgb1 []byte
		if ry+1 < h {
			y1 = y.row(ry+1, 1)
			rgb1 = rgb.row(ry+1, 3)
		}
		uvRow := uv.row(ry>>1, 2)
		cbRow, crRow := uvRow, uvRow[1:]
		if vuOrder {
			cbRow, crRow = crRow, cbRow
		}
		span(c, y0, y1, cbRow, crRow, 2, rgb0, rgb1, w)
	}
}

func runInverse(c *inverseCoeff, rgb, y, u, v *Plane, bpp int, span inverseSpanFunc) {
	w, h := rgb.Width, rgb.Height
	for ry := 0; ry < h; ry += 2 {
		rgb0 := rgb.row(ry, bpp)
		y0 := y.row(ry, 1)
		var rgb1, y1 []byte
		if ry+1 < h {
			rgb1 = rgb.row(ry+1, bpp)
			y1 = y.row(ry+1, 1)
		}
		span(c, rgb0, rgb1, bpp, y0, y1, u.row(ry>>1, 1), v.row(ry>>1, 1), w)
	}
}

// semiPlanarToRGB24 and packedToYUV420 hold the validate-then-run shape
// shared by scalar and vector kernels. aligned demands 16-byte plane
// alignment, the contract of the vector_aligned variant.
func semiPlanarToRGB24(y, uv, rgb *Plane, std ColorStandard, vuOrder, aligned bool, span forwardSpanFunc) error {
	c, err := forwardCoeffs(std)
	if err != nil {
		return err
	}
	if err := validateForwardSemiPlanar(y, uv, rgb, 3); err != nil {
		return err
	}
	if aligned {
		if err := requireAligned16(y, uv, rgb); err != nil {
			return err
		}
	}
	runForwardSemi(c, y, uv, rgb, vuOrder, span)
	return nil
}

func packedToYUV420(rgb, y, u, v *Plane, std ColorStandard, bpp int, aligned bool, span inverseSpanFunc) error {
	c, err := inverseCoeffs(std)
	if err != nil {
		return err
	}
	if err := validateInverse(rgb, y, u, v, bpp); err != nil {
		return err
	}
	if aligned {
		if err := requireAligned16(rgb, y, u, v); err != nil {
			return err
		}
	}
	runInverse(c, rgb, y, u, v, bpp, span)
	return nil
}
