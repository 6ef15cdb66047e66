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

import "fmt"

// Plane describes one caller-owned pixel plane. Width and Height count
// samples: pixels for luma and packed RGB planes, chroma columns for
// subsampled planes (a column of the interleaved NV12/NV21 plane is one
// Cb/Cr pair, two bytes). Stride is in bytes and may exceed the packed
// row size, e.g. for padding rows up to an alignment boundary.
//
// The engine only reads or writes through the descriptor; it never
// allocates or frees the underlying buffer.
type Plane struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// row returns the bytes of row y, trimmed to the packed row size.
func (p *Plane) row(y, bpp int) []byte {
	off := y * p.Stride
	return p.Pix[off : off+p.Width*bpp]
}

func (p *Plane) validate(name string, bpp int) error {
	if p == nil || p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %s plane has zero dimension", ErrInvalidGeometry, name)
	}
	rowBytes := p.Width * bpp
	if p.Stride < rowBytes {
		return fmt.Errorf("%w: %s stride %d < row size %d", ErrInvalidGeometry, name, p.Stride, rowBytes)
	}
	if need := (p.Height-1)*p.Stride + rowBytes; len(p.Pix) < need {
		return fmt.Errorf("%w: %s buffer has %d bytes, need %d", ErrInvalidGeometry, name, len(p.Pix), need)
	}
	return nil
}

// ChromaDims returns the 4:2:0 chroma plane dimensions for a luma
// plane of w x h: (w+1)/2 x (h+1)/2. The ceiling division is the
// layout invariant shared by every supported format; an odd right/
// bottom edge maps to a degenerate chroma block.
func ChromaDims(w, h int) (cw, ch int) {
	return (w + 1) / 2, (h + 1) / 2
}

func checkChroma(name string, luma, c *Plane) error {
	cw, ch := ChromaDims(luma.Width, luma.Height)
	if c.Width != cw || c.Height != ch {
		return fmt.Errorf("%w: %s plane is %dx%d, want %dx%d for %dx%d luma",
			ErrDimensionMismatch, name, c.Width, c.Height, cw, ch, luma.Width, luma.Height)
	}
	return nil
}

func checkSameSize(in, out *Plane) error {
	if in.Width != out.Width || in.Height != out.Height {
		return fmt.Errorf("%w: input %dx%d, output %dx%d",
			ErrDimensionMismatch, in.Width, in.Height, out.Width, out.Height)
	}
	return nil
}

// validateForwardPlanar checks the geometry of a YUV420 -> packed RGB
// conversion. All checks run before any pixel is touched.
func validateForwardPlanar(y, u, v, rgb *Plane, bpp int) error {
	if err := y.validate("Y", 1); err != nil {
		return err
	}
	if err := rgb.validate("RGB", bpp); err != nil {
		return err
	}
	if err := checkSameSize(y, rgb); err != nil {
		return err
	}
	if err := u.validate("U", 1); err != nil {
		return err
	}
	if err := v.validate("V", 1); err != nil {
		return err
	}
	if err := checkChroma("U", y, u); err != nil {
		return err
	}
	return checkChroma("V", y, v)
}

// validateForwardSemiPlanar checks NV12/NV21 -> packed RGB geometry.
func validateForwardSemiPlanar(y, uv, rgb *Plane, bpp int) error {
	if err := y.validate("Y", 1); err != nil {
		return err
	}
	if err := uv.validate("UV", 2); err != nil {
		return err
	}
	if err := rgb.validate("RGB", bpp); err != nil {
		return err
	}
	if err := checkSameSize(y, rgb); err != nil {
		return err
	}
	return checkChroma("UV", y, uv)
}

// validateInverse checks packed RGB/RGBA -> YUV420 geometry.
func validateInverse(rgb, y, u, v *Plane, bpp int) error {
	if err := rgb.validate("RGB", bpp); err != nil {
		return err
	}
	if err := y.validate("Y", 1); err != nil {
		return err
	}
	if err := checkSameSize(rgb, y); err != nil {
		return err
	}
	if err := u.validate("U", 1); err != nil {
		return err
	}
	if err := v.validate("V", 1); err != nil {
		return err
	}
	if err := checkChroma("U", y, u); err != nil {
		return err
	}
	return checkChroma("V", y, v)
}
