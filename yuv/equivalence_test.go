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

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ajroetker/go-yuv/internal/memalign"
)

// Widths cover vector blocks, partial tails, and sub-block images.
var eqWidths = []int{1, 2, 3, 7, 8, 15, 16, 17, 31, 32, 33, 100}
var eqHeights = []int{1, 2, 3, 5, 8, 17}

// alignedPlane allocates a plane satisfying the vector_aligned
// contract: 16-byte base address and a padded 16-byte-multiple stride.
func alignedPlane(w, h, bpp int) *Plane {
	stride := memalign.PadStride(w * bpp)
	return &Plane{Pix: memalign.Alloc(stride * h), Width: w, Height: h, Stride: stride}
}

func copyPlane(dst, src *Plane, bpp int) {
	for y := 0; y < src.Height; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+src.Width*bpp], src.Pix[y*src.Stride:])
	}
}

func planesEqual(a, b *Plane, bpp int) bool {
	for y := 0; y < a.Height; y++ {
		ra := a.Pix[y*a.Stride : y*a.Stride+a.Width*bpp]
		rb := b.Pix[y*b.Stride : y*b.Stride+b.Width*bpp]
		if !bytes.Equal(ra, rb) {
			return false
		}
	}
	return true
}

func TestForwardVariantEquivalence(t *testing.T) {
	scalar := Kernels(VariantScalar)
	vector := Kernels(VariantVector)
	aligned := Kernels(VariantVectorAligned)
	for _, std := range allStandards {
		for _, w := range eqWidths {
			for _, h := range eqHeights {
				t.Run(fmt.Sprintf("%s_%dx%d", std, w, h), func(t *testing.T) {
					y, u, v := newYUVPlanes(w, h)
					fillPattern(y, 1)
					fillPattern(u, 2)
					fillPattern(v, 3)

					want := newPlane(w, h, 3)
					if err := scalar.YUV420ToRGB24(y, u, v, want, std); err != nil {
						t.Fatalf("scalar: %v", err)
					}
					got := newPlane(w, h, 3)
					if err := vector.YUV420ToRGB24(y, u, v, got, std); err != nil {
						t.Fatalf("vector: %v", err)
					}
					if !bytes.Equal(want.Pix, got.Pix) {
						t.Fatal("vector output differs from scalar output")
					}

					cw, ch := ChromaDims(w, h)
					ay := alignedPlane(w, h, 1)
					au := alignedPlane(cw, ch, 1)
					av := alignedPlane(cw, ch, 1)
					copyPlane(ay, y, 1)
					copyPlane(au, u, 1)
					copyPlane(av, v, 1)
					aout := alignedPlane(w, h, 3)
					if err := aligned.YUV420ToRGB24(ay, au, av, aout, std); err != nil {
						t.Fatalf("aligned: %v", err)
					}
					if !planesEqual(want, aout, 3) {
						t.Fatal("aligned output differs from scalar output")
					}
				})
			}
		}
	}
}

func TestSemiPlanarVariantEquivalence(t *testing.T) {
	scalar := Kernels(VariantScalar)
	vector := Kernels(VariantVector)
	for _, w := range eqWidths {
		h := 9
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			cw, ch := ChromaDims(w, h)
			y := newPlane(w, h, 1)
			uv := newPlane(cw, ch, 2)
			fillPattern(y, 1)
			fillPattern(uv, 4)

			want := newPlane(w, h, 3)
			got := newPlane(w, h, 3)
			if err := scalar.NV12ToRGB24(y, uv, want, BT601); err != nil {
				t.Fatalf("scalar nv12: %v", err)
			}
			if err := vector.NV12ToRGB24(y, uv, got, BT601); err != nil {
				t.Fatalf("vector nv12: %v", err)
			}
			if !bytes.Equal(want.Pix, got.Pix) {
				t.Fatal("NV12 vector output differs from scalar output")
			}

			if err := scalar.NV21ToRGB24(y, uv, want, BT709); err != nil {
				t.Fatalf("scalar nv21: %v", err)
			}
			if err := vector.NV21ToRGB24(y, uv, got, BT709); err != nil {
				t.Fatalf("vector nv21: %v", err)
			}
			if !bytes.Equal(want.Pix, got.Pix) {
				t.Fatal("NV21 vector output differs from scalar output")
			}
		})
	}
}

func TestInverseVariantEquivalence(t *testing.T) {
	scalar := Kernels(VariantScalar)
	vector := Kernels(VariantVector)
	for _, std := range allStandards {
		for _, w := range eqWidths {
			for _, h := range []int{1, 4, 7, 16} {
				t.Run(fmt.Sprintf("%s_%dx%d", std, w, h), func(t *testing.T) {
					for _, bpp := range []int{3, 4} {
						rgb := newPlane(w, h, bpp)
						fillPattern(rgb, byte(bpp))

						wy, wu, wv := newYUVPlanes(w, h)
						gy, gu, gv := newYUVPlanes(w, h)
						var err1, err2 error
						if bpp == 3 {
							err1 = scalar.RGB24ToYUV420(rgb, wy, wu, wv, std)
							err2 = vector.RGB24ToYUV420(rgb, gy, gu, gv, std)
						} else {
							err1 = scalar.RGBA32ToYUV420(rgb, wy, wu, wv, std)
							err2 = vector.RGBA32ToYUV420(rgb, gy, gu, gv, std)
						}
						if err1 != nil || err2 != nil {
							t.Fatalf("bpp=%d: scalar err %v, vector err %v", bpp, err1, err2)
						}
						if !bytes.Equal(wy.Pix, gy.Pix) || !bytes.Equal(wu.Pix, gu.Pix) || !bytes.Equal(wv.Pix, gv.Pix) {
							t.Fatalf("bpp=%d: vector output differs from scalar output", bpp)
						}
					}
				})
			}
		}
	}
}
