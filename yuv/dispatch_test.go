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
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

func TestAligned16(t *testing.T) {
	p := alignedPlane(32, 4, 1)
	if !Aligned16(p) {
		t.Error("aligned allocation reported misaligned")
	}

	off := &Plane{Pix: p.Pix[1:], Width: 31, Height: 4, Stride: p.Stride}
	if Aligned16(off) {
		t.Error("offset plane reported aligned")
	}

	oddStride := &Plane{Pix: p.Pix, Width: 7, Height: 4, Stride: 7}
	if Aligned16(oddStride) {
		t.Error("odd stride reported aligned")
	}

	if Aligned16(&Plane{}) {
		t.Error("empty plane reported aligned")
	}
}

func TestSelectVariant(t *testing.T) {
	if hwy.NoSimdEnv() {
		t.Skip("HWY_NO_SIMD set, selection is pinned to scalar")
	}
	a := alignedPlane(32, 4, 1)
	b := alignedPlane(32, 4, 3)
	if got := SelectVariant(a, b); got != VariantVectorAligned {
		t.Errorf("aligned planes: got %s, want vector_aligned", got)
	}

	off := &Plane{Pix: a.Pix[1:], Width: 31, Height: 4, Stride: a.Stride}
	if got := SelectVariant(a, off); got != VariantVector {
		t.Errorf("mixed alignment: got %s, want vector", got)
	}
}

func TestVariantString(t *testing.T) {
	cases := []struct {
		v    Variant
		want string
	}{
		{VariantScalar, "scalar"},
		{VariantVector, "vector"},
		{VariantVectorAligned, "vector_aligned"},
		{Variant(9), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("Variant(%d).String() = %q, want %q", int(tc.v), got, tc.want)
		}
	}
}
