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

package main

import (
	"testing"

	"github.com/ajroetker/go-yuv/yuv"
)

func TestParseStandard(t *testing.T) {
	cases := []struct {
		in   string
		want yuv.ColorStandard
		ok   bool
	}{
		{"bt601", yuv.BT601, true},
		{"bt709", yuv.BT709, true},
		{"jpeg", yuv.JPEGFullRange, true},
		{"bt2020", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := parseStandard(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("parseStandard(%q): err = %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("parseStandard(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestVariantPath(t *testing.T) {
	cases := []struct {
		base string
		v    yuv.Variant
		want string
	}{
		{"out.ppm", yuv.VariantScalar, "out_scalar.ppm"},
		{"dir/frame.yuv", yuv.VariantVector, "dir/frame_vector.yuv"},
		{"noext", yuv.VariantVectorAligned, "noext_vector_aligned"},
	}
	for _, tc := range cases {
		if got := variantPath(tc.base, tc.v); got != tc.want {
			t.Errorf("variantPath(%q, %s) = %q, want %q", tc.base, tc.v, got, tc.want)
		}
	}
}

func TestInterleaveUV(t *testing.T) {
	u := &yuv.Plane{Pix: []byte{1, 2, 3, 4}, Width: 2, Height: 2, Stride: 2}
	v := &yuv.Plane{Pix: []byte{5, 6, 7, 8}, Width: 2, Height: 2, Stride: 2}

	nv12 := interleaveUV(u, v, false)
	for i, want := range map[int]byte{0: 1, 1: 5, 2: 2, 3: 6} {
		if nv12.Pix[i] != want {
			t.Errorf("nv12 byte %d = %d, want %d", i, nv12.Pix[i], want)
		}
	}
	nv21 := interleaveUV(u, v, true)
	if nv21.Pix[0] != 5 || nv21.Pix[1] != 1 {
		t.Errorf("nv21 first pair = (%d,%d), want (5,1)", nv21.Pix[0], nv21.Pix[1])
	}
}
