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

package ppm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-yuv/yuv"
)

func TestEncodeDecode(t *testing.T) {
	const w, h = 5, 3
	p := &yuv.Plane{Pix: make([]byte, w*h*3), Width: w, Height: h, Stride: w * 3}
	for i := range p.Pix {
		p.Pix[i] = byte(i * 11)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("P6 5 3 255\n")) {
		t.Errorf("unexpected header: %q", buf.Bytes()[:11])
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeSkipsStridePadding(t *testing.T) {
	const w, h, stride = 2, 2, 16
	p := &yuv.Plane{Pix: make([]byte, stride*h), Width: w, Height: h, Stride: stride}
	for y := 0; y < h; y++ {
		for i := 0; i < w*3; i++ {
			p.Pix[y*stride+i] = byte(y*w*3 + i + 1)
		}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := append([]byte("P6 2 2 255\n"), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestDecodeHeaderForms(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6}
	headers := []string{
		"P6 2 1 255\n",
		"P6\n2 1\n255\n",
		"P6\n# a comment\n2 1\n# another\n255\n",
		"P6\t2\r\n1 255 ",
	}
	for _, hdr := range headers {
		got, err := Decode(strings.NewReader(hdr + string(pix)))
		if err != nil {
			t.Errorf("header %q: %v", hdr, err)
			continue
		}
		if got.Width != 2 || got.Height != 1 || !bytes.Equal(got.Pix, pix) {
			t.Errorf("header %q: decoded %dx%d %v", hdr, got.Width, got.Height, got.Pix)
		}
	}
}

// A header declaring an absurd size must be rejected before the pixel
// buffer is allocated, not crash the process trying to allocate it.
func TestDecodeRejectsHugeDimensions(t *testing.T) {
	headers := []string{
		"P6 1073741823 1073741823 255\n",
		"P6 100000 100000 255\n",
		"P6 1 67108865 255\n",
	}
	for _, hdr := range headers {
		if _, err := Decode(strings.NewReader(hdr)); err == nil {
			t.Errorf("Decode(%q) succeeded, want size limit error", hdr)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []string{
		"P5 2 1 255\n\x01\x02",     // wrong magic
		"P6 2 1 65535\n",           // unsupported maxval
		"P6 0 1 255\n",             // zero width
		"P6 2 1 255\n\x01\x02\x03", // short pixel data
		"P6 two 1 255\n",           // non-numeric
	}
	for _, in := range cases {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", in)
		}
	}
}
