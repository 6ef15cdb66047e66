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

// Package ppm reads and writes binary PPM (P6) images as RGB24 planes.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ajroetker/go-yuv/yuv"
)

// Encode writes p as a binary P6 image with maxval 255. Rows are
// written at their pixel width, so padded strides do not leak into the
// output.
func Encode(w io.Writer, p *yuv.Plane) error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("ppm: invalid image size %dx%d", p.Width, p.Height)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6 %d %d 255\n", p.Width, p.Height); err != nil {
		return err
	}
	rowBytes := p.Width * 3
	for y := 0; y < p.Height; y++ {
		if _, err := bw.Write(p.Pix[y*p.Stride : y*p.Stride+rowBytes]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// maxPixels bounds the pixel count Decode will allocate for, so a
// crafted header cannot demand an absurd buffer before any pixel data
// has been read. 2^26 pixels is a 192 MiB RGB24 image.
const maxPixels = 1 << 26

// Decode reads a binary P6 image into a tightly packed RGB24 plane.
// Whitespace and # comments between header tokens are accepted. Images
// declaring more than maxPixels pixels are rejected.
func Decode(r io.Reader) (*yuv.Plane, error) {
	br := bufio.NewReader(r)
	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading magic: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("ppm: unsupported magic %q", magic)
	}
	width, err := readInt(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading width: %w", err)
	}
	height, err := readInt(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading height: %w", err)
	}
	maxval, err := readInt(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading maxval: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ppm: invalid image size %dx%d", width, height)
	}
	if width > maxPixels || height > maxPixels/width {
		return nil, fmt.Errorf("ppm: image size %dx%d exceeds %d pixel limit", width, height, maxPixels)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("ppm: unsupported maxval %d", maxval)
	}

	pix := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, pix); err != nil {
		return nil, fmt.Errorf("ppm: reading pixel data: %w", err)
	}
	return &yuv.Plane{Pix: pix, Width: width, Height: height, Stride: width * 3}, nil
}

// readToken skips whitespace and # comments, then returns the next
// whitespace-delimited token. The single whitespace byte after the
// token is consumed, which is exactly the header/raster boundary rule
// of the P6 format.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#' && len(tok) == 0:
			inComment = true
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func readInt(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bad integer %q", tok)
		}
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			return 0, fmt.Errorf("integer %q out of range", tok)
		}
	}
	return n, nil
}
