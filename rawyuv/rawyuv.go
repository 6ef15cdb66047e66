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

// Package rawyuv handles headerless planar I420 frames: a full-size Y
// plane followed by quarter-size U and V planes, each tightly packed.
package rawyuv

import (
	"fmt"
	"io"

	"github.com/ajroetker/go-yuv/yuv"
)

// FrameSize returns the byte size of a raw I420 frame.
func FrameSize(w, h int) int {
	cw, ch := yuv.ChromaDims(w, h)
	return w*h + 2*cw*ch
}

// Split views buf as the three planes of an I420 frame without
// copying. The returned planes alias buf.
func Split(buf []byte, w, h int) (y, u, v *yuv.Plane, err error) {
	if w <= 0 || h <= 0 {
		return nil, nil, nil, fmt.Errorf("rawyuv: invalid frame size %dx%d", w, h)
	}
	if len(buf) < FrameSize(w, h) {
		return nil, nil, nil, fmt.Errorf("rawyuv: frame buffer is %d bytes, need %d for %dx%d", len(buf), FrameSize(w, h), w, h)
	}
	cw, ch := yuv.ChromaDims(w, h)
	ySize, cSize := w*h, cw*ch
	y = &yuv.Plane{Pix: buf[:ySize], Width: w, Height: h, Stride: w}
	u = &yuv.Plane{Pix: buf[ySize : ySize+cSize], Width: cw, Height: ch, Stride: cw}
	v = &yuv.Plane{Pix: buf[ySize+cSize : ySize+2*cSize], Width: cw, Height: ch, Stride: cw}
	return y, u, v, nil
}

// Read reads one raw I420 frame into freshly allocated planes.
func Read(r io.Reader, w, h int) (y, u, v *yuv.Plane, err error) {
	if w <= 0 || h <= 0 {
		return nil, nil, nil, fmt.Errorf("rawyuv: invalid frame size %dx%d", w, h)
	}
	buf := make([]byte, FrameSize(w, h))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, nil, nil, fmt.Errorf("rawyuv: reading %dx%d frame: %w", w, h, err)
	}
	return Split(buf, w, h)
}

// Write writes the planes as one raw I420 frame. Plane strides may be
// padded; only pixel bytes are written.
func Write(w io.Writer, y, u, v *yuv.Plane) error {
	cw, ch := yuv.ChromaDims(y.Width, y.Height)
	if u.Width != cw || u.Height != ch || v.Width != cw || v.Height != ch {
		return fmt.Errorf("rawyuv: chroma planes %dx%d, want %dx%d", u.Width, u.Height, cw, ch)
	}
	for _, p := range []*yuv.Plane{y, u, v} {
		for row := 0; row < p.Height; row++ {
			if _, err := w.Write(p.Pix[row*p.Stride : row*p.Stride+p.Width]); err != nil {
				return fmt.Errorf("rawyuv: writing frame: %w", err)
			}
		}
	}
	return nil
}
