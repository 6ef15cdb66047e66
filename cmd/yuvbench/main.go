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

// Command yuvbench converts a single image between YUV 4:2:0 and RGB
// with every kernel variant, timing each one and writing its output so
// the results can be diffed.
//
// Usage:
//
//	yuvbench -mode yuv2rgb -in frame.yuv -width 1280 -height 720 -out frame.ppm
//	yuvbench -mode rgb2yuv -in image.ppm -out image.yuv
//	yuvbench -mode rgba2yuv -in image.png -std bt709 -iters 200 -out image.yuv
//
// Raw .yuv input and output is headerless planar I420. RGB input may
// be PPM, PNG, or BMP, selected by file extension; RGB output is PPM.
// Each variant writes <out base>_<variant><ext>.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/image/bmp"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-yuv/internal/memalign"
	"github.com/ajroetker/go-yuv/ppm"
	"github.com/ajroetker/go-yuv/rawyuv"
	"github.com/ajroetker/go-yuv/yuv"
)

var (
	inPath  = flag.String("in", "", "Input file (required)")
	outPath = flag.String("out", "", "Output file base path (required)")
	width   = flag.Int("width", 0, "Frame width, required for raw .yuv input")
	height  = flag.Int("height", 0, "Frame height, required for raw .yuv input")
	mode    = flag.String("mode", "yuv2rgb", "Conversion mode (yuv2rgb, yuv2rgb_nv12, yuv2rgb_nv21, rgb2yuv, rgba2yuv)")
	stdName = flag.String("std", "bt601", "Color standard (bt601, bt709, jpeg)")
	iters   = flag.Int("iters", 100, "Timed conversion iterations per variant")
	cpuInfo = flag.Bool("cpuinfo", false, "Print CPU feature flags before converting")
)

var variants = []yuv.Variant{yuv.VariantScalar, yuv.VariantVector, yuv.VariantVectorAligned}

func main() {
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -in and -out flags are required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	std, err := parseStandard(*stdName)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("simd target: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
	if *cpuInfo {
		printCPUInfo()
	}

	switch *mode {
	case "yuv2rgb", "yuv2rgb_nv12", "yuv2rgb_nv21":
		err = runForward(*mode, std)
	case "rgb2yuv", "rgba2yuv":
		err = runInverse(*mode, std)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func parseStandard(name string) (yuv.ColorStandard, error) {
	switch name {
	case "bt601":
		return yuv.BT601, nil
	case "bt709":
		return yuv.BT709, nil
	case "jpeg":
		return yuv.JPEGFullRange, nil
	}
	return 0, fmt.Errorf("unknown color standard %q", name)
}

// alignedCopy re-homes a plane into a 16-byte aligned buffer with a
// padded stride so the vector_aligned variant can run on it.
func alignedCopy(p *yuv.Plane, bpp int) *yuv.Plane {
	stride := memalign.PadStride(p.Width * bpp)
	out := &yuv.Plane{
		Pix:    memalign.Alloc(stride * p.Height),
		Width:  p.Width,
		Height: p.Height,
		Stride: stride,
	}
	for y := 0; y < p.Height; y++ {
		copy(out.Pix[y*stride:y*stride+p.Width*bpp], p.Pix[y*p.Stride:])
	}
	return out
}

func alignedBlank(w, h, bpp int) *yuv.Plane {
	stride := memalign.PadStride(w * bpp)
	return &yuv.Plane{Pix: memalign.Alloc(stride * h), Width: w, Height: h, Stride: stride}
}

// interleaveUV builds the semi-planar chroma plane from planar U and
// V, with cb first for NV12 and cr first for NV21.
func interleaveUV(u, v *yuv.Plane, vuOrder bool) *yuv.Plane {
	first, second := u, v
	if vuOrder {
		first, second = v, u
	}
	uv := alignedBlank(u.Width, u.Height, 2)
	for y := 0; y < u.Height; y++ {
		row := uv.Pix[y*uv.Stride:]
		for x := 0; x < u.Width; x++ {
			row[x*2] = first.Pix[y*first.Stride+x]
			row[x*2+1] = second.Pix[y*second.Stride+x]
		}
	}
	return uv
}

func runForward(mode string, std yuv.ColorStandard) error {
	w, h := *width, *height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("-width and -height are required for raw YUV input")
	}
	f, err := os.Open(*inPath)
	if err != nil {
		return err
	}
	y, u, v, err := rawyuv.Read(f, w, h)
	f.Close()
	if err != nil {
		return err
	}
	y = alignedCopy(y, 1)
	u = alignedCopy(u, 1)
	v = alignedCopy(v, 1)

	for _, variant := range variants {
		conv := yuv.Kernels(variant)
		rgb := alignedBlank(w, h, 3)
		var nv *yuv.Plane
		switch mode {
		case "yuv2rgb_nv12":
			nv = interleaveUV(u, v, false)
		case "yuv2rgb_nv21":
			nv = interleaveUV(u, v, true)
		}
		run := func() error {
			switch mode {
			case "yuv2rgb_nv12":
				return conv.NV12ToRGB24(y, nv, rgb, std)
			case "yuv2rgb_nv21":
				return conv.NV21ToRGB24(y, nv, rgb, std)
			}
			return conv.YUV420ToRGB24(y, u, v, rgb, std)
		}
		if err := timeVariant(variant, int64(w*h*3), run); err != nil {
			return err
		}

		path := variantPath(*outPath, variant)
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := ppm.Encode(out, rgb); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", path)
	}
	return nil
}

func runInverse(mode string, std yuv.ColorStandard) error {
	rgb, err := loadRGB(*inPath)
	if err != nil {
		return err
	}
	bpp := 3
	if mode == "rgba2yuv" {
		rgb = widenToRGBA(rgb)
		bpp = 4
	}
	rgb = alignedCopy(rgb, bpp)

	w, h := rgb.Width, rgb.Height
	cw, ch := yuv.ChromaDims(w, h)
	for _, variant := range variants {
		conv := yuv.Kernels(variant)
		y := alignedBlank(w, h, 1)
		u := alignedBlank(cw, ch, 1)
		v := alignedBlank(cw, ch, 1)
		run := func() error {
			if bpp == 4 {
				return conv.RGBA32ToYUV420(rgb, y, u, v, std)
			}
			return conv.RGB24ToYUV420(rgb, y, u, v, std)
		}
		if err := timeVariant(variant, int64(w*h*bpp), run); err != nil {
			return err
		}

		path := variantPath(*outPath, variant)
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := rawyuv.Write(out, y, u, v); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", path)
	}
	return nil
}

func timeVariant(variant yuv.Variant, bytesPerFrame int64, run func() error) error {
	start := time.Now()
	for i := 0; i < *iters; i++ {
		if err := run(); err != nil {
			return fmt.Errorf("%s: %w", variant, err)
		}
	}
	elapsed := time.Since(start)
	perFrame := elapsed / time.Duration(*iters)
	mbps := float64(bytesPerFrame) * float64(*iters) / elapsed.Seconds() / (1 << 20)
	fmt.Printf("%-15s %3d iters  %10v/frame  %8.1f MiB/s\n", variant, *iters, perFrame, mbps)
	return nil
}

func variantPath(base string, variant yuv.Variant) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(base, ext), variant, ext)
}

// loadRGB reads a PPM, PNG, or BMP file into a packed RGB24 plane.
func loadRGB(path string) (*yuv.Plane, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return ppm.Decode(f)
	case ".png":
		img, err := png.Decode(f)
		if err != nil {
			return nil, err
		}
		return imageToRGB24(img), nil
	case ".bmp":
		img, err := bmp.Decode(f)
		if err != nil {
			return nil, err
		}
		return imageToRGB24(img), nil
	}
	return nil, fmt.Errorf("unsupported input format %q", filepath.Ext(path))
}

func imageToRGB24(img image.Image) *yuv.Plane {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p := &yuv.Plane{Pix: make([]byte, w*h*3), Width: w, Height: h, Stride: w * 3}
	for y := 0; y < h; y++ {
		row := p.Pix[y*p.Stride:]
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x*3] = byte(r >> 8)
			row[x*3+1] = byte(g >> 8)
			row[x*3+2] = byte(bl >> 8)
		}
	}
	return p
}

func widenToRGBA(rgb *yuv.Plane) *yuv.Plane {
	out := &yuv.Plane{
		Pix:    make([]byte, rgb.Width*rgb.Height*4),
		Width:  rgb.Width,
		Height: rgb.Height,
		Stride: rgb.Width * 4,
	}
	for y := 0; y < rgb.Height; y++ {
		src := rgb.Pix[y*rgb.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < rgb.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xFF
		}
	}
	return out
}

func printCPUInfo() {
	fmt.Printf("cpu: x86 sse4.2=%v avx=%v avx2=%v avx512f=%v  arm64 asimd=%v\n",
		cpu.X86.HasSSE42, cpu.X86.HasAVX, cpu.X86.HasAVX2, cpu.X86.HasAVX512F,
		cpu.ARM64.HasASIMD)
}
