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

// Variant names a kernel implementation. VariantVectorAligned is the
// vector path plus a 16-byte alignment contract on every plane; it
// fails with ErrAlignmentViolation instead of converting misaligned
// buffers.
type Variant int

const (
	VariantScalar Variant = iota
	VariantVector
	VariantVectorAligned
)

func (v Variant) String() string {
	switch v {
	case VariantScalar:
		return "scalar"
	case VariantVector:
		return "vector"
	case VariantVectorAligned:
		return "vector_aligned"
	}
	return "unknown"
}

// Converter converts between YUV 4:2:0 layouts and packed RGB. All
// methods validate geometry before writing and leave destination
// planes untouched on error. Implementations are stateless and safe
// for concurrent use.
type Converter interface {
	// YUV420ToRGB24 converts planar I420 to packed RGB24.
	YUV420ToRGB24(y, u, v, rgb *Plane, std ColorStandard) error
	// NV12ToRGB24 converts semi-planar YUV with interleaved UV pairs.
	NV12ToRGB24(y, uv, rgb *Plane, std ColorStandard) error
	// NV21ToRGB24 converts semi-planar YUV with interleaved VU pairs.
	NV21ToRGB24(y, uv, rgb *Plane, std ColorStandard) error
	// RGB24ToYUV420 converts packed RGB24 to planar I420.
	RGB24ToYUV420(rgb, y, u, v *Plane, std ColorStandard) error
	// RGBA32ToYUV420 converts packed RGBA to planar I420, ignoring alpha.
	RGBA32ToYUV420(rgba, y, u, v *Plane, std ColorStandard) error
}

// Kernels returns the Converter for an explicitly chosen variant.
func Kernels(v Variant) Converter {
	switch v {
	case VariantVector:
		return vectorKernels{}
	case VariantVectorAligned:
		return vectorKernels{requireAligned: true}
	}
	return scalarKernels{}
}

// Package-level functions pick the variant per call from the measured
// alignment of the planes involved.

// YUV420ToRGB24 converts planar I420 to packed RGB24.
func YUV420ToRGB24(y, u, v, rgb *Plane, std ColorStandard) error {
	return Kernels(SelectVariant(y, u, v, rgb)).YUV420ToRGB24(y, u, v, rgb, std)
}

// NV12ToRGB24 converts semi-planar NV12 to packed RGB24.
func NV12ToRGB24(y, uv, rgb *Plane, std ColorStandard) error {
	return Kernels(SelectVariant(y, uv, rgb)).NV12ToRGB24(y, uv, rgb, std)
}

// NV21ToRGB24 converts semi-planar NV21 to packed RGB24.
func NV21ToRGB24(y, uv, rgb *Plane, std ColorStandard) error {
	return Kernels(SelectVariant(y, uv, rgb)).NV21ToRGB24(y, uv, rgb, std)
}

// RGB24ToYUV420 converts packed RGB24 to planar I420.
func RGB24ToYUV420(rgb, y, u, v *Plane, std ColorStandard) error {
	return Kernels(SelectVariant(rgb, y, u, v)).RGB24ToYUV420(rgb, y, u, v, std)
}

// RGBA32ToYUV420 converts packed RGBA to planar I420. The alpha
// channel is read and discarded.
func RGBA32ToYUV420(rgba, y, u, v *Plane, std ColorStandard) error {
	return Kernels(SelectVariant(rgba, y, u, v)).RGBA32ToYUV420(rgba, y, u, v, std)
}
