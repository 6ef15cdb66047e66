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

// Package yuv converts between 4:2:0 chroma-subsampled YCbCr pixel
// layouts and packed RGB, using integer fixed-point colorimetry.
//
// Supported layouts are planar YUV420 (I420), the semi-planar NV12 and
// NV21 variants, packed RGB24 and packed RGBA32. Each conversion exists
// in three variants: a portable scalar reference kernel, a vectorized
// kernel built on go-highway, and a vectorized kernel that additionally
// requires 16-byte aligned plane bases and strides. All three produce
// byte-identical output; the variants differ only in throughput.
//
// Pixel data is exchanged through caller-owned Plane descriptors. The
// engine never allocates plane memory, performs no I/O, and keeps no
// state between calls, so distinct frames (or disjoint horizontal
// strips of one frame) may be converted concurrently.
//
// Basic usage:
//
//	y, u, v := ...   // yuv.Plane descriptors over caller buffers
//	rgb := ...       // width*height*3 bytes, stride >= width*3
//	if err := yuv.YUV420ToRGB24(y, u, v, rgb, yuv.BT601); err != nil {
//		...
//	}
//
// The package-level conversion functions select a kernel variant from
// measured buffer alignment; Kernels gives explicit control.
package yuv
