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

import "errors"

// All conversion failures wrap one of these sentinel errors. They are
// detected before the first pixel is processed, so a failing call never
// performs partial writes to its output planes.
var (
	// ErrUnsupportedStandard is returned for a ColorStandard outside
	// the supported set. There is no silent fallback.
	ErrUnsupportedStandard = errors.New("yuv: unsupported color standard")

	// ErrInvalidGeometry is returned for zero dimensions, strides
	// smaller than the packed row size, undersized buffers, or chroma
	// planes not sized (w+1)/2 x (h+1)/2.
	ErrInvalidGeometry = errors.New("yuv: invalid plane geometry")

	// ErrDimensionMismatch is returned when input and output declare
	// different image dimensions.
	ErrDimensionMismatch = errors.New("yuv: input/output dimension mismatch")

	// ErrAlignmentViolation is returned by the aligned kernel variant
	// when a plane base address or stride is not 16-byte aligned.
	ErrAlignmentViolation = errors.New("yuv: aligned kernel requires 16-byte aligned planes")
)
