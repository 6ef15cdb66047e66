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

import "fmt"

// ColorStandard selects the colorimetry used by a conversion. It is
// chosen per call and never mutated.
type ColorStandard int

const (
	// BT601 is ITU-R BT.601 limited range: luma in [16,235], chroma in
	// [16,240].
	BT601 ColorStandard = iota

	// BT709 is ITU-R BT.709 limited range.
	BT709

	// JPEGFullRange is the full-range BT.601 variant used by JFIF:
	// luma and chroma both span [0,255].
	JPEGFullRange

	numStandards
)

func (s ColorStandard) String() string {
	switch s {
	case BT601:
		return "bt601"
	case BT709:
		return "bt709"
	case JPEGFullRange:
		return "jpeg"
	}
	return fmt.Sprintf("ColorStandard(%d)", int(s))
}

// colorimetry is the floating-point description of one standard. The
// green luma weight is implied: gY = 1 - redY - blueY.
type colorimetry struct {
	redY       float64 // luma weight of red (Rf)
	blueY      float64 // luma weight of blue (Bf)
	lumaMin    float64 // minimum luma code (YMin)
	lumaMax    float64 // maximum luma code (YMax)
	chromaSpan float64 // chroma code range (CbCrRange)
}

var colorimetries = [numStandards]colorimetry{
	BT601:         {redY: 0.299, blueY: 0.114, lumaMin: 16, lumaMax: 235, chromaSpan: 224},
	BT709:         {redY: 0.2126, blueY: 0.0722, lumaMin: 16, lumaMax: 235, chromaSpan: 224},
	JPEGFullRange: {redY: 0.299, blueY: 0.114, lumaMin: 0, lumaMax: 255, chromaSpan: 255},
}
