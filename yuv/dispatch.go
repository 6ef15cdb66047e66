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
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// vectorAlign is the byte alignment the aligned vector entry points
// demand of every plane base pointer and stride.
const vectorAlign = 16

// Aligned16 reports whether the plane's backing array starts on a
// 16-byte boundary and its stride preserves that alignment row to row.
func Aligned16(p *Plane) bool {
	if len(p.Pix) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(&p.Pix[0]))
	return addr%vectorAlign == 0 && p.Stride%vectorAlign == 0
}

func requireAligned16(planes ...*Plane) error {
	for _, p := range planes {
		if !Aligned16(p) {
			return fmt.Errorf("%w: plane not %d-byte aligned", ErrAlignmentViolation, vectorAlign)
		}
	}
	return nil
}

// SelectVariant picks the kernel variant for a set of planes. The
// decision is driven by measured buffer alignment, never by CPU
// capability probing: the vector kernels run on every target through
// their portable fallback, so the only question is whether the aligned
// entry points are safe. Setting HWY_NO_SIMD forces the scalar path.
func SelectVariant(planes ...*Plane) Variant {
	if hwy.NoSimdEnv() {
		return VariantScalar
	}
	for _, p := range planes {
		if !Aligned16(p) {
			return VariantVector
		}
	}
	return VariantVectorAligned
}
