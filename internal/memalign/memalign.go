// Package memalign allocates byte buffers on the 16-byte boundaries
// the aligned conversion entry points require. It deals only in raw
// byte slices so both library and command code can use it.
package memalign

import "unsafe"

// Boundary is the alignment guarantee of Alloc and PadStride.
const Boundary = 16

// PadStride rounds a row byte count up to the next Boundary multiple.
func PadStride(rowBytes int) int {
	return (rowBytes + Boundary - 1) &^ (Boundary - 1)
}

// Alloc returns a slice of n bytes whose first element sits on a
// Boundary-aligned address. The slice is zeroed and has no spare
// capacity, so appends cannot silently move it off alignment.
func Alloc(n int) []byte {
	if n == 0 {
		n = 1
	}
	buf := make([]byte, n+Boundary-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := int((Boundary - addr%Boundary) % Boundary)
	return buf[off : off+n : off+n]
}

// Aligned reports whether the slice starts on a Boundary-aligned
// address. Empty slices are never aligned.
func Aligned(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&b[0]))%Boundary == 0
}
