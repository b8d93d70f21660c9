package ptr

import (
	"unsafe"

	"github.com/daanv2/go-memcopy/pkg/generics"
	"golang.org/x/exp/constraints"
)

// Reinterpret views b as a span of fixed-width unsigned integers sharing the
// same backing memory. The result holds len(b)/sizeof(T) elements; trailing
// bytes that do not fill a whole element are not addressable through it.
//
// Alignment of &b[0] is not checked. Targets that fault on unaligned word
// access must build with the purego tag.
func Reinterpret[T constraints.Unsigned](b []byte) []T {
	n := len(b) / generics.SizeOf[T]()
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// Overlaps reports whether the memory spanned by a and b intersects.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	return pa < pb+uintptr(len(b)) && pb < pa+uintptr(len(a))
}
