package generics

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// SizeOf returns the size of the type T in bytes.
func SizeOf[T constraints.Integer]() int {
	var t T
	return int(unsafe.Sizeof(t))
}
