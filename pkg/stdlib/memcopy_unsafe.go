//go:build !purego

package stdlib

import (
	"github.com/daanv2/go-memcopy/pkg/ptr"
	"golang.org/x/exp/constraints"
)

func copy16(dst, src []byte) { copyWords[uint16](dst, src) }
func copy32(dst, src []byte) { copyWords[uint32](dst, src) }
func copy64(dst, src []byte) { copyWords[uint64](dst, src) }

// copyWords copies len(dst)/sizeof(T) whole elements in ascending order.
func copyWords[T constraints.Unsigned](dst, src []byte) {
	d := ptr.Reinterpret[T](dst)
	s := ptr.Reinterpret[T](src)
	s = s[:len(d)]

	for i := range d {
		d[i] = s[i]
	}
}
