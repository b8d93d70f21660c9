package stdlib

import (
	"slices"

	"github.com/daanv2/go-memcopy/pkg/assert"
)

// MemCmp compares the first num bytes of ptr1 and ptr2. Like C's memcmp it
// returns 0 if equal, <0 if ptr1<ptr2, >0 if ptr1>ptr2.
func MemCmp(ptr1, ptr2 []byte, num int) int {
	assert.Assertf(num <= len(ptr1) && num <= len(ptr2), "compare size exceeds span length")
	return slices.Compare(ptr1[:num], ptr2[:num])
}
