package stdlib

import "github.com/daanv2/go-memcopy/pkg/assert"

// MemCopy8 copies size bytes from src to dst one byte at a time.
func MemCopy8(dst, src []byte, size int) []byte {
	copy8(dst[:size], src[:size])
	return dst
}

// MemCopy16 copies size bytes from src to dst two bytes at a time.
// size must be a multiple of 2; otherwise the trailing byte is not copied.
func MemCopy16(dst, src []byte, size int) []byte {
	assert.Assertf(size&0x1 == 0, "size is not a multiple of 2")
	copy16(dst[:size], src[:size])
	return dst
}

// MemCopy32 copies size bytes from src to dst four bytes at a time.
// size must be a multiple of 4; otherwise the trailing bytes are not copied.
func MemCopy32(dst, src []byte, size int) []byte {
	assert.Assertf(size&0x3 == 0, "size is not a multiple of 4")
	copy32(dst[:size], src[:size])
	return dst
}

// MemCopy64 copies size bytes from src to dst eight bytes at a time.
// size must be a multiple of 8; otherwise the trailing bytes are not copied.
func MemCopy64(dst, src []byte, size int) []byte {
	assert.Assertf(size&0x7 == 0, "size is not a multiple of 8")
	copy64(dst[:size], src[:size])
	return dst
}

func copy8(dst, src []byte) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i]
	}
}
