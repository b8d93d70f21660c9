package gcc

import "math/bits"

// Builtin_CTZ returns the number of trailing 0-bits in x, starting at the least significant bit position. If x is 0, the result is undefined.
func Builtin_CTZ(x uint32) int {
	return bits.TrailingZeros32(x)
}

// Builtin_POPCOUNT returns the number of 1-bits in x.
func Builtin_POPCOUNT(x uint32) int {
	return bits.OnesCount32(x)
}
