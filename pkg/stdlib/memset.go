package stdlib

// Memset is a conversion of C's memset function for byte slices. It sets the
// first num bytes of data to value with log2(num) copy calls.
func Memset(data []byte, value byte, num int) []byte {
	if num == 0 {
		return data
	}

	target := data[:num]
	target[0] = value
	for i := 1; i < num; i *= 2 {
		copy(target[i:], target[:i])
	}

	return data
}
