package stdlib_test

import (
	"math/rand/v2"
)

const canary = 0xAA

var patterns = map[string]func(b []byte){
	"zeros": func(b []byte) {},
	"ones": func(b []byte) {
		for i := range b {
			b[i] = 0xFF
		}
	},
	"counting": func(b []byte) {
		for i := range b {
			b[i] = byte(i)
		}
	},
	"random": func(b []byte) {
		r := rand.New(rand.NewPCG(uint64(len(b)), 0x5eed))
		for i := range b {
			b[i] = byte(r.Uint32())
		}
	},
}

// newCanary returns a buffer of size+pad bytes filled with the canary value.
func newCanary(size, pad int) []byte {
	b := make([]byte, size+pad)
	for i := range b {
		b[i] = canary
	}
	return b
}

func allCanary(b []byte) bool {
	for _, v := range b {
		if v != canary {
			return false
		}
	}
	return true
}
