package config

import (
	"strconv"

	"github.com/daanv2/go-memcopy/pkg/constants"
	"github.com/daanv2/go-memcopy/pkg/gcc"
)

// Maximum element width, in bytes, a copy may move per access.
type BusSize int

const (
	BUS_SIZE_8  BusSize = 1 // byte-wide bus
	BUS_SIZE_16 BusSize = 2
	BUS_SIZE_32 BusSize = 4
	BUS_SIZE_64 BusSize = 8 // widest supported
)

// BUS_SIZE_NATIVE is the word size of the build target, capped at BUS_SIZE_64.
const BUS_SIZE_NATIVE BusSize = BusSize(min(constants.WORD_SIZE, int(BUS_SIZE_64)))

// Valid reports whether b is one of the supported bus sizes.
func (b BusSize) Valid() bool {
	return b >= BUS_SIZE_8 && b <= BUS_SIZE_64 && gcc.Builtin_POPCOUNT(uint32(b)) == 1
}

// Bits returns the bus width in bits.
func (b BusSize) Bits() int { return int(b) * 8 }

func (b BusSize) String() string {
	if !b.Valid() {
		return "BusSize(" + strconv.Itoa(int(b)) + ")"
	}
	return strconv.Itoa(b.Bits()) + "-bit"
}
