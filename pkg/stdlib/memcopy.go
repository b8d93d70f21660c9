package stdlib

import (
	"github.com/daanv2/go-memcopy/pkg/assert"
	"github.com/daanv2/go-memcopy/pkg/config"
	"github.com/daanv2/go-memcopy/pkg/gcc"
	"github.com/daanv2/go-memcopy/pkg/ptr"
)

// Width loops indexed by log2 of their element width.
var memcopyLoops = [...]func(dst, src []byte, size int) []byte{
	MemCopy8,
	MemCopy16,
	MemCopy32,
	MemCopy64,
}

// MemCopy is a conversion of C's memcpy function for byte slices. It copies
// size bytes from src to dst using the native bus size and returns dst.
func MemCopy(dst, src []byte, size int) []byte {
	return MemCopyBus(dst, src, size, config.BUS_SIZE_NATIVE)
}

// MemCopyBus copies size bytes from src to dst and returns dst. The transfer
// is split by [Split] and every chunk goes through the widest loop bus
// allows. A zero size writes nothing and still returns dst.
//
// dst and src must hold at least size bytes and must not overlap. Both are
// asserted; with assertions compiled out only Go's slice bounds checks
// remain. Concurrent calls are safe as long as no other writer touches dst
// or src.
func MemCopyBus(dst, src []byte, size int, bus config.BusSize) []byte {
	if assert.Enabled {
		assert.Assertf(size >= 0, "negative copy size")
		assert.Assertf(size <= len(dst), "copy size exceeds destination")
		assert.Assertf(size <= len(src), "copy size exceeds source")
		assert.Assertf(bus.Valid(), "invalid bus size")
		assert.Assertf(!ptr.Overlaps(dst[:size], src[:size]), "source and destination overlap")
	}
	if size == 0 {
		return dst
	}

	l := Split(size, bus)
	for _, c := range l.Chunks() {
		end := c.Offset + c.Len
		memcopyLoops[gcc.Builtin_CTZ(uint32(c.Width))](dst[c.Offset:end], src[c.Offset:end], c.Len)
	}

	return dst
}
