package stdlib

import "github.com/daanv2/go-memcopy/pkg/config"

// Element widths tried by the dispatcher, widest first.
var widths = [...]config.BusSize{
	config.BUS_SIZE_64,
	config.BUS_SIZE_32,
	config.BUS_SIZE_16,
	config.BUS_SIZE_8,
}

// Chunk is a contiguous sub-range of a copy handled by a single width loop.
// Len is always a multiple of Width.
type Chunk struct {
	Width  config.BusSize
	Offset int
	Len    int
}

// Layout is the decomposition of one copy into at most one chunk per width.
type Layout struct {
	chunks [len(widths)]Chunk
	n      int
}

// Split decomposes a copy of size bytes into chunks, peeling off the largest
// multiple of each width the bus allows, in descending width order. A bus
// below BUS_SIZE_8 is treated as BUS_SIZE_8.
func Split(size int, bus config.BusSize) Layout {
	var l Layout
	bus = max(bus, config.BUS_SIZE_8)

	offset := 0
	for _, w := range widths {
		remaining := size - offset
		if bus < w || remaining < int(w) {
			continue
		}

		n := remaining &^ (int(w) - 1)
		l.chunks[l.n] = Chunk{Width: w, Offset: offset, Len: n}
		l.n++
		offset += n
	}

	return l
}

// Chunks returns the chunks in ascending offset order.
func (l *Layout) Chunks() []Chunk { return l.chunks[:l.n] }

// Len returns the number of chunks.
func (l *Layout) Len() int { return l.n }

// Total returns the number of bytes covered by all chunks.
func (l *Layout) Total() int {
	total := 0
	for _, c := range l.Chunks() {
		total += c.Len
	}
	return total
}
