package stdlib_test

import (
	"testing"

	"github.com/daanv2/go-memcopy/pkg/config"
	"github.com/daanv2/go-memcopy/pkg/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var busSizes = []config.BusSize{
	config.BUS_SIZE_8,
	config.BUS_SIZE_16,
	config.BUS_SIZE_32,
	config.BUS_SIZE_64,
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		size int
		bus  config.BusSize
		want []stdlib.Chunk
	}{
		{"zero", 0, config.BUS_SIZE_64, []stdlib.Chunk{}},
		{"one byte", 1, config.BUS_SIZE_64, []stdlib.Chunk{{Width: 1, Offset: 0, Len: 1}}},
		{"seven bytes", 7, config.BUS_SIZE_64, []stdlib.Chunk{
			{Width: 4, Offset: 0, Len: 4},
			{Width: 2, Offset: 4, Len: 2},
			{Width: 1, Offset: 6, Len: 1},
		}},
		{"fifteen bytes", 15, config.BUS_SIZE_64, []stdlib.Chunk{
			{Width: 8, Offset: 0, Len: 8},
			{Width: 4, Offset: 8, Len: 4},
			{Width: 2, Offset: 12, Len: 2},
			{Width: 1, Offset: 14, Len: 1},
		}},
		{"kilobyte", 1024, config.BUS_SIZE_64, []stdlib.Chunk{{Width: 8, Offset: 0, Len: 1024}}},
		{"fifteen bytes 32-bit bus", 15, config.BUS_SIZE_32, []stdlib.Chunk{
			{Width: 4, Offset: 0, Len: 12},
			{Width: 2, Offset: 12, Len: 2},
			{Width: 1, Offset: 14, Len: 1},
		}},
		{"fifteen bytes 16-bit bus", 15, config.BUS_SIZE_16, []stdlib.Chunk{
			{Width: 2, Offset: 0, Len: 14},
			{Width: 1, Offset: 14, Len: 1},
		}},
		{"fifteen bytes 8-bit bus", 15, config.BUS_SIZE_8, []stdlib.Chunk{{Width: 1, Offset: 0, Len: 15}}},
		{"kilobyte 8-bit bus", 1024, config.BUS_SIZE_8, []stdlib.Chunk{{Width: 1, Offset: 0, Len: 1024}}},
		{"zero bus", 5, 0, []stdlib.Chunk{{Width: 1, Offset: 0, Len: 5}}},
		{"negative bus", 3, -4, []stdlib.Chunk{{Width: 1, Offset: 0, Len: 3}}},
		{"odd tail", 1027, config.BUS_SIZE_64, []stdlib.Chunk{
			{Width: 8, Offset: 0, Len: 1024},
			{Width: 2, Offset: 1024, Len: 2},
			{Width: 1, Offset: 1026, Len: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := stdlib.Split(tt.size, tt.bus)
			assert.Equal(t, tt.want, l.Chunks())
			assert.Equal(t, len(tt.want), l.Len())
			assert.Equal(t, tt.size, l.Total())
		})
	}
}

func TestSplitInvariants(t *testing.T) {
	for _, bus := range busSizes {
		t.Run(bus.String(), func(t *testing.T) {
			for size := 0; size <= 4096; size++ {
				l := stdlib.Split(size, bus)
				require.LessOrEqual(t, l.Len(), 4)

				offset := 0
				prev := config.BusSize(2 * config.BUS_SIZE_64)
				for _, c := range l.Chunks() {
					require.LessOrEqual(t, c.Width, bus, "size %d", size)
					require.Less(t, c.Width, prev, "size %d", size)
					require.Equal(t, offset, c.Offset, "size %d", size)
					require.Positive(t, c.Len, "size %d", size)
					require.Zero(t, c.Len%int(c.Width), "size %d", size)

					offset += c.Len
					prev = c.Width
				}
				require.Equal(t, size, offset)
			}
		})
	}
}
