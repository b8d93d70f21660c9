// Package memcopy copies byte ranges in the widest word-sized chunks a
// configured bus size allows, falling back to narrower loops for the
// remainder.
package memcopy

import (
	"errors"

	"github.com/daanv2/go-memcopy/pkg/config"
	"github.com/daanv2/go-memcopy/pkg/ptr"
	"github.com/daanv2/go-memcopy/pkg/stdlib"
)

// ErrOverlap is the panic value of [Copier.Copy] when CheckOverlap is set
// and the source and destination spans intersect.
var ErrOverlap = errors.New("memcopy: source and destination overlap")

// Copy copies n bytes from src to dst using the native bus size and returns
// dst. See [stdlib.MemCopyBus] for the contract.
func Copy(dst, src []byte, n int) []byte {
	return stdlib.MemCopy(dst, src, n)
}

// Copier copies with a fixed configuration. It is immutable and safe for
// concurrent use on disjoint buffers.
type Copier struct {
	bus          config.BusSize
	checkOverlap bool
}

// New returns a Copier for conf, which must be valid.
func New(conf *config.Config) (*Copier, error) {
	if conf == nil {
		return nil, config.ErrNilConfig
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &Copier{
		bus:          conf.BusSize,
		checkOverlap: conf.CheckOverlap,
	}, nil
}

// BusSize returns the widest element the copier uses.
func (c *Copier) BusSize() config.BusSize { return c.bus }

// Copy copies n bytes from src to dst and returns dst. With CheckOverlap set
// it panics on overlapping spans regardless of build tags.
func (c *Copier) Copy(dst, src []byte, n int) []byte {
	if c.checkOverlap && n > 0 && ptr.Overlaps(dst[:n], src[:n]) {
		panic(ErrOverlap)
	}

	return stdlib.MemCopyBus(dst, src, n, c.bus)
}
