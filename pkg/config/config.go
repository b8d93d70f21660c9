package config

import (
	"fmt"
)

// Copy parameters.
type Config struct {
	// Widest element, in bytes, the copy loops may use.
	BusSize BusSize
	// if true, reject overlapping source and destination spans even when
	// assertions are compiled out.
	CheckOverlap bool
}

// Should always be called to initialize a fresh Config structure before
// modification. The default bus size is the target's native word size.
func ConfigInit(config *Config) error {
	return config.Init()
}

// Init resets config to its defaults and validates it.
func (config *Config) Init() error {
	return config.InitBusSize(BUS_SIZE_NATIVE)
}

// InitBusSize resets config to its defaults with the given bus size.
func (config *Config) InitBusSize(bus BusSize) error {
	if config == nil {
		return ErrNilConfig
	}

	config.BusSize = bus
	config.CheckOverlap = false

	return config.Validate()
}

// Returns nil if 'config' is non-nil and all configuration parameters are
// within their valid ranges.
func (config *Config) Validate() error {
	if config == nil {
		return ErrNilConfig
	}
	if !config.BusSize.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidBusSize, int(config.BusSize))
	}

	return nil
}
