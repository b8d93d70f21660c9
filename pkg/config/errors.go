package config

import "errors"

var (
	ErrNilConfig      = errors.New("config is nil")
	ErrInvalidBusSize = errors.New("bus size must be 1, 2, 4 or 8 bytes")
)
