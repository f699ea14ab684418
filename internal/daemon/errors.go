package daemon

import "errors"

var (
	// ErrConfigNil is returned when the daemon is created without a config.
	ErrConfigNil = errors.New("config is nil")
)
