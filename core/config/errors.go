package config

import "errors"

var (
	// ErrNilConfig is returned when Load is called with a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")

	// ErrParseFailed wraps environment parsing errors.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
