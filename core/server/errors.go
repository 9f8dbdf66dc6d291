package server

import "errors"

var (
	// ErrServerAlreadyRunning is returned by Start when the server is
	// already serving.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrEmptyAddr is returned when no listen address is configured.
	ErrEmptyAddr = errors.New("listen address cannot be empty")
)
