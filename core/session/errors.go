package session

import (
	"errors"
	"fmt"
)

// ErrImproperlyConfigured is the base error for invalid backend
// configuration. All construction-time validation failures wrap it,
// so callers can match the whole family with errors.Is.
var ErrImproperlyConfigured = errors.New("session: improperly configured")

var (
	// ErrInvalidSecret indicates the secret is not a valid AES key length.
	ErrInvalidSecret = fmt.Errorf("%w: secret must be 16, 24, or 32 bytes", ErrImproperlyConfigured)

	// ErrInvalidKey indicates the cookie key prefix is empty or too long.
	ErrInvalidKey = fmt.Errorf("%w: key must be between 1 and 256 characters", ErrImproperlyConfigured)

	// ErrInvalidMaxAge indicates a non-positive session lifetime.
	ErrInvalidMaxAge = fmt.Errorf("%w: max age must be greater than zero", ErrImproperlyConfigured)

	// ErrInvalidChunkSize indicates a non-positive cookie chunk size.
	ErrInvalidChunkSize = fmt.Errorf("%w: chunk size must be greater than zero", ErrImproperlyConfigured)
)

// ErrTampered indicates session data failed cryptographic authentication.
// Unlike absence or expiry, which degrade quietly to an empty session,
// tampering is surfaced so callers can log or alert on it: nobody
// without the secret can produce data that authenticates, so a failed
// tag means the cookie was modified in transit or by the client.
var ErrTampered = errors.New("session: data failed authentication")

// ErrNotFound is returned by a Store when no session exists for the
// given ID.
var ErrNotFound = errors.New("session: not found")
