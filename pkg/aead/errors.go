package aead

import "errors"

var (
	// ErrInvalidSecretLength indicates the secret is not a valid AES key size.
	ErrInvalidSecretLength = errors.New("aead: secret must be 16, 24, or 32 bytes")

	// ErrMalformedBlob indicates the blob is structurally broken and
	// cannot be parsed. Benign: truncated or corrupted in transit.
	ErrMalformedBlob = errors.New("aead: malformed blob")

	// ErrAuthenticationFailed indicates the authentication tag did not
	// verify. The blob was modified after sealing, or sealed under a
	// different key. Treat as tampering, not as absence.
	ErrAuthenticationFailed = errors.New("aead: message authentication failed")
)
