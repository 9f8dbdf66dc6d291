package session

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

const (
	// DefaultKey is the default cookie name prefix; chunk i of a dumped
	// session is stored under "{key}-{i}".
	DefaultKey = "session"

	// DefaultMaxAge is the default session lifetime (14 days).
	DefaultMaxAge = 14 * 24 * time.Hour

	// DefaultChunkSize bounds a single cookie value. Browsers cap the
	// whole Set-Cookie header near 4KB, and the cookie name plus
	// attributes (Path, Max-Age, HttpOnly, SameSite) consume part of
	// that budget, so the value itself must stay under the cap.
	DefaultChunkSize = 4000

	// maxKeyLength bounds the cookie name prefix.
	maxKeyLength = 256
)

// Config provides environment-based configuration for the client-side
// session backend. Secret is the AES key, exactly 16, 24, or 32 bytes.
// Random keys rarely survive an environment variable as raw bytes, so
// the value may carry a "hex:" or "base64:" prefix and the encoded key
// after it; base64 is the standard encoding, unpadded accepted.
type Config struct {
	Secret    string        `env:"SESSION_SECRET,required"`
	Key       string        `env:"SESSION_KEY" envDefault:"session"`
	MaxAge    time.Duration `env:"SESSION_MAX_AGE" envDefault:"336h"`
	ChunkSize int           `env:"SESSION_CHUNK_SIZE" envDefault:"4000"`
}

// Option configures a ClientBackend.
type Option func(*ClientBackend)

// WithKey sets the cookie name prefix. Must be 1 to 256 characters.
func WithKey(key string) Option {
	return func(b *ClientBackend) {
		b.key = key
	}
}

// WithMaxAge sets the session lifetime. Dumped data carries the expiry
// timestamp in its authenticated metadata, so shortening it later does
// not revalidate blobs already issued with a longer lifetime.
func WithMaxAge(maxAge time.Duration) Option {
	return func(b *ClientBackend) {
		b.maxAge = maxAge
	}
}

// WithChunkSize sets the maximum size of a single cookie value chunk.
func WithChunkSize(size int) Option {
	return func(b *ClientBackend) {
		b.chunkSize = size
	}
}

// WithTimeSource replaces the clock used for expiry timestamps.
// Intended for tests that need to simulate clock advance.
func WithTimeSource(now func() time.Time) Option {
	return func(b *ClientBackend) {
		if now != nil {
			b.now = now
		}
	}
}

// NewFromConfig creates a ClientBackend from environment configuration.
func NewFromConfig(cfg Config, opts ...Option) (*ClientBackend, error) {
	secret, err := decodeSecret(cfg.Secret)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithKey(cfg.Key),
		WithMaxAge(cfg.MaxAge),
		WithChunkSize(cfg.ChunkSize),
	}
	return New(secret, append(base, opts...)...)
}

// decodeSecret resolves the optional "hex:" / "base64:" encoding prefix
// on a configured secret. Unprefixed values are taken as raw key bytes.
func decodeSecret(s string) ([]byte, error) {
	switch {
	case strings.HasPrefix(s, "hex:"):
		key, err := hex.DecodeString(strings.TrimPrefix(s, "hex:"))
		if err != nil {
			return nil, errors.Join(ErrInvalidSecret, err)
		}
		return key, nil
	case strings.HasPrefix(s, "base64:"):
		encoded := strings.TrimPrefix(s, "base64:")
		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			key, err = base64.RawStdEncoding.DecodeString(encoded)
		}
		if err != nil {
			return nil, errors.Join(ErrInvalidSecret, err)
		}
		return key, nil
	default:
		return []byte(s), nil
	}
}
