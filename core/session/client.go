package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrymomot/sessionkit/core/codec"
	"github.com/dmitrymomot/sessionkit/pkg/aead"
	"github.com/dmitrymomot/sessionkit/pkg/chunk"
)

// Data is the session mapping visible to request handlers: string keys
// to JSON-serializable values. It is reconstructed from cookies at
// request start and discarded after the response; the durable copy
// lives client-side.
type Data map[string]any

// expiryClaim is the authenticated metadata bound to every dumped blob.
type expiryClaim struct {
	ExpiresAt int64 `json:"expires_at"`
}

// ClientBackend implements stateless client-side sessions: the whole
// session mapping is encrypted, authenticated, and shipped to the
// browser as a set of chunked cookie values. The server keeps nothing.
//
// A backend is immutable after construction and safe for concurrent
// use by independent requests.
type ClientBackend struct {
	secret    []byte
	key       string
	maxAge    time.Duration
	chunkSize int
	now       func() time.Time
}

// New creates a client-side session backend. The secret must be 16, 24,
// or 32 bytes (AES-128/192/256). Validation failures are configuration
// errors and fail construction; nothing is validated per request.
func New(secret []byte, opts ...Option) (*ClientBackend, error) {
	b := &ClientBackend{
		secret:    secret,
		key:       DefaultKey,
		maxAge:    DefaultMaxAge,
		chunkSize: DefaultChunkSize,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := aead.ValidateSecret(b.secret); err != nil {
		return nil, ErrInvalidSecret
	}
	if len(b.key) < 1 || len(b.key) > maxKeyLength {
		return nil, ErrInvalidKey
	}
	if b.maxAge <= 0 {
		return nil, ErrInvalidMaxAge
	}
	if b.chunkSize < 1 {
		return nil, ErrInvalidChunkSize
	}

	return b, nil
}

// Key returns the cookie name prefix.
func (b *ClientBackend) Key() string { return b.key }

// MaxAge returns the session lifetime.
func (b *ClientBackend) MaxAge() time.Duration { return b.maxAge }

// DumpData serializes, encrypts, and chunks a session mapping into
// ordered cookie values. Chunk i belongs in cookie "{key}-{i}". Each
// chunk is base64 text of at most ChunkSize bytes.
//
// The expiry timestamp (now + max age) is bound into the encryption as
// associated data, so a client cannot extend its own session. Output
// differs between calls for identical input (fresh nonce, moving
// expiry) but always loads back to the same mapping within the
// lifetime window.
func (b *ClientBackend) DumpData(data Data) ([][]byte, error) {
	payload, err := codec.Encode(data)
	if err != nil {
		return nil, err
	}

	associated, err := json.Marshal(expiryClaim{ExpiresAt: b.now().Add(b.maxAge).Unix()})
	if err != nil {
		return nil, err
	}

	blob, err := aead.Encrypt(b.secret, payload, associated)
	if err != nil {
		return nil, err
	}

	encoded := make([]byte, base64.URLEncoding.EncodedLen(len(blob)))
	base64.URLEncoding.Encode(encoded, blob)

	return chunk.Split(encoded, b.chunkSize), nil
}

// LoadData reassembles chunks (in cookie-index order) and recovers the
// session mapping. It is all-or-nothing: no failure path ever yields
// partial data.
//
// Absent, malformed, or expired input returns an empty mapping and no
// error; those are benign and expected in normal operation. Failed
// authentication returns ErrTampered instead: it means the cookie was
// modified by someone without the secret, which callers may want to
// log or alert on rather than silently ignore.
func (b *ClientBackend) LoadData(chunks [][]byte) (Data, error) {
	if len(chunks) == 0 {
		return Data{}, nil
	}

	encoded := chunk.Join(chunks)
	blob := make([]byte, base64.URLEncoding.DecodedLen(len(encoded)))
	n, err := base64.URLEncoding.Decode(blob, encoded)
	if err != nil {
		return Data{}, nil
	}

	payload, associated, err := aead.Decrypt(b.secret, blob[:n])
	if err != nil {
		if errors.Is(err, aead.ErrAuthenticationFailed) {
			return nil, errors.Join(ErrTampered, err)
		}
		return Data{}, nil
	}

	var claim expiryClaim
	if err := json.Unmarshal(associated, &claim); err != nil {
		return Data{}, nil
	}
	if claim.ExpiresAt <= b.now().Unix() {
		return Data{}, nil
	}

	data, err := codec.Decode(payload)
	if err != nil {
		return Data{}, nil
	}

	return data, nil
}
