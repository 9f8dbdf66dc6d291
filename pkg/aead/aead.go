package aead

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// marker separates the ciphertext from the trailing associated data
	// inside a sealed blob. The associated data travels with the blob in
	// the clear but is covered by the authentication tag, so moving or
	// rewriting it invalidates the whole blob.
	marker = "additional_authenticated_data="
)

// Marker returns the byte sequence that delimits associated data within
// a sealed blob. Exposed for tests that need to locate the AAD region.
func Marker() []byte {
	return []byte(marker)
}

// ValidateSecret checks that the secret is a valid AES key:
// 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func ValidateSecret(secret []byte) error {
	switch len(secret) {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: got %d bytes, want 16, 24, or 32", ErrInvalidSecretLength, len(secret))
	}
}

// Encrypt seals plaintext with AES-GCM under secret, binding aad into the
// authentication tag. Each call draws a fresh random nonce, so encrypting
// identical plaintext twice yields different blobs.
//
// Blob layout: nonce || ciphertext+tag || marker || aad. The aad is
// readable without the key but cannot be altered without failing Decrypt.
func Encrypt(secret, plaintext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(secret)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, aad)

	blob := make([]byte, 0, len(sealed)+len(marker)+len(aad))
	blob = append(blob, sealed...)
	blob = append(blob, marker...)
	blob = append(blob, aad...)
	return blob, nil
}

// Decrypt opens a blob produced by Encrypt and returns the plaintext and
// the associated data that was bound to it.
//
// Structural problems (blob too short, marker missing) return
// ErrMalformedBlob: the input is garbage, not evidence of an attack.
// A failed authentication tag returns ErrAuthenticationFailed: the
// nonce, ciphertext, or associated data was modified after sealing.
func Decrypt(secret, blob []byte) (plaintext, aad []byte, err error) {
	gcm, err := newGCM(secret)
	if err != nil {
		return nil, nil, err
	}

	if len(blob) < NonceSize+gcm.Overhead()+len(marker) {
		return nil, nil, ErrMalformedBlob
	}

	nonce, remainder := blob[:NonceSize], blob[NonceSize:]

	idx := bytes.Index(remainder, []byte(marker))
	if idx < 0 {
		return nil, nil, ErrMalformedBlob
	}
	ciphertext := remainder[:idx]
	aad = remainder[idx+len(marker):]

	plaintext, err = gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, nil, ErrAuthenticationFailed
	}

	return plaintext, aad, nil
}

func newGCM(secret []byte) (cipher.AEAD, error) {
	if err := ValidateSecret(secret); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(secret)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
