// Package aead provides authenticated encryption with associated data
// using AES-GCM. It seals a plaintext together with a cleartext
// associated-data section into a single self-describing blob:
//
//	nonce || ciphertext+tag || "additional_authenticated_data=" || aad
//
// The associated data is not encrypted, so the receiver can frame and
// read it before decrypting, but it is covered by the GCM tag: any
// modification of the nonce, the ciphertext, or the associated data
// makes Decrypt fail with ErrAuthenticationFailed. This makes the blob
// suitable for carrying metadata such as an expiry timestamp that the
// holder of the blob must be able to see but never to change.
//
//	blob, err := aead.Encrypt(secret, payload, expiryJSON)
//	...
//	payload, expiryJSON, err := aead.Decrypt(secret, blob)
//
// Every Encrypt call uses a fresh nonce from crypto/rand. Functions are
// pure over their inputs and safe for concurrent use.
package aead
