// Package codec serializes session mappings to bytes and back. The wire
// format is canonical JSON (RFC 8785), so encoding is deterministic and
// round-trips exactly for JSON-serializable values.
//
// Decode failures surface as ErrMalformedPayload and are recoverable:
// a session backend that cannot decode a payload starts the request with
// an empty session instead of failing it.
package codec
