package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Encode serializes a session mapping to compact canonical JSON
// (RFC 8785). Canonicalization makes the output deterministic: two equal
// mappings always produce identical bytes regardless of map iteration
// order. Values must be JSON-serializable (strings, numbers, booleans,
// nil, nested maps and slices).
func Encode(data map[string]any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode session data: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize session data: %w", err)
	}

	return canonical, nil
}

// Decode parses bytes produced by Encode back into a session mapping.
// Per JSON semantics all numbers decode as float64. Malformed input
// returns ErrMalformedPayload; callers treat that as "no session", not
// as a fatal condition.
func Decode(b []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, errors.Join(ErrMalformedPayload, err)
	}
	return data, nil
}
