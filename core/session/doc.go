// Package session implements tamper-resistant session state for Go web
// applications, with two interchangeable storage strategies.
//
// # Client-side sessions
//
// ClientBackend keeps no server-side state at all. The whole session
// mapping is serialized, encrypted with AES-GCM, and shipped to the
// browser as a family of chunked cookies named "{key}-0", "{key}-1",
// and so on, each at most ChunkSize bytes. The expiry timestamp is
// bound into the encryption as associated data, so holders of the
// cookies can neither read nor extend their own session.
//
//	backend, err := session.New(secret,
//		session.WithKey("session"),
//		session.WithMaxAge(24*time.Hour),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	chunks, err := backend.DumpData(session.Data{"user_id": "42"})
//	// chunks[i] -> cookie "session-{i}"
//
//	data, err := backend.LoadData(chunks)
//	// data == Data{"user_id": "42"} within the lifetime window
//
// LoadData degrades quietly to an empty mapping when cookies are
// absent, malformed, or expired, but returns ErrTampered when the
// cryptographic authentication fails: an invalid tag means someone
// modified the data, which is worth logging, while a stale session is
// just a user coming back after a while.
//
// # Server-side sessions
//
// The Store interface supports the classic variant where the cookie
// carries only a random session ID and the mapping lives in a store
// (see the sessionstore package for memory and Redis implementations,
// and sessiontransport for the cookie wiring).
//
// # Configuration
//
// Secret (16/24/32 bytes), cookie key prefix (1-256 chars), max age
// (positive), and chunk size (positive) are validated once at
// construction; New fails with an ErrImproperlyConfigured-wrapped
// error rather than surfacing bad configuration per request.
package session
