package session

import (
	"context"
	"time"
)

// Store is the persistence interface for the server-side session
// variant, where the cookie carries only an opaque session ID and the
// mapping lives on the server. Implementations must be safe for
// concurrent use and must honor the TTL: expired entries behave as if
// they were never stored.
type Store interface {
	// Get returns the mapping for the given session ID, or ErrNotFound
	// if the session does not exist or has expired.
	Get(ctx context.Context, id string) (Data, error)

	// Set writes the mapping under the given session ID with the given
	// time-to-live, replacing any previous value.
	Set(ctx context.Context, id string, data Data, ttl time.Duration) error

	// Delete removes the session. Deleting a missing session is not an
	// error.
	Delete(ctx context.Context, id string) error
}
