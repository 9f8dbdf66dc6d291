// Package sessionstore provides session.Store implementations for the
// server-side session variant: an in-process Memory store for
// development and tests, and a Redis store for production.
//
// Both stores serialize the session mapping through the codec package,
// so stored data round-trips exactly like client-side cookie payloads
// and callers never alias the stored mapping.
//
//	store, err := sessionstore.NewRedis(client)
//	...
//	err = store.Set(ctx, id, data, 24*time.Hour)
//	data, err := store.Get(ctx, id) // session.ErrNotFound after TTL
package sessionstore
