package sessionstore

import "errors"

// ErrNilClient indicates NewRedis was called without a Redis client.
var ErrNilClient = errors.New("sessionstore: nil redis client")
