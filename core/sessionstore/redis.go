package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/core/codec"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// defaultKeyPrefix namespaces session keys in a shared Redis instance.
const defaultKeyPrefix = "session:"

// Redis is a session store backed by Redis. Expiry is delegated to
// Redis TTLs, so no sweeping is needed. Safe for concurrent use.
type Redis struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithKeyPrefix replaces the default "session:" key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *Redis) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// NewRedis creates a Redis-backed session store over an existing client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) (*Redis, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	s := &Redis{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Get implements session.Store.
func (s *Redis) Get(ctx context.Context, id string) (session.Data, error) {
	payload, err := s.client.Get(ctx, s.keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	return codec.Decode(payload)
}

// Set implements session.Store.
func (s *Redis) Set(ctx context.Context, id string, data session.Data, ttl time.Duration) error {
	payload, err := codec.Encode(data)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.keyPrefix+id, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Delete implements session.Store. Deleting a missing session is a no-op.
func (s *Redis) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
