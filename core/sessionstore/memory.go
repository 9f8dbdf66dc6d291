package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/sessionkit/core/codec"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// Memory is an in-process session store for development and tests.
// Entries are kept as encoded bytes so callers never share the stored
// mapping by reference. Expired entries are dropped lazily on access
// and by Cleanup.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements session.Store.
func (m *Memory) Get(ctx context.Context, id string) (session.Data, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, session.ErrNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return nil, session.ErrNotFound
	}

	return codec.Decode(entry.payload)
}

// Set implements session.Store.
func (m *Memory) Set(ctx context.Context, id string, data session.Data, ttl time.Duration) error {
	payload, err := codec.Encode(data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[id] = memoryEntry{
		payload:   payload,
		expiresAt: m.now().Add(ttl),
	}
	m.mu.Unlock()
	return nil
}

// Delete implements session.Store. Deleting a missing session is a no-op.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Cleanup removes all expired entries and returns how many were dropped.
// Call periodically in long-running processes to bound memory growth.
func (m *Memory) Cleanup() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	for id, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of entries currently held, including entries
// that expired but were not yet cleaned up.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
