package kv

import (
	"context"
	"sync"
)

// Store is an opaque key-value blob: the application-side stand-in for
// browser local storage. Values are opaque byte payloads, JSON by
// convention.
type Store interface {
	// Get returns the payload under key. The second return value reports
	// whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
	// Delete removes the key if present. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// NewMemoryStore returns a Store backed by a plain map. Used in tests and
// by the in-memory run mode.
func NewMemoryStore() Store {
	return &memoryStore{data: map[string][]byte{}}
}

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

func (m *memoryStore) Set(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.data[key] = cp
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryStore) Close() error { return nil }
