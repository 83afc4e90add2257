package session

import (
	"context"
	"maps"
	"sync"
)

// Storage is the key-value persistence backend for session records. It is
// the re-expression of browser storage (localStorage, cookies) behind a
// minimal interface so that file-backed, in-memory, or custom backends can
// be substituted freely.
//
// Get returns ErrRecordNotFound when no record exists under the key.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage is an in-memory Storage implementation. Suitable for tests
// and short-lived processes that don't need the session to survive restarts.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string][]byte)}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.records[key] = stored
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}

// Snapshot returns a copy of all stored records. Test helper.
func (m *MemoryStorage) Snapshot() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.records)
}
