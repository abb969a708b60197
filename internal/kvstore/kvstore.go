// FilePath: internal/kvstore/kvstore.go
package kvstore

import (
	"context"
	"sync"
)

// Store is origin-scoped key-value storage: string keys, JSON-encoded
// string values. It mirrors the contract of the browser storage the
// presentation layer originally wrote to, so every backend is a plain
// get/set/delete with no transactions and no locking across calls.
// Concurrent read-modify-write sequences can race; that limitation is
// accepted and documented at the adapter layer.
type Store interface {
	// Get returns the raw value for key. The bool is false when the key
	// is absent; absence is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is the in-process Store. Default backend and the one used
// throughout the tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
