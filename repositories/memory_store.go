// repositories/memory_store.go
package repositories

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. It backs the server when no
// MONGO_URI is configured (ephemeral dev mode) and the test suite.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(blob))
	copy(out, blob)
	s.blobs[key] = out
	return nil
}
