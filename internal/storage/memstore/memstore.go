// Package memstore keeps values in process memory. Nothing survives a restart; it backs the "memory" storage
// driver and tests.
package memstore

import (
	"context"
	"sync"

	"github.com/sidereusnuntius/neonprofile/internal/storage"
)

type MemStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func New() *MemStore {
	return &MemStore{values: map[string][]byte{}}
}

func (m *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, storage.ErrNotExist
	}
	return append([]byte(nil), v...), nil
}

func (m *MemStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return storage.ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}
