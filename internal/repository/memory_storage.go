package repository

import (
	"context"
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"sync"
)

// MemoryStorage is a process-local SnapshotStorage; nothing survives a restart.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ port.SnapshotStorage = (*MemoryStorage)(nil)

func NewMemory() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, port.ErrKeyNotFound
	}

	return append([]byte(nil), value...), nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = append([]byte(nil), value...)

	return nil
}
