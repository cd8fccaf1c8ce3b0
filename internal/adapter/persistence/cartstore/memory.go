package cartstore

import (
	"context"
	"sync"

	"alu_portal/internal/usecase/interfaces"
)

// MemoryStorage is a process-local slot store, used by the CLI and tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string]string
}

var _ interfaces.ICartStorage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: map[string]string{}}
}

func (s *MemoryStorage) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *MemoryStorage) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}
