package credstore

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. Nothing survives a restart.
type MemoryStore struct {
	mu    sync.Mutex
	value string
	ok    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.ok = credential, true
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.ok = "", false
	return nil
}
