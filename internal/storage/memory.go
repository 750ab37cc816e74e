package storage

import (
	"context"
	"sync"

	mascot_errors "mascot-chat/pkg/errors"
)

// MemoryStore keeps assets in a map. Used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[name] = buf
	return "/uploads/" + name, nil
}

func (s *MemoryStore) Open(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[name]
	if !ok {
		return nil, mascot_errors.ErrNotFound
	}
	return data, nil
}
