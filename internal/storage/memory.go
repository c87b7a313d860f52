package storage

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store for tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte

	// WriteErr, when set, is returned by every Write. Tests use it to
	// exercise persistence-failure paths.
	WriteErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := append([]byte(nil), data...)
	return out, true, nil
}

func (s *MemoryStore) Write(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.data[key] = append([]byte(nil), payload...)
	return nil
}
