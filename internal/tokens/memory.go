package tokens

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and by callers that do
// not want a session to outlive the process.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[key], nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemoryStore) SetPair(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[KeyAccessToken] = access
	s.m[KeyRefreshToken] = refresh
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, KeyAccessToken)
	delete(s.m, KeyRefreshToken)
	return nil
}
