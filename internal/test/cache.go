package test

import (
	"context"
	"time"
)

// MemoryStore is an in-memory cache.Store for tests. It records the TTL of
// every Set and can fail reads or writes on demand.
type MemoryStore struct {
	Entries  map[string][]byte
	TTLs     map[string]time.Duration
	GetErr   error
	SetErr   error
	GetCalls int
	SetCalls int
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Entries: make(map[string][]byte),
		TTLs:    make(map[string]time.Duration),
	}
}

// Get returns the stored value when present.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.GetCalls++
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	value, ok := s.Entries[key]
	return value, ok, nil
}

// Set stores the value and remembers the TTL it was given.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Entries == nil {
		s.Entries = make(map[string][]byte)
	}
	if s.TTLs == nil {
		s.TTLs = make(map[string]time.Duration)
	}
	s.Entries[key] = value
	s.TTLs[key] = ttl
	return nil
}
