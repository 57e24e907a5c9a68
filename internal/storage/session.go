package storage

import (
	"sync"

	"github.com/google/uuid"
)

// memStore is an in-memory KV, the sessionStorage analog. It lives as
// long as its browsing session and is never flushed to disk.
type memStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *memStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = map[string]string{}
	return nil
}

// Sessions hands out session-scoped stores keyed by an opaque ID that
// the HTTP layer carries in a cookie.
type Sessions struct {
	mu sync.Mutex
	m  map[string]*memStore
}

func NewSessions() *Sessions {
	return &Sessions{m: map[string]*memStore{}}
}

// New creates a fresh session and returns its ID.
func (s *Sessions) New() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.m[id] = newMemStore()
	s.mu.Unlock()
	return id
}

// Get returns the store for id, creating the session if the gateway
// restarted since the cookie was issued.
func (s *Sessions) Get(id string) KV {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.m[id]
	if !ok {
		st = newMemStore()
		s.m[id] = st
	}
	return st
}

// End drops the session and everything stored in it.
func (s *Sessions) End(id string) {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
}
