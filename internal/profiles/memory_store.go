package profiles

import (
	"context"
	"sync"
)

// MemoryStore implements Store with in-process storage, used in tests and
// local development
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// creates a new in-memory profile store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]Profile),
	}
}

// retrieves the profile stored for an email
func (s *MemoryStore) Get(_ context.Context, email string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.profiles[email]
	if !exists {
		return nil, ErrNotFound
	}

	// return a copy so callers cannot mutate the stored value
	return &profile, nil
}

// stores the profile for an email, replacing any previous value
func (s *MemoryStore) Put(_ context.Context, email string, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[email] = *profile

	return nil
}
