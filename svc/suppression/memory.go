package suppression

import (
	"context"
	"sync"
)

// MemoryStore keeps addresses in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	emails map[string]struct{}
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{emails: make(map[string]struct{})}
}

func (s *MemoryStore) Add(ctx context.Context, email string) error {
	email, err := Normalize(email)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.emails[email] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Contains(ctx context.Context, email string) (bool, error) {
	email, err := Normalize(email)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	_, ok := s.emails[email]
	s.mu.RUnlock()
	return ok, nil
}

// Len returns the number of suppressed addresses.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.emails)
}
