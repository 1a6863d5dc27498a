package store

import (
	"context"
	"fmt"
	"sync"

	"partysearch/internal/party/models"
	"partysearch/internal/sentinel"
)

// InMemory is the process-lifetime party registry. Every mutation runs under
// the write lock; reads hand out copies so callers never observe a partial write.
type InMemory struct {
	mu      sync.RWMutex
	parties []models.Party
	ids     map[string]int
}

// NewInMemory creates an empty in-memory party store.
func NewInMemory() *InMemory {
	return &InMemory{ids: make(map[string]int)}
}

// Insert appends parties in order without checking id uniqueness.
// Bulk loads carry externally validated data and may not be rejected here.
func (s *InMemory) Insert(_ context.Context, parties ...models.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range parties {
		s.parties = append(s.parties, p)
		s.ids[p.PartyID]++
	}
	return nil
}

// InsertIfIDAvailable appends the party only if no stored record has the same id.
func (s *InMemory) InsertIfIDAvailable(_ context.Context, p models.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[p.PartyID] > 0 {
		return fmt.Errorf("party id %q: %w", p.PartyID, sentinel.ErrAlreadyUsed)
	}
	s.parties = append(s.parties, p)
	s.ids[p.PartyID]++
	return nil
}

// AllRecords returns a copy of every stored party in insertion order.
func (s *InMemory) AllRecords(_ context.Context) ([]models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Party, len(s.parties))
	copy(out, s.parties)
	return out, nil
}

// Clear removes every party.
func (s *InMemory) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = nil
	s.ids = make(map[string]int)
	return nil
}

// Count returns the number of stored parties.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parties), nil
}
