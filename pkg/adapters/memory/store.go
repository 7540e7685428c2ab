package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/termgen/pkg/domain"
)

// Store implements ports.Store in memory.
// Safe for concurrent use.
type Store struct {
	terms   []domain.Term
	written bool
	mu      sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Destination identifies the store in reports.
func (s *Store) Destination() string {
	return "memory"
}

// Write replaces the held collection with a copy of terms.
func (s *Store) Write(ctx context.Context, terms []domain.Term) error {
	copied := make([]domain.Term, len(terms))
	for i, term := range terms {
		copied[i] = slices.Clone(term)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms = copied
	s.written = true
	return nil
}

// Read returns a copy of the held collection.
func (s *Store) Read(ctx context.Context) ([]domain.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.written {
		return nil, domain.ErrDestinationNotFound
	}

	ret := make([]domain.Term, len(s.terms))
	for i, term := range s.terms {
		ret[i] = slices.Clone(term)
	}
	return ret, nil
}
