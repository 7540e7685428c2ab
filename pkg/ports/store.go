package ports

import (
	"context"

	"github.com/aretw0/termgen/pkg/domain"
)

// Sink defines the destination of a generated term collection.
type Sink interface {
	// Write replaces whatever the destination holds with terms, in order.
	Write(ctx context.Context, terms []domain.Term) error

	// Destination describes where terms are written (a path, a key...).
	Destination() string
}

// TermReader reads back a previously written collection.
type TermReader interface {
	// Read returns the terms in collection order.
	// Returns domain.ErrDestinationNotFound if nothing was ever written.
	Read(ctx context.Context) ([]domain.Term, error)
}

// Store is a Sink that can also be read back.
type Store interface {
	Sink
	TermReader
}
