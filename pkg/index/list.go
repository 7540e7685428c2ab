package index

import "github.com/aretw0/termgen/pkg/domain"

// List keeps terms in insertion order, duplicates included.
type List struct {
	terms []domain.Term
}

// NewList returns an empty List.
func NewList() *List {
	return &List{}
}

// Insert appends term. Empty terms are ignored.
func (l *List) Insert(term domain.Term) {
	if len(term) == 0 {
		return
	}
	l.terms = append(l.terms, term)
}

// Len returns the number of stored terms.
func (l *List) Len() int {
	return len(l.terms)
}

// Find returns the position of the first occurrence of term, or -1.
func (l *List) Find(term domain.Term) int {
	for i, t := range l.terms {
		if t.Equal(term) {
			return i
		}
	}
	return -1
}

// WithPrefix returns every stored term starting with prefix, in insertion order.
func (l *List) WithPrefix(prefix domain.Term) []domain.Term {
	var out []domain.Term
	for _, t := range l.terms {
		if t.HasPrefix(prefix) {
			out = append(out, t)
		}
	}
	return out
}
