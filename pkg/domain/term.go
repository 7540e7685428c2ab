package domain

import "slices"

// Term is a prefix (Polish notation) token sequence: a function symbol is
// immediately followed by exactly arity subterms, a leaf is a single constant.
type Term []string

// Len returns the number of tokens.
func (t Term) Len() int {
	return len(t)
}

// HasPrefix reports whether the first tokens of t are exactly prefix.
func (t Term) HasPrefix(prefix Term) bool {
	return len(prefix) <= len(t) && slices.Equal(t[:len(prefix)], prefix)
}

// Equal reports whether both terms carry the same tokens in the same order.
func (t Term) Equal(other Term) bool {
	return slices.Equal(t, other)
}
