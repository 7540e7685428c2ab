package testutils

import (
	"fmt"
	"testing"

	"github.com/aretw0/termgen/pkg/domain"
	"github.com/stretchr/testify/require"
)

// ReferenceSignature returns the signature of the reference configuration
// ({f:2, g:1, h:3} over constants a..d). It fails the test immediately on error.
func ReferenceSignature(t testing.TB) *domain.Signature {
	t.Helper()

	sig, err := domain.NewSignature(map[string]int{"f": 2, "g": 1, "h": 3}, []string{"a", "b", "c", "d"})
	require.NoError(t, err, "Failed to build reference signature")
	return sig
}

// CheckTerm walks term by recursive descent and returns its nesting depth.
// It fails the test if a token is unknown to sig, if a function is missing
// children, or if tokens remain after the root subterm ends.
func CheckTerm(t testing.TB, sig *domain.Signature, term domain.Term) int {
	t.Helper()

	depth, err := Walk(sig, term)
	require.NoError(t, err, "malformed term %v", term)
	return depth
}

// Walk is the non-failing form of CheckTerm.
func Walk(sig *domain.Signature, term domain.Term) (int, error) {
	next, depth, err := descend(sig, term, 0)
	if err != nil {
		return 0, err
	}
	if next != len(term) {
		return 0, fmt.Errorf("%d trailing tokens after position %d", len(term)-next, next)
	}
	return depth, nil
}

func descend(sig *domain.Signature, term domain.Term, pos int) (int, int, error) {
	if pos >= len(term) {
		return 0, 0, fmt.Errorf("term ends at position %d while a subterm is expected", pos)
	}

	tok := term[pos]
	if sig.IsConstant(tok) {
		return pos + 1, 0, nil
	}

	arity, ok := sig.Arity(tok)
	if !ok {
		return 0, 0, fmt.Errorf("unknown symbol %q at position %d", tok, pos)
	}

	pos++
	height := 0
	for range arity {
		var h int
		var err error
		pos, h, err = descend(sig, term, pos)
		if err != nil {
			return 0, 0, err
		}
		height = max(height, h)
	}
	return pos, height + 1, nil
}
