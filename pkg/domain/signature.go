package domain

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Signature is the fixed vocabulary terms are built from: function symbols
// with their arities and constant symbols.
// It is immutable once built; accessors return copies.
type Signature struct {
	arities   map[string]int
	functions []string // sorted, so seeded selection is reproducible
	constants []string
}

// NewSignature validates and builds a Signature.
// Constants keep their declaration order. An empty function set is accepted
// here; whether it is usable depends on the generator settings.
func NewSignature(functions map[string]int, constants []string) (*Signature, error) {
	if len(constants) == 0 {
		return nil, ErrNoConstants
	}

	sig := &Signature{
		arities:   make(map[string]int, len(functions)),
		functions: make([]string, 0, len(functions)),
		constants: make([]string, 0, len(constants)),
	}

	for name, arity := range functions {
		if err := checkSymbol(name); err != nil {
			return nil, err
		}
		if arity < 0 {
			return nil, fmt.Errorf("%w: %s has arity %d", ErrInvalidArity, name, arity)
		}
		sig.arities[name] = arity
		sig.functions = append(sig.functions, name)
	}
	slices.Sort(sig.functions)

	seen := make(map[string]bool, len(constants))
	for _, name := range constants {
		if err := checkSymbol(name); err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: constant %s", ErrDuplicateSymbol, name)
		}
		if _, ok := sig.arities[name]; ok {
			return nil, fmt.Errorf("%w: %s is both a function and a constant", ErrDuplicateSymbol, name)
		}
		seen[name] = true
		sig.constants = append(sig.constants, name)
	}

	return sig, nil
}

func checkSymbol(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSymbol)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidSymbol, name)
	}
	return nil
}

// Arity returns the arity of a function symbol.
func (s *Signature) Arity(name string) (int, bool) {
	arity, ok := s.arities[name]
	return arity, ok
}

// IsConstant reports whether name is a declared constant.
func (s *Signature) IsConstant(name string) bool {
	return slices.Contains(s.constants, name)
}

// Functions returns the function symbols in sorted order.
func (s *Signature) Functions() []string {
	return slices.Clone(s.functions)
}

// Constants returns the constant symbols in declaration order.
func (s *Signature) Constants() []string {
	return slices.Clone(s.constants)
}

// NumFunctions returns the number of function symbols.
func (s *Signature) NumFunctions() int {
	return len(s.functions)
}

// NumConstants returns the number of constant symbols.
func (s *Signature) NumConstants() int {
	return len(s.constants)
}

// Function returns the i-th function symbol and its arity.
func (s *Signature) Function(i int) (string, int) {
	name := s.functions[i]
	return name, s.arities[name]
}

// Constant returns the i-th constant symbol.
func (s *Signature) Constant(i int) string {
	return s.constants[i]
}
