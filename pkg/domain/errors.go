package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConstants is returned when a signature has no constant symbols.
	ErrNoConstants = errors.New("signature has no constants")

	// ErrNoFunctions is returned when internal nodes are reachable but the signature has no function symbols.
	ErrNoFunctions = errors.New("signature has no function symbols")

	// ErrInvalidArity is returned for a negative arity.
	ErrInvalidArity = errors.New("invalid arity")

	// ErrInvalidSymbol is returned for an empty symbol or one containing whitespace.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrDuplicateSymbol is returned when a name is declared more than once.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrInvalidDepth is returned when the maximum depth is negative.
	ErrInvalidDepth = errors.New("invalid max depth")

	// ErrInvalidLeafProbability is returned when the leaf probability is outside [0,1].
	ErrInvalidLeafProbability = errors.New("invalid leaf probability")

	// ErrInvalidCount is returned when the number of terms to generate is negative.
	ErrInvalidCount = errors.New("invalid term count")

	// ErrDestinationNotFound is returned when reading from a destination that was never written.
	ErrDestinationNotFound = errors.New("destination not found")
)

// ConfigError represents a single configuration failure.
type ConfigError struct {
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
	Err    error  // Sentinel, if any
}

func (e *ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// AggregateError represents multiple configuration failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d configuration errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ConfigErrors returns all errors if err is an AggregateError.
// Otherwise returns nil.
func ConfigErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
