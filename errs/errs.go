// Package errs provides small error utilities: causal-chain extraction,
// wrapping of arbitrary values as errors, and error accumulation.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrWrongType      = errors.New("wrong type")
)

// Chain returns the causal chain of err, outermost error first, following
// Unwrap links until exhausted. Wrapped multi-errors (errors.Join) contribute
// only their first cause to keep the chain linear. Returns nil for a nil error.
func Chain(err error) []error {
	if err == nil {
		return nil
	}

	var chain []error

	for err != nil {
		chain = append(chain, err)
		err = cause(err)
	}

	return chain
}

// cause returns the direct cause of err, or nil if there is none.
func cause(err error) error {
	switch unwrapped := err.(type) { //nolint:errorlint // deliberate single-level inspection
	case interface{ Unwrap() error }:
		return unwrapped.Unwrap()
	case interface{ Unwrap() []error }:
		causes := unwrapped.Unwrap()
		if len(causes) == 0 {
			return nil
		}

		return causes[0]
	default:
		return nil
	}
}

// Root returns the innermost error in the causal chain of err.
// Returns nil for a nil error.
func Root(err error) error {
	if err == nil {
		return nil
	}

	for {
		next := cause(err)
		if next == nil {
			return err
		}

		err = next
	}
}

// Ensure converts an arbitrary value into a non-nil error. Errors pass
// through unchanged; any other value is wrapped so downstream consumers
// always receive a usable error.
func Ensure(val any) error {
	if err, ok := val.(error); ok && err != nil {
		return err
	}

	return fmt.Errorf("%w: %v", ErrNonErrorFailure, val)
}

// ErrNonErrorFailure marks an error that wraps a non-error failure value.
var ErrNonErrorFailure = errors.New("non-error failure value")

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use it when you need to collect errors from several operations and
// return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error: nil if empty,
// the error itself if there is exactly one, or a joined error otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
