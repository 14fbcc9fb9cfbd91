package jobs

import (
	"github.com/keelworks/keel-common/errs"
)

// outcomeKind discriminates the three Outcome variants.
type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeTimeout
	outcomeFailure
)

// Outcome is the tri-state result of a single attempt: success with a value,
// a timeout, or a failure carrying the causal error chain (outermost first).
// The variant set is closed; domain-specific failure values returned by work
// are folded into the Failure variant via the classifier (see RegisterFailure).
type Outcome[T any] struct {
	value T
	chain []error
	kind  outcomeKind
}

// SuccessOf creates a successful Outcome carrying value.
func SuccessOf[T any](value T) Outcome[T] {
	return Outcome[T]{kind: outcomeSuccess, value: value}
}

// TimeoutOf creates the timeout Outcome. The attempt's deadline elapsed
// before it produced a result; any in-flight work has been abandoned.
func TimeoutOf[T any]() Outcome[T] {
	return Outcome[T]{kind: outcomeTimeout}
}

// FailureOf creates a failed Outcome from err, materializing its causal
// chain. A nil err is recorded as a single-element chain wrapping nil so the
// chain is never empty.
func FailureOf[T any](err error) Outcome[T] {
	return Outcome[T]{
		kind:  outcomeFailure,
		chain: errs.Chain(errs.Ensure(err)),
	}
}

// failureOfValue creates a failed Outcome from a non-error failure value
// recognized by the classifier.
func failureOfValue[T any](value any) Outcome[T] {
	return Outcome[T]{
		kind:  outcomeFailure,
		chain: ErrorChain(value),
	}
}

// IsSuccess returns true for the Success variant.
func (o Outcome[T]) IsSuccess() bool { return o.kind == outcomeSuccess }

// IsTimeout returns true for the Timeout variant.
func (o Outcome[T]) IsTimeout() bool { return o.kind == outcomeTimeout }

// IsFailure returns true for the Failure variant.
func (o Outcome[T]) IsFailure() bool { return o.kind == outcomeFailure }

// Value returns the success value. It is the zero value of T for the
// Timeout and Failure variants.
func (o Outcome[T]) Value() T { return o.value }

// Chain returns the causal error chain, outermost first. It is nil for the
// Success and Timeout variants and never empty for Failure.
func (o Outcome[T]) Chain() []error { return o.chain }

// Err returns the error summarizing this outcome: nil for Success,
// ErrTimeout for Timeout, and the outermost chained error for Failure.
func (o Outcome[T]) Err() error {
	switch o.kind {
	case outcomeTimeout:
		return ErrTimeout
	case outcomeFailure:
		return o.chain[0]
	default:
		return nil
	}
}
