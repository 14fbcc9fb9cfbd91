package jobs

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that a single attempt did not complete within its
// deadline. It surfaces as the cause of a RetryError when the retry budget
// is exhausted by timeouts.
var ErrTimeout = errors.New("attempt timed out")

// ErrWorkPanicked wraps a panic raised by a work function, converting it
// into an ordinary failure so the retry policy can classify it.
var ErrWorkPanicked = errors.New("work function panicked")

// Kind discriminates the two terminal failure modes of the retry driver.
type Kind int

const (
	// MaxRetriesExceeded means timeouts or transient failures persisted
	// past the retry budget.
	MaxRetriesExceeded Kind = iota

	// FatalError means the abort predicate recognized an unrecoverable
	// failure and retries were cut short.
	FatalError
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case MaxRetriesExceeded:
		return "max retries exceeded"
	case FatalError:
		return "fatal error"
	default:
		return fmt.Sprintf("unknown kind (%d)", int(k))
	}
}

// RetryError is the single error type raised by the retry driver. It
// identifies the job, the terminal condition, and how many attempts were
// made, and wraps the final underlying failure so the original chain stays
// inspectable via errors.Is and errors.As.
type RetryError struct {
	// Job is the human-readable job name passed to the driver.
	Job string

	// Kind is the terminal condition.
	Kind Kind

	// Attempts is the total number of attempts made, including the first.
	Attempts int

	cause error
}

// Error implements the error interface.
func (e *RetryError) Error() string {
	return fmt.Sprintf("job %q: %s after %d attempt(s): %v", e.Job, e.Kind, e.Attempts, e.cause)
}

// Unwrap returns the final underlying failure.
func (e *RetryError) Unwrap() error {
	return e.cause
}

var _ error = (*RetryError)(nil)
