package jobs

import "fmt"

// Decision is the retry policy's verdict on a completed, unsuccessful
// attempt.
type Decision int

const (
	// RetryTimeout means the attempt timed out and budget remains.
	RetryTimeout Decision = iota

	// RetryFailure means the attempt failed transiently and budget remains.
	RetryFailure

	// AbortMaxRetries means the retry budget is exhausted.
	AbortMaxRetries

	// AbortFatal means the abort predicate flagged the failure as fatal.
	AbortFatal
)

// String returns a stable label for the decision, used in logs and metrics.
func (d Decision) String() string {
	switch d {
	case RetryTimeout:
		return "retry-timeout"
	case RetryFailure:
		return "retry-failure"
	case AbortMaxRetries:
		return "abort-max-retries"
	case AbortFatal:
		return "abort-fatal-error"
	default:
		return fmt.Sprintf("unknown decision (%d)", int(d))
	}
}

// decide is the pure state-transition function of the retry engine. Given
// the job state and the outcome of the most recent attempt, it returns
// exactly one Decision. Rules, evaluated in order:
//
//  1. Timeout: retry while budget remains, otherwise abort. The abort
//     predicate is never consulted for timeouts, so a permanently hanging
//     dependency burns the whole retry budget before aborting.
//  2. Failure: fatal per the abort predicate aborts immediately regardless
//     of remaining budget; otherwise retry while budget remains.
//
// Success outcomes never reach this function; the driver short-circuits.
func decide[T any](j *job, out Outcome[T]) Decision {
	if out.IsTimeout() {
		if j.retries < j.settings.MaxRetries {
			return RetryTimeout
		}

		return AbortMaxRetries
	}

	if j.settings.abort()(out.Chain()) {
		return AbortFatal
	}

	if j.retries < j.settings.MaxRetries {
		return RetryFailure
	}

	return AbortMaxRetries
}
