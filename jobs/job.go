package jobs

import (
	"time"
)

// AbortFunc inspects the causal error chain of a failed attempt
// (outermost first, never empty) and returns true if the failure is fatal
// and retries must stop. It is never consulted for timeouts; those are
// governed purely by the retry budget.
type AbortFunc func(chain []error) bool

// NeverAbort is an AbortFunc that treats every failure as transient.
func NeverAbort([]error) bool { return false }

// AlwaysAbort is an AbortFunc that treats every failure as fatal.
func AlwaysAbort([]error) bool { return true }

// Settings is the immutable retry configuration template. A fresh job is
// created from it for each driver invocation, so a Settings value can be
// shared freely across callers and goroutines.
type Settings struct {
	// MaxRetries bounds the number of retries after the initial attempt.
	// The driver makes at most MaxRetries+1 attempts.
	MaxRetries int

	// Timeout is the wall-clock deadline for each individual attempt.
	// Zero means attempts may run indefinitely.
	Timeout time.Duration

	// Pause is the wait between attempts. Zero means retry immediately.
	Pause time.Duration

	// Abort decides whether a non-timeout failure is fatal. Nil is
	// equivalent to NeverAbort.
	Abort AbortFunc
}

// abort returns the effective abort predicate.
func (s Settings) abort() AbortFunc {
	if s.Abort == nil {
		return NeverAbort
	}

	return s.Abort
}

// job is the transient per-invocation state tracked across the attempts of
// one driver call. It is owned exclusively by the goroutine running the
// retry loop and is discarded when the driver returns.
type job struct {
	name     string
	runID    string
	settings Settings
	retries  int
}

// attempts returns the total number of attempts made so far, assuming the
// current attempt has completed.
func (j *job) attempts() int {
	return j.retries + 1
}
