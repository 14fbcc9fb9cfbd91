package jobs

import (
	"sync"

	"github.com/keelworks/keel-common/errs"
	"github.com/keelworks/keel-common/nils"
)

// TimedOut is the distinguished sentinel representing an attempt whose
// deadline elapsed. It is a plain value, not an error, so it can flow
// through the same channels as ordinary work results.
var TimedOut = &timeoutSentinel{} //nolint:gochecknoglobals

type timeoutSentinel struct{}

func (*timeoutSentinel) String() string { return "TIMEOUT" }

// failureChecks holds application-registered predicates extending what
// counts as a failure value. Guarded for concurrent registration, though
// registration is expected at init time.
var failureChecks = struct { //nolint:gochecknoglobals
	sync.RWMutex
	checks []func(any) bool
}{}

// RegisterFailure registers a predicate recognizing additional
// domain-specific failure values returned by work functions. Existing call
// sites are unaffected; the predicate only widens classification.
func RegisterFailure(check func(any) bool) {
	failureChecks.Lock()
	defer failureChecks.Unlock()

	failureChecks.checks = append(failureChecks.checks, check)
}

// IsFailure reports whether val represents a failed attempt. Nil (and
// nil-valued interfaces) never do; errors and the TimedOut sentinel always
// do; everything else is a success unless a registered predicate says
// otherwise. The classification is pure: calling it twice on the same value
// yields the same answer.
func IsFailure(val any) bool {
	if nils.IsNilish(val) {
		return false
	}

	if _, ok := val.(error); ok {
		return true
	}

	if _, ok := val.(*timeoutSentinel); ok {
		return true
	}

	failureChecks.RLock()
	defer failureChecks.RUnlock()

	for _, check := range failureChecks.checks {
		if check(val) {
			return true
		}
	}

	return false
}

// ErrorChain converts a failure value into its causal error chain,
// outermost first. Non-error failure values are wrapped minimally so the
// result is always non-empty. The TimedOut sentinel maps to ErrTimeout.
func ErrorChain(val any) []error {
	if _, ok := val.(*timeoutSentinel); ok {
		return []error{ErrTimeout}
	}

	if err, ok := val.(error); ok {
		return errs.Chain(err)
	}

	return []error{errs.Ensure(val)}
}
