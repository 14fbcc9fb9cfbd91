package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/keelworks/keel-common/workers"
	"go.uber.org/atomic"
)

// WorkValue is a unit of work producing a value. The context is cancelled
// when the attempt's deadline elapses or the caller's context is done;
// cancellation is cooperative and the work is otherwise abandoned.
type WorkValue[T any] func(ctx context.Context) (T, error)

// Work is a unit of work with no result value.
type Work func(ctx context.Context) error

// runWithTimeout runs one attempt of work on a worker pool, bounded by
// timeout (zero means unbounded). It returns:
//   - SuccessOf(value) if the work returns before the deadline with a value
//     the classifier does not consider a failure,
//   - FailureOf(err) if the work returns an error, panics, or returns a
//     registered failure value,
//   - TimeoutOf() if the deadline elapses first.
//
// On timeout the in-flight work is NOT stopped; its context is cancelled
// and the goroutine is abandoned. If it later completes, the result is
// discarded via a one-shot flag. Callers must treat retried work as
// potentially still running.
func runWithTimeout[T any](ctx context.Context, o *options, timeout time.Duration, work WorkValue[T]) Outcome[T] {
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultChan := make(chan Outcome[T], 1)
	delivered := atomic.NewBool(false)

	// deliver publishes an outcome unless the attempt was already settled.
	deliver := func(out Outcome[T]) {
		if delivered.CompareAndSwap(false, true) {
			resultChan <- out
		}
	}

	submit(o, func() {
		defer func() {
			if r := recover(); r != nil {
				deliver(FailureOf[T](fmt.Errorf("%w: %v", ErrWorkPanicked, r)))
			}
		}()

		value, err := work(attemptCtx)
		deliver(classifyResult(value, err))
	})

	if timeout <= 0 {
		select {
		case <-ctx.Done():
			return FailureOf[T](ctx.Err())
		case out := <-resultChan:
			return out
		}
	}

	select {
	case out := <-resultChan:
		return out
	case <-ctx.Done():
		return FailureOf[T](ctx.Err())
	case <-o.clock.After(timeout):
		if !delivered.CompareAndSwap(false, true) {
			// The work finished in the same instant; prefer its result.
			return <-resultChan
		}

		return TimeoutOf[T]()
	}
}

// classifyResult folds a work function's (value, error) return into an
// Outcome, consulting the failure classifier for non-error failure values.
func classifyResult[T any](value T, err error) Outcome[T] {
	if err != nil {
		return FailureOf[T](err)
	}

	if IsFailure(value) {
		return failureOfValue[T](value)
	}

	return SuccessOf(value)
}

// submit schedules f on the configured pool, falling back to the shared
// workers pool.
func submit(o *options, f func()) {
	if o.pool != nil {
		_ = o.pool.Submit(f)

		return
	}

	_ = workers.Submit(f)
}
