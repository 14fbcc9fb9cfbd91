// Package jobs provides a retry-with-timeout engine: it runs a unit of
// work under a per-attempt wall-clock deadline and retries timeouts and
// transient failures up to a configured budget, while a caller-supplied
// abort predicate can cut retries short for fatal failures.
//
// Basic usage:
//
//	err := jobs.RetryWithTimeout(ctx, "sync-accounts", jobs.Settings{
//	    MaxRetries: 3,
//	    Timeout:    time.Second,
//	    Pause:      50 * time.Millisecond,
//	}, func(ctx context.Context) error {
//	    return syncAccounts(ctx)
//	})
//
// For operations that return values:
//
//	rows, err := jobs.RetryWithTimeoutValue(ctx, "load-rows", settings,
//	    func(ctx context.Context) ([]Row, error) {
//	        return loadRows(ctx)
//	    })
//
// Attempts are strictly sequential; attempt N+1 never starts before
// attempt N's outcome is known. A timed-out attempt is not stopped: its
// context is cancelled, but the work itself is abandoned and may still be
// running while the next attempt proceeds. Callers are responsible for
// making retried work safe to repeat.
package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RetryWithTimeout runs work under settings until it succeeds, the retry
// budget is exhausted, or the abort predicate flags a fatal failure. It
// returns nil on success; otherwise a *RetryError identifying the job, the
// terminal condition and the final underlying cause. Context cancellation
// is returned as ctx.Err() directly.
func RetryWithTimeout(ctx context.Context, name string, settings Settings, work Work, opts ...Option) error {
	_, err := RetryWithTimeoutValue(ctx, name, settings, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, work(ctx)
	}, opts...)

	return err
}

// RetryWithTimeoutValue is the value-returning form of RetryWithTimeout.
// On success it returns the work function's value; on terminal failure the
// zero value of T and a *RetryError (or ctx.Err() on cancellation).
func RetryWithTimeoutValue[T any](
	ctx context.Context,
	name string,
	settings Settings,
	work WorkValue[T],
	opts ...Option,
) (T, error) {
	var zero T

	o := newOptions(opts)

	j := &job{
		name:     name,
		runID:    uuid.NewString(),
		settings: settings,
	}

	start := time.Now()

	for {
		spanCtx, span := startAttemptSpan(ctx, j)
		out := runWithTimeout(spanCtx, o, settings.Timeout, work)
		endAttemptSpan(span, out)
		attemptsTotal.WithLabelValues(j.name, attemptOutcomeLabel(out)).Inc()

		if err := ctx.Err(); err != nil {
			observeTerminal(j, conditionCancelled, start)

			return zero, err
		}

		if out.IsSuccess() {
			observeTerminal(j, conditionSuccess, start)

			return out.Value(), nil
		}

		switch decision := decide(j, out); decision {
		case RetryTimeout, RetryFailure:
			o.log.Warn("Job attempt failed, retrying",
				"job", j.name,
				"run_id", j.runID,
				"attempt", j.attempts(),
				"max_retries", settings.MaxRetries,
				"decision", decision.String(),
				"error", out.Err(),
			)

			if err := pause(ctx, o, settings.Pause); err != nil {
				observeTerminal(j, conditionCancelled, start)

				return zero, err
			}

			j.retries++
		case AbortMaxRetries:
			observeTerminal(j, conditionMaxRetries, start)

			return zero, &RetryError{
				Job:      j.name,
				Kind:     MaxRetriesExceeded,
				Attempts: j.attempts(),
				cause:    out.Err(),
			}
		case AbortFatal:
			observeTerminal(j, conditionFatal, start)

			return zero, &RetryError{
				Job:      j.name,
				Kind:     FatalError,
				Attempts: j.attempts(),
				cause:    out.Err(),
			}
		}
	}
}

// pause waits for the configured inter-retry pause, respecting context
// cancellation. Uses the driver clock so tests can control time.
func pause(ctx context.Context, o *options, dur time.Duration) error {
	if dur <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-o.clock.After(dur):
		return nil
	}
}

// observeTerminal records terminal metrics for one driver invocation.
func observeTerminal(j *job, condition string, start time.Time) {
	terminalTotal.WithLabelValues(j.name, condition).Inc()
	jobDuration.WithLabelValues(j.name, condition).Observe(time.Since(start).Seconds())
}
