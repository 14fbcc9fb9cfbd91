package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	"go.uber.org/atomic"
)

// hang blocks until the attempt context is cancelled, simulating a
// permanently hanging dependency.
func hang(ctx context.Context) (int, error) {
	<-ctx.Done()

	return 0, ctx.Err()
}

func TestRetryWithTimeoutValue_ImmediateSuccess(t *testing.T) {
	t.Parallel()

	callCount := 0
	start := time.Now()

	result, err := RetryWithTimeoutValue(t.Context(), "immediate", Settings{
		MaxRetries: 3,
		Timeout:    time.Second,
		Pause:      time.Second,
	}, func(ctx context.Context) (int, error) {
		callCount++

		return 42, nil
	}, WithLogger(slogt.New(t)))

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, callCount)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "success must not sleep")
}

func TestRetryWithTimeoutValue_SuccessAfterTransientFailures(t *testing.T) {
	t.Parallel()

	const failures = 2

	callCount := 0
	start := time.Now()

	result, err := RetryWithTimeoutValue(t.Context(), "flaky", Settings{
		MaxRetries: 5,
		Timeout:    time.Second,
		Pause:      20 * time.Millisecond,
	}, func(ctx context.Context) (string, error) {
		callCount++
		if callCount <= failures {
			return "", errors.New("transient") //nolint:err113 // Test error
		}

		return "done", nil
	}, WithLogger(slogt.New(t)))

	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, failures+1, callCount)
	assert.GreaterOrEqual(t, time.Since(start), time.Duration(failures)*20*time.Millisecond,
		"driver should have slept the pause between each retry")
}

func TestRetryWithTimeoutValue_ExhaustsBudgetOnTimeouts(t *testing.T) {
	t.Parallel()

	const maxRetries = 3

	start := time.Now()

	_, err := RetryWithTimeoutValue(t.Context(), "hanging", Settings{
		MaxRetries: maxRetries,
		Timeout:    30 * time.Millisecond,
		Pause:      5 * time.Millisecond,
	}, hang, WithLogger(slogt.New(t)))

	require.Error(t, err)

	var retryErr *RetryError

	require.ErrorAs(t, err, &retryErr)
	assert.Equal(t, MaxRetriesExceeded, retryErr.Kind)
	assert.Equal(t, "hanging", retryErr.Job)
	assert.Equal(t, maxRetries+1, retryErr.Attempts)
	require.ErrorIs(t, err, ErrTimeout, "final timeout must stay inspectable as the cause")

	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, time.Duration(maxRetries+1)*30*time.Millisecond+
		time.Duration(maxRetries)*5*time.Millisecond)
}

func TestRetryWithTimeoutValue_FatalShortCircuits(t *testing.T) {
	t.Parallel()

	callCount := 0
	start := time.Now()

	_, err := RetryWithTimeoutValue(t.Context(), "fatal", Settings{
		MaxRetries: 3,
		Timeout:    time.Second,
		Pause:      time.Second,
		Abort:      AlwaysAbort,
	}, func(ctx context.Context) (int, error) {
		callCount++

		return 0, errors.New("unrecoverable") //nolint:err113 // Test error
	}, WithLogger(slogt.New(t)))

	require.Error(t, err)

	var retryErr *RetryError

	require.ErrorAs(t, err, &retryErr)
	assert.Equal(t, FatalError, retryErr.Kind)
	assert.Equal(t, 1, retryErr.Attempts, "fatal errors are never retried")
	assert.Equal(t, 1, callCount)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "no pause before a fatal abort")
}

func TestRetryWithTimeoutValue_AbortSeesChain(t *testing.T) {
	t.Parallel()

	root := errors.New("root cause") //nolint:err113 // Test error

	var seen []error

	_, err := RetryWithTimeoutValue(t.Context(), "chained", Settings{
		MaxRetries: 2,
		Timeout:    time.Second,
		Abort: func(chain []error) bool {
			seen = chain

			return errors.Is(chain[len(chain)-1], root)
		},
	}, func(ctx context.Context) (int, error) {
		return 0, root
	}, WithLogger(slogt.New(t)))

	require.Error(t, err)
	require.NotEmpty(t, seen)
	assert.Equal(t, root, seen[len(seen)-1])
	require.ErrorIs(t, err, root, "original cause must remain inspectable through the RetryError")
}

func TestRetryWithTimeoutValue_ExhaustsBudgetOnFailures(t *testing.T) {
	t.Parallel()

	const maxRetries = 2

	callCount := 0
	testErr := errors.New("always failing") //nolint:err113 // Test error

	_, err := RetryWithTimeoutValue(t.Context(), "failing", Settings{
		MaxRetries: maxRetries,
		Timeout:    time.Second,
	}, func(ctx context.Context) (int, error) {
		callCount++

		return 0, testErr
	}, WithLogger(slogt.New(t)))

	require.Error(t, err)

	var retryErr *RetryError

	require.ErrorAs(t, err, &retryErr)
	assert.Equal(t, MaxRetriesExceeded, retryErr.Kind)
	assert.Equal(t, maxRetries+1, callCount)
	require.ErrorIs(t, err, testErr)
}

func TestRetryWithTimeoutValue_ZeroRetries(t *testing.T) {
	t.Parallel()

	callCount := 0

	_, err := RetryWithTimeoutValue(t.Context(), "one-shot", Settings{
		MaxRetries: 0,
		Timeout:    time.Second,
	}, func(ctx context.Context) (int, error) {
		callCount++

		return 0, assert.AnError
	}, WithLogger(slogt.New(t)))

	require.Error(t, err)
	assert.Equal(t, 1, callCount, "MaxRetries=0 means a single attempt")
}

func TestRetryWithTimeoutValue_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := RetryWithTimeoutValue(ctx, "cancelled", Settings{
		MaxRetries: 5,
		Timeout:    time.Second,
	}, func(ctx context.Context) (int, error) {
		return 0, assert.AnError
	}, WithLogger(slogt.New(t)))

	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRetryWithTimeoutValue_CancelDuringPause(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())

	callCount := 0

	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := RetryWithTimeoutValue(ctx, "pause-cancel", Settings{
		MaxRetries: 5,
		Timeout:    time.Second,
		Pause:      5 * time.Second,
	}, func(ctx context.Context) (int, error) {
		callCount++

		return 0, assert.AnError
	}, WithLogger(slogt.New(t)))

	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, callCount, "cancellation during the pause must not start another attempt")
}

func TestRetryWithTimeoutValue_PauseUsesInjectedClock(t *testing.T) {
	t.Parallel()

	clock := clockz.NewFakeClock()
	callCount := atomic.NewInt32(0)
	done := make(chan struct{})

	var (
		result int
		err    error
	)

	go func() {
		defer close(done)

		result, err = RetryWithTimeoutValue(t.Context(), "clocked", Settings{
			MaxRetries: 2,
			Pause:      time.Minute,
		}, func(ctx context.Context) (int, error) {
			if callCount.Inc() < 2 {
				return 0, errors.New("transient") //nolint:err113 // Test error
			}

			return 9, nil
		}, WithClock(clock))
	}()

	// Let the driver reach the pause, then advance fake time past it.
	time.Sleep(50 * time.Millisecond)
	clock.Advance(time.Minute)
	clock.BlockUntilReady()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("driver did not finish; pause is not using the injected clock")
	}

	require.NoError(t, err)
	assert.Equal(t, 9, result)
	assert.Equal(t, int32(2), callCount.Load())
}

func TestRetryWithTimeout_NoValue(t *testing.T) {
	t.Parallel()

	callCount := 0

	err := RetryWithTimeout(t.Context(), "effect", Settings{
		MaxRetries: 2,
		Timeout:    time.Second,
	}, func(ctx context.Context) error {
		callCount++
		if callCount < 2 {
			return errors.New("transient") //nolint:err113 // Test error
		}

		return nil
	}, WithLogger(slogt.New(t)))

	require.NoError(t, err)
	assert.Equal(t, 2, callCount)
}

func TestRetryError_Message(t *testing.T) {
	t.Parallel()

	err := &RetryError{
		Job:      "sync-accounts",
		Kind:     MaxRetriesExceeded,
		Attempts: 4,
		cause:    ErrTimeout,
	}

	msg := err.Error()
	assert.Contains(t, msg, "sync-accounts")
	assert.Contains(t, msg, "max retries exceeded")
	assert.Contains(t, msg, "4 attempt(s)")
	require.ErrorIs(t, err, ErrTimeout)
}

func TestRetryError_KindStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "max retries exceeded", MaxRetriesExceeded.String())
	assert.Equal(t, "fatal error", FatalError.String())
	assert.Contains(t, Kind(9).String(), "unknown")
}
