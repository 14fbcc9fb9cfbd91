package jobs

import (
	"log/slog"

	"github.com/alitto/pond/v2"
	"github.com/zoobzio/clockz"
)

// Option is a function that configures the retry driver.
// Options follow the functional options pattern for flexible configuration.
type Option func(*options)

// options holds the internal driver configuration.
type options struct {
	clock clockz.Clock
	log   *slog.Logger
	pool  pond.Pool
}

// newOptions applies opts over the defaults: real clock, default slog
// logger, shared workers pool.
func newOptions(opts []Option) *options {
	intOpts := &options{
		clock: clockz.RealClock,
	}

	for _, option := range opts {
		option(intOpts)
	}

	if intOpts.log == nil {
		intOpts.log = slog.Default()
	}

	return intOpts
}

// WithClock overrides the clock used for attempt deadlines and inter-retry
// pauses. Tests use a fake clock to exercise timing without sleeping.
func WithClock(clock clockz.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger overrides the logger used for per-attempt failure logging.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithPool runs attempts on a dedicated pool instead of the shared workers
// pool. Useful when attempts may be abandoned after their deadline and
// should not tie up shared workers.
func WithPool(pool pond.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

