// Package logger configures structured logging for applications embedding
// this library, and provides error annotation so rich context attached at
// the point of failure survives until the error is finally logged.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
)

// configMutex serializes calls to Configure, which mutate process-global
// logging state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options configures logging.
type Options struct {
	// JSON selects JSON output instead of logfmt-style text.
	JSON bool

	// MinLevel is the minimum level emitted. Defaults to slog.LevelInfo.
	MinLevel slog.Level

	// LegacyLevel is the level assigned to messages arriving through the
	// old log package, which doesn't carry levels of its own.
	LegacyLevel slog.Level

	// Output is the destination. Defaults to os.Stdout.
	Output io.Writer
}

// Configure installs a process-wide slog logger according to opts and
// returns it. The returned logger extracts attributes from errors created
// with AnnotateError. The legacy log package is redirected into the same
// handler so third-party packages participate too.
//
// This function is thread-safe but modifies global state; concurrent calls
// are serialized.
func Configure(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	handler = WithErrorAttrs(handler)

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Redirect the legacy log package into slog.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	return logger
}
