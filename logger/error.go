package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches structured logging attributes (slog key-value
// pairs) to an error. When the returned error is later logged through a
// handler wrapped with WithErrorAttrs, the attributes are extracted and
// included in the log record alongside the error itself.
//
// Args should be key-value pairs compatible with slog.
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	rec := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	rec.Add(args...)

	var attrs []slog.Attr

	rec.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{
		err:   err,
		attrs: attrs,
	}
}

// annotatedError carries slog attributes alongside an error. It supports
// unwrapping, so errors.Is and errors.As see through it.
type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

var _ error = (*annotatedError)(nil)

// WithErrorAttrs wraps a slog.Handler so that attributes embedded in
// annotated errors (see AnnotateError) are lifted into the log record.
// The error attribute itself is replaced with the unannotated error.
func WithErrorAttrs(inner slog.Handler) slog.Handler {
	return &errorAttrHandler{inner: inner}
}

type errorAttrHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*errorAttrHandler)(nil)

func (h *errorAttrHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *errorAttrHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			var annotated *annotatedError

			if errors.As(err, &annotated) {
				baseAttrs = append(baseAttrs, slog.Attr{
					Key:   attr.Key,
					Value: slog.AnyValue(annotated.err),
				})
				errAttrs = append(errAttrs, annotated.attrs...)

				return true
			}
		}

		baseAttrs = append(baseAttrs, attr)

		return true
	})

	if len(errAttrs) == 0 {
		return h.inner.Handle(ctx, record)
	}

	rec := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	rec.AddAttrs(baseAttrs...)
	rec.AddAttrs(errAttrs...)

	return h.inner.Handle(ctx, rec)
}

func (h *errorAttrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorAttrHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *errorAttrHandler) WithGroup(name string) slog.Handler {
	return &errorAttrHandler{inner: h.inner.WithGroup(name)}
}
