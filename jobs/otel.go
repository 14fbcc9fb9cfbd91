package jobs

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startAttemptSpan creates a child span for a single attempt, using the
// global tracer configured by the embedding application. The caller is
// responsible for ending the span via endAttemptSpan.
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startAttemptSpan(ctx context.Context, j *job) (context.Context, trace.Span) {
	tracer := otel.Tracer("jobs")

	ctx, span := tracer.Start(ctx, "jobs.attempt")
	span.SetAttributes(
		attribute.String("job", j.name),
		attribute.String("run_id", j.runID),
		attribute.Int("retry", j.retries),
		attribute.Int("max_retries", j.settings.MaxRetries),
	)

	return ctx, span
}

// endAttemptSpan records the attempt outcome on the span and ends it.
func endAttemptSpan[T any](span trace.Span, out Outcome[T]) {
	span.SetAttributes(attribute.String("outcome", attemptOutcomeLabel(out)))

	if err := out.Err(); err != nil {
		span.RecordError(err)
	}

	span.End()
}
