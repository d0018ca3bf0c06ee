package observability

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/translate"
)

const tracerName = "github.com/kbukum/errkit/observability"

// Span attribute keys for translated conditions.
const (
	AttrKind      = "error.kind"
	AttrStatus    = "error.status"
	AttrRetryable = "error.retryable"
)

// Tracer returns the errkit tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSpan starts a new span using the errkit tracer.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

// RecordCondition records a translated condition on the span in ctx. Server
// errors mark the span as failed; client errors are recorded without failing
// the span. A non-recording span makes this a no-op.
func RecordCondition(ctx context.Context, cond *errors.Condition, resp translate.Response) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}

	span.SetAttributes(
		attribute.String(AttrKind, string(cond.Kind)),
		attribute.Int(AttrStatus, resp.Status),
		attribute.Bool(AttrRetryable, resp.Retryable),
	)
	span.RecordError(cond)
	if resp.Status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, resp.Message)
	}
}

// Hook adapts RecordCondition to a translation hook.
func Hook() translate.Hook {
	return func(ctx context.Context, cond *errors.Condition, resp translate.Response) {
		RecordCondition(ctx, cond, resp)
	}
}
