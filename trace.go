package cpl

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var clientTracer = otel.Tracer("riskibarqy/cpl-go")
var clientNoopSpan = trace.SpanFromContext(context.Background())

// startSpan only opens a child span when the caller already carries a valid
// trace; the SDK never starts traces of its own.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, clientNoopSpan
	}
	return clientTracer.Start(ctx, name)
}
