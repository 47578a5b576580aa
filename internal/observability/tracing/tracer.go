package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this application's tracer.
const tracerName = "backoffice-cms"

// GetTracer returns the application tracer for creating spans.
// It resolves against the current global provider on every call, so spans
// follow provider changes made after package initialization.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
