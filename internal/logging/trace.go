package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// traceIDKey is the context key for the per-invocation trace ID.
type traceIDKey struct{}

// GenerateTraceID returns a new lexicographically sortable trace ID.
func GenerateTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID stores the trace ID on the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored on the context, or empty
// when none was attached.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the context's trace ID, minting one when the
// context has none. The result still needs ContextWithTraceID to stick.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return GenerateTraceID()
}
