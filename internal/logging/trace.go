package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type traceIDKey struct{}

// NewTraceID returns a new, time-sortable ULID string.
func NewTraceID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id stored in ctx, if any.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(traceIDKey{}).(string)
	return id, ok && id != ""
}

// GetOrGenerateTraceID returns the trace id in ctx or a fresh one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id, ok := TraceIDFromContext(ctx); ok {
		return id
	}
	return NewTraceID()
}
