// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Context keys and getter/setter functions live here so that values set by
// middleware (trace id, authenticated phone number, request time) can be
// consumed by services without importing net/http.
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	traceIDKey     struct{}
	phoneKey       struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyTraceID     = traceIDKey{}
	ContextKeyPhone       = phoneKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// TraceID retrieves the request correlation id from the context.
// Returns "" if not set.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyTraceID).(string); ok {
		return id
	}
	return ""
}

// WithTraceID injects a correlation id into the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// Phone retrieves the authenticated phone number from the context.
// Returns "" if the request is unauthenticated.
func Phone(ctx context.Context) string {
	if phone, ok := ctx.Value(ContextKeyPhone).(string); ok {
		return phone
	}
	return ""
}

// WithPhone injects an authenticated phone number into the context.
func WithPhone(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, ContextKeyPhone, phone)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() for non-HTTP contexts (workers, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that don't run the full HTTP middleware chain.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
