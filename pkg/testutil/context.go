package testutil

import (
	"net/http"

	"profiled/pkg/requestcontext"
)

// WithPhone attaches an authenticated phone number to the request context.
// This simulates what the auth middleware does for authenticated requests.
func WithPhone(req *http.Request, phone string) *http.Request {
	return req.WithContext(requestcontext.WithPhone(req.Context(), phone))
}

// WithTraceID attaches a trace id to the request context.
func WithTraceID(req *http.Request, traceID string) *http.Request {
	return req.WithContext(requestcontext.WithTraceID(req.Context(), traceID))
}
