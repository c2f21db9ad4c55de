// Package middleware holds the cross-cutting HTTP pipeline stages. Each
// stage either enriches the request context and continues, or writes a
// response and short-circuits.
package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"profiled/pkg/requestcontext"
)

// TraceHeader is the load balancer trace context header, formatted as
// "<trace>/<remainder>".
const TraceHeader = "X-Cloud-Trace-Context"

// Trace assigns every request a correlation id: the first segment of the
// trace header when present, a fresh UUID otherwise. Runs before all other
// stages and never fails.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := ""
		if v := r.Header.Get(TraceHeader); v != "" {
			traceID, _, _ = strings.Cut(v, "/")
		}
		if traceID == "" {
			traceID = uuid.NewString()
		}
		ctx := requestcontext.WithTraceID(r.Context(), traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
