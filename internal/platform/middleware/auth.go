package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"profiled/internal/audit"
	"profiled/internal/platform/logger"
	"profiled/internal/platform/metrics"
	"profiled/internal/token"
	"profiled/pkg/httperr"
	"profiled/pkg/requestcontext"
)

const bearerPrefix = "Bearer "

// Rejection reasons, kept distinct for observability even though all three
// map to 401.
const (
	reasonMissingHeader = "missing or invalid header"
	reasonInvalidToken  = "invalid or expired token"
	reasonMissingPhone  = "token missing phone number"
)

// RequireAuth converts the Authorization header into an authenticated phone
// number on the request context, or short-circuits with 401. Downstream
// stages never run for rejected requests. Rejections log the reason at WARN
// without token contents.
func RequireAuth(verifier token.Verifier, log *slog.Logger, m *metrics.Metrics, auditor *audit.Recorder) func(http.Handler) http.Handler {
	reject := func(w http.ResponseWriter, r *http.Request, reason, message string) {
		ctx := r.Context()
		logger.WithTrace(ctx, log).Warn("Authentication failed: " + reason)
		m.IncAuthRejection(reason)
		auditor.Record(ctx, audit.Event{Action: audit.ActionAuthRejected, Reason: reason})
		httperr.Write(w, nil, httperr.New(httperr.CodeUnauthorized, message))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok {
				reject(w, r, reasonMissingHeader, "Missing or invalid Authorization header")
				return
			}

			claims, err := verifier.Verify(r.Context(), raw)
			if err != nil {
				// Verifier failures are routine client faults here, not
				// system faults; they are swallowed into a rejection.
				reject(w, r, reasonInvalidToken, "Invalid or expired token")
				return
			}
			if claims.Phone == "" {
				reject(w, r, reasonMissingPhone, "Token does not contain a phone number")
				return
			}

			ctx := requestcontext.WithPhone(r.Context(), claims.Phone)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
