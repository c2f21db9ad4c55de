package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"profiled/internal/platform/logger"
	"profiled/internal/platform/metrics"
)

// statusRecorder captures the final status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// AccessLog emits one line per completed request: method, path, status and
// duration. Severity tracks the outcome: ERROR for 5xx, WARN for 4xx, INFO
// otherwise.
func AccessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			traced := logger.WithTrace(r.Context(), log)
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"statusCode", rec.status,
				"durationMs", time.Since(start).Milliseconds(),
			}
			switch {
			case rec.status >= 500:
				traced.Error("Request completed", attrs...)
			case rec.status >= 400:
				traced.Warn("Request completed", attrs...)
			default:
				traced.Info("Request completed", attrs...)
			}
		})
	}
}

// Latency feeds the request counter and duration histogram.
func Latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			m.ObserveRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
