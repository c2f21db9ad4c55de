package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ProfileWrites   *prometheus.CounterVec
	AuthRejections  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "profiled_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		}, []string{"method", "path", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "profiled_http_request_duration_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"method", "path"}),
		ProfileWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "profiled_profile_writes_total",
			Help: "Profile upserts by branch (create or update)",
		}, []string{"branch"}),
		AuthRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "profiled_auth_rejections_total",
			Help: "Authentication rejections by reason",
		}, []string{"reason"}),
	}
}

// ObserveRequest records one completed request. Nil-safe so tests can pass a
// zero-value or absent Metrics.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil || m.RequestsTotal == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, path, statusLabel(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(float64(elapsed.Microseconds()) / 1000.0)
}

// IncProfileWrite counts one upsert on the given branch.
func (m *Metrics) IncProfileWrite(branch string) {
	if m == nil || m.ProfileWrites == nil {
		return
	}
	m.ProfileWrites.WithLabelValues(branch).Inc()
}

// IncAuthRejection counts one authentication rejection.
func (m *Metrics) IncAuthRejection(reason string) {
	if m == nil || m.AuthRejections == nil {
		return
	}
	m.AuthRejections.WithLabelValues(reason).Inc()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
