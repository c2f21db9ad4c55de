// Package httpapi assembles the request pipeline: trace assignment, request
// time, hardening headers, CORS, body cap, access logging and metrics wrap
// every route; the profile routes additionally sit behind authentication.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"profiled/internal/audit"
	"profiled/internal/platform/config"
	"profiled/internal/platform/metrics"
	"profiled/internal/platform/middleware"
	profilehandler "profiled/internal/profile/handler"
	"profiled/internal/token"
)

// New wires all public endpoints.
func New(
	cfg config.Server,
	log *slog.Logger,
	m *metrics.Metrics,
	verifier token.Verifier,
	profiles profilehandler.Service,
	auditor *audit.Recorder,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Trace)
	r.Use(middleware.RequestTime)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.FrontendOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(middleware.BodyLimit(cfg.BodyLimit))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Latency(m))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		h := profilehandler.New(profiles, log)
		h.Register(api, middleware.RequireAuth(verifier, log, m, auditor))
	})

	// Unknown paths and unknown method/path combinations both render the
	// same generic not-found body.
	notFound := func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
