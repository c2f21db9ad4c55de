package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"profiled/internal/platform/logger"
	"profiled/internal/profile"
	"profiled/pkg/httperr"
	"profiled/pkg/requestcontext"
)

// Service defines the profile operations the handler delegates to.
type Service interface {
	Fetch(ctx context.Context, phone string) (profile.Profile, error)
	Upsert(ctx context.Context, phone, name, email string) (profile.Profile, error)
}

// Handler is the thin HTTP layer for the profile resource. It decodes,
// validates and delegates; error formatting stays in httperr.Write so every
// route shares one status/body shape.
type Handler struct {
	logger   *slog.Logger
	profiles Service
}

// New creates a profile Handler.
func New(profiles Service, log *slog.Logger) *Handler {
	return &Handler{logger: log, profiles: profiles}
}

// Register mounts the profile routes behind the auth stage.
func (h *Handler) Register(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/profile", h.handleGetProfile)
		r.Post("/profile", h.handlePostProfile)
	})
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.WithTrace(ctx, h.logger)

	phone := requestcontext.Phone(ctx)
	if phone == "" {
		// Should never happen behind RequireAuth.
		httperr.Write(w, log, httperr.New(httperr.CodeInternal, "authentication context error"))
		return
	}

	p, err := h.profiles.Fetch(ctx, phone)
	if err != nil {
		httperr.Write(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handlePostProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.WithTrace(ctx, h.logger)

	phone := requestcontext.Phone(ctx)
	if phone == "" {
		httperr.Write(w, log, httperr.New(httperr.CodeInternal, "authentication context error"))
		return
	}

	var sub profile.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"message": "Request body too large"})
			return
		}
		httperr.Write(w, log, httperr.New(httperr.CodeInvalidInput, "Invalid request body"))
		return
	}

	normalized, err := sub.Validate()
	if err != nil {
		httperr.Write(w, log, err)
		return
	}

	p, err := h.profiles.Upsert(ctx, phone, normalized.Name, normalized.Email)
	if err != nil {
		httperr.Write(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
