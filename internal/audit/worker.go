package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"profiled/internal/storage"
)

// Collection is the document collection holding the audit trail.
const Collection = "audit"

// Worker consumes audit events from a channel and persists them. It keeps
// background processing testable without wiring queue implementations.
type Worker struct {
	store  storage.DocumentStore
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store storage.DocumentStore, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context is cancelled. Persistence failures
// are logged and skipped; the audit trail must never take the service down.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			doc := storage.Document{
				"timestamp": event.Timestamp,
				"phone":     event.Phone,
				"action":    event.Action,
				"reason":    event.Reason,
				"traceId":   event.TraceID,
			}
			if err := w.store.Set(ctx, Collection, uuid.NewString(), doc); err != nil {
				w.logger.Warn("audit event dropped", "action", event.Action, "error", err.Error())
			}
		}
	}
}
