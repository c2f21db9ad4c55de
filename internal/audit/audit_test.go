package audit

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiled/internal/platform/logger"
	"profiled/internal/storage"
	"profiled/pkg/requestcontext"
)

func TestRecord_FillsContextFields(t *testing.T) {
	r := NewRecorder(4)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTraceID(requestcontext.WithTime(context.Background(), now), "trace-1")

	r.Record(ctx, Event{Phone: "+15551234567", Action: ActionProfileCreate})

	got := <-r.Events()
	assert.Equal(t, now, got.Timestamp)
	assert.Equal(t, "trace-1", got.TraceID)
	assert.Equal(t, ActionProfileCreate, got.Action)
}

func TestRecord_NilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.Record(context.Background(), Event{Action: ActionAuthRejected})
}

func TestRecord_FullInboxDropsInsteadOfBlocking(t *testing.T) {
	r := NewRecorder(1)
	r.Record(context.Background(), Event{Action: ActionProfileCreate})

	done := make(chan struct{})
	go func() {
		r.Record(context.Background(), Event{Action: ActionProfileUpdate})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full inbox")
	}
}

// signalStore flags each persisted document.
type signalStore struct {
	*storage.MemoryStore
	wrote chan storage.Document
}

func (s *signalStore) Set(ctx context.Context, collection, key string, doc storage.Document) error {
	err := s.MemoryStore.Set(ctx, collection, key, doc)
	s.wrote <- doc
	return err
}

func TestWorker_PersistsAndStops(t *testing.T) {
	store := &signalStore{MemoryStore: storage.NewMemoryStore(), wrote: make(chan storage.Document, 1)}
	recorder := NewRecorder(4)
	worker := NewWorker(store, recorder.Events(), logger.NewWithWriter(io.Discard, "ERROR"))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- worker.Run(ctx) }()

	recorder.Record(ctx, Event{Phone: "+15551234567", Action: ActionProfileCreate, Reason: ""})

	select {
	case doc := <-store.wrote:
		assert.Equal(t, "+15551234567", doc.String("phone"))
		assert.Equal(t, ActionProfileCreate, doc.String("action"))
	case <-time.After(time.Second):
		t.Fatal("worker did not persist the event")
	}

	cancel()
	select {
	case err := <-stopped:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on cancel")
	}
}
