// Package audit records security-relevant actions (profile writes, auth
// rejections) off the request path.
package audit

import (
	"context"
	"time"

	"profiled/pkg/requestcontext"
)

// Actions recorded by this service.
const (
	ActionProfileCreate = "profile.create"
	ActionProfileUpdate = "profile.update"
	ActionAuthRejected  = "auth.rejected"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	Phone     string
	Action    string
	Reason    string
	TraceID   string
}

// Recorder accepts events on a buffered inbox. Recording is best-effort: a
// full inbox drops the event rather than stalling a request.
type Recorder struct {
	inbox chan Event
}

func NewRecorder(buffer int) *Recorder {
	return &Recorder{inbox: make(chan Event, buffer)}
}

// Record queues an event, filling in timestamp and trace id from the request
// context. Safe to call on a nil Recorder.
func (r *Recorder) Record(ctx context.Context, event Event) {
	if r == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.TraceID == "" {
		event.TraceID = requestcontext.TraceID(ctx)
	}
	select {
	case r.inbox <- event:
	default:
	}
}

// Events exposes the inbox for the worker.
func (r *Recorder) Events() <-chan Event {
	return r.inbox
}
