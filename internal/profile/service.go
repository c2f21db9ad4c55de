package profile

import (
	"context"

	"profiled/internal/audit"
	"profiled/internal/platform/metrics"
	"profiled/internal/storage"
	"profiled/pkg/requestcontext"
)

// Service is the only component that touches the persisted profile record.
// Everything above it sees in-memory Profile values.
type Service struct {
	store   storage.DocumentStore
	auditor *audit.Recorder
	metrics *metrics.Metrics
}

func NewService(store storage.DocumentStore, auditor *audit.Recorder, m *metrics.Metrics) *Service {
	return &Service{store: store, auditor: auditor, metrics: m}
}

// Fetch returns the stored profile, or a synthesized empty profile for a
// phone number that was never written. The empty profile is a read-time
// default and is never persisted.
func (s *Service) Fetch(ctx context.Context, phone string) (Profile, error) {
	doc, ok, err := s.store.Get(ctx, Collection, phone)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return Profile{Phone: phone}, nil
	}
	return Profile{
		Phone: doc.String("phone"),
		Name:  doc.String("name"),
		Email: doc.String("email"),
	}, nil
}

// Upsert creates the record on first write and updates name/email afterward,
// leaving phone and createdAt untouched on the update branch. Both branches
// return the caller-supplied values, not a re-read of the store.
//
// The existence probe and the write are separate store calls; two concurrent
// upserts for the same phone can race, last write wins. The store serializes
// individual writes so this is accepted data loss, not corruption.
func (s *Service) Upsert(ctx context.Context, phone, name, email string) (Profile, error) {
	_, exists, err := s.store.Get(ctx, Collection, phone)
	if err != nil {
		return Profile{}, err
	}

	now := requestcontext.Now(ctx)
	if exists {
		err = s.store.Update(ctx, Collection, phone, storage.Document{
			"name":      name,
			"email":     email,
			"updatedAt": now,
		})
		if err != nil {
			return Profile{}, err
		}
		s.metrics.IncProfileWrite("update")
		s.auditor.Record(ctx, audit.Event{Phone: phone, Action: audit.ActionProfileUpdate})
	} else {
		err = s.store.Set(ctx, Collection, phone, storage.Document{
			"phone":     phone,
			"name":      name,
			"email":     email,
			"createdAt": now,
			"updatedAt": now,
		})
		if err != nil {
			return Profile{}, err
		}
		s.metrics.IncProfileWrite("create")
		s.auditor.Record(ctx, audit.Event{Phone: phone, Action: audit.ActionProfileCreate})
	}

	return Profile{Phone: phone, Name: name, Email: email}, nil
}
