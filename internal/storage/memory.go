package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in process memory. It intentionally favors
// clarity over performance and is the default backend for development and
// tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

func (s *MemoryStore) Get(_ context.Context, collection, key string) (Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[memKey(collection, key)]
	if !ok {
		return nil, false, nil
	}
	return clone(doc), true, nil
}

func (s *MemoryStore) Set(_ context.Context, collection, key string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[memKey(collection, key)] = clone(doc)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, collection, key string, fields Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[memKey(collection, key)]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func memKey(collection, key string) string {
	return collection + "/" + key
}

func clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
