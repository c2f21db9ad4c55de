package storage

import "context"

// Document is one persisted record's fields.
type Document map[string]any

// DocumentStore is the narrow persistence boundary: keyed documents grouped
// into named collections. Stores are interface-driven to keep the domain
// logic testable and to allow swapping in-memory, Redis or Postgres
// persistence without rewiring business code.
type DocumentStore interface {
	// Get returns the document and whether it exists. A missing document is
	// not an error.
	Get(ctx context.Context, collection, key string) (Document, bool, error)
	// Set writes the full document, creating or replacing it.
	Set(ctx context.Context, collection, key string, doc Document) error
	// Update merges fields into an existing document. Returns ErrNotFound
	// when the document does not exist.
	Update(ctx context.Context, collection, key string, fields Document) error
}

// String reads a string field from a document, tolerating absent or
// non-string values (backends that round-trip through JSON lose Go types).
func (d Document) String(field string) string {
	if v, ok := d[field].(string); ok {
		return v
	}
	return ""
}
