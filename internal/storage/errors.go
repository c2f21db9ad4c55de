package storage

import "errors"

// ErrNotFound keeps storage-specific misses consistent across the in-memory,
// Redis and Postgres implementations.
var ErrNotFound = errors.New("document not found")
