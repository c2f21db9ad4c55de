package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PostgresStore keeps documents in a single table with a JSONB payload,
// keyed by (collection, key).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the documents table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			key        TEXT NOT NULL,
			data       JSONB NOT NULL,
			PRIMARY KEY (collection, key)
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, key string) (Document, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND key = $2`,
		collection, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("decode document: %w", err)
	}
	return doc, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, collection, key string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, key, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, key) DO UPDATE SET data = EXCLUDED.data
	`, collection, key, raw)
	if err != nil {
		return fmt.Errorf("set document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, key string, fields Document) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET data = data || $3 WHERE collection = $1 AND key = $2`,
		collection, key, raw,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
