package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each document as a JSON value under
// "<prefix><collection>:<key>". This is the recommended backend when several
// instances share state.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore constructs a Redis-backed document store. The client
// lifecycle is managed externally.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "doc:"}
}

func (s *RedisStore) Get(ctx context.Context, collection, key string) (Document, bool, error) {
	raw, err := s.client.Get(ctx, s.key(collection, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("decode document: %w", err)
	}
	return doc, true, nil
}

func (s *RedisStore) Set(ctx context.Context, collection, key string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.client.Set(ctx, s.key(collection, key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Update is a read-merge-write; the two racing writers case degrades to last
// write wins, same as the upsert contract above it.
func (s *RedisStore) Update(ctx context.Context, collection, key string, fields Document) error {
	doc, ok, err := s.Get(ctx, collection, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return s.Set(ctx, collection, key, doc)
}

func (s *RedisStore) key(collection, key string) string {
	return s.prefix + collection + ":" + key
}
