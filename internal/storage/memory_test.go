package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	doc, ok, err := store.Get(context.Background(), "users", "+15551234567")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, doc)
}

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", "+15551234567", Document{"name": "Test User"}))

	doc, ok, err := store.Get(ctx, "users", "+15551234567")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Test User", doc.String("name"))
}

func TestMemoryStore_UpdateMerges(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", "k", Document{"phone": "+1555", "name": "Old"}))
	require.NoError(t, store.Update(ctx, "users", "k", Document{"name": "New"}))

	doc, ok, err := store.Get(ctx, "users", "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "New", doc.String("name"))
	assert.Equal(t, "+1555", doc.String("phone"), "untouched fields survive")
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(context.Background(), "users", "absent", Document{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CollectionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", "k", Document{"name": "user"}))

	_, ok, err := store.Get(ctx, "audit", "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", "k", Document{"name": "original"}))

	doc, _, err := store.Get(ctx, "users", "k")
	require.NoError(t, err)
	doc["name"] = "mutated"

	doc2, _, err := store.Get(ctx, "users", "k")
	require.NoError(t, err)
	assert.Equal(t, "original", doc2.String("name"))
}

func TestDocumentString_Tolerant(t *testing.T) {
	doc := Document{"n": 42, "s": "ok"}
	assert.Equal(t, "ok", doc.String("s"))
	assert.Equal(t, "", doc.String("n"))
	assert.Equal(t, "", doc.String("absent"))
}
