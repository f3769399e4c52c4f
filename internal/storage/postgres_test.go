package storage_test

import (
	"context"
	"os"
	"testing"

	"invoiceease/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPostgres(t *testing.T) *storage.PostgresStore {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping a live one.
	// Set TEST_DATABASE_URL in your .env or environment to run this test.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping postgres integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		TRUNCATE TABLE kv_slots;
	`)
	require.NoError(t, err)

	return storage.NewPostgresStore(pool)
}

func TestPostgresStore_GetSetDelete(t *testing.T) {
	store := setupTestPostgres(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "lpos_default", []byte(`[{"id":"1"}]`)))
	got, err := store.Get(ctx, "lpos_default")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, store.Set(ctx, "lpos_default", []byte(`[]`)))
	got, err = store.Get(ctx, "lpos_default")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	require.NoError(t, store.Delete(ctx, "lpos_default"))
	_, err = store.Get(ctx, "lpos_default")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestPostgresStore_KeysPrefixWithUnderscore(t *testing.T) {
	store := setupTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "lpos_a@x.com", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "lposXa@x.com", []byte(`[]`)))

	// underscore in the prefix must not act as a LIKE wildcard
	keys, err := store.Keys(ctx, "lpos_")
	require.NoError(t, err)
	assert.Equal(t, []string{"lpos_a@x.com"}, keys)
}
