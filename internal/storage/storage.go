// Package storage provides the flat key-value persistence area the rest of
// the application writes into. Values are opaque byte slices (JSON in
// practice); keys carry all tenancy information via their prefix.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the minimal key-value contract every backend implements.
// Writes replace the whole value under a key; there are no partial updates
// and no cross-key transactions.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys starting with prefix, in unspecified order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Open constructs a Store from the STORAGE_BACKEND environment variable:
// "memory", "file" (STORAGE_PATH), "redis" (REDIS_URL) or "postgres"
// (DATABASE_URL). An unset backend defaults to a file store at
// invoiceease.json in the working directory.
func Open(ctx context.Context) (Store, error) {
	switch backend := os.Getenv("STORAGE_BACKEND"); backend {
	case "", "file":
		path := os.Getenv("STORAGE_PATH")
		if path == "" {
			path = "invoiceease.json"
		}
		return OpenFileStore(path)
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStoreFromEnv(ctx)
	case "postgres":
		return NewPostgresStoreFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
}
