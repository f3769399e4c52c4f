package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Collection is a JSON-encoded list of records living under one storage key.
// Every save rewrites the whole slot; every load reads the whole slot. This
// is the persistence strategy of the whole application: simple, last-write-
// wins, no partial updates.
type Collection[T any] struct {
	store Store
	key   string
	log   zerolog.Logger
}

// NewCollection binds a collection of T to the given key.
func NewCollection[T any](store Store, key string, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{store: store, key: key, log: log}
}

// Key returns the storage key this collection lives under.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load reads the collection. An absent slot yields an empty list. A slot
// holding invalid JSON is recovered locally: the corruption is logged and
// the collection resets to empty — callers never see a parse error.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", c.key, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.Warn().
			Str("key", c.key).
			Err(err).
			Msg("corrupted collection slot, resetting to empty")
		return nil, nil
	}
	return records, nil
}

// Save rewrites the whole collection slot.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("save collection %s: %w", c.key, err)
	}
	return nil
}

// Slot is a JSON-encoded single value under one storage key, used for the
// session pointer and the active profile id.
type Slot[T any] struct {
	store Store
	key   string
	log   zerolog.Logger
}

// NewSlot binds a single value of T to the given key.
func NewSlot[T any](store Store, key string, log zerolog.Logger) *Slot[T] {
	return &Slot[T]{store: store, key: key, log: log}
}

// Load reads the slot. Returns (zero, false, nil) when the slot is absent or
// corrupted — corruption is logged and treated as absence.
func (s *Slot[T]) Load(ctx context.Context) (T, bool, error) {
	var value T
	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, ErrKeyNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("load slot %s: %w", s.key, err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		s.log.Warn().
			Str("key", s.key).
			Err(err).
			Msg("corrupted value slot, treating as absent")
		var zero T
		return zero, false, nil
	}
	return value, true, nil
}

// Save writes the slot.
func (s *Slot[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", s.key, err)
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("save slot %s: %w", s.key, err)
	}
	return nil
}

// Clear removes the slot.
func (s *Slot[T]) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear slot %s: %w", s.key, err)
	}
	return nil
}
