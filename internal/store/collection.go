package store

import (
	"context"
	"sync"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
)

// keyed is a record with a stable identity
type keyed interface {
	Key() string
}

// placement decides where an upserted record lands
type placement int

const (
	placeFirst placement = iota
	placeLast
)

// collection is an ordered sequence of records serialized under one key.
// mu serialises every read-modify-write of the key.
type collection[T keyed] struct {
	mu        sync.Mutex
	key       string
	placement placement
	kv        KeyValueStore
	json      adapter.JSON
}

func newCollection[T keyed](key string, p placement, kv KeyValueStore, json adapter.JSON) *collection[T] {
	return &collection[T]{key: key, placement: p, kv: kv, json: json}
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "read " + c.key, Err: err}
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := c.json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, &domain.PersistenceError{Op: "decode " + c.key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	data, err := c.json.Marshal(items)
	if err != nil {
		return &domain.PersistenceError{Op: "encode " + c.key, Err: err}
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return &domain.PersistenceError{Op: "write " + c.key, Err: err}
	}
	return nil
}

// List returns every record in stored order
func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Get returns the record with key, or nil
func (c *collection[T]) Get(ctx context.Context, key string) (*T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(items, key); i >= 0 {
		return &items[i], nil
	}
	return nil, nil
}

// Upsert removes any record sharing item's key, then inserts item at the collection's placement
func (c *collection[T]) Upsert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	key := item.Key()
	merged := make([]T, 0, len(items)+1)
	if c.placement == placeFirst {
		merged = append(merged, item)
	}
	for _, existing := range items {
		if existing.Key() != key {
			merged = append(merged, existing)
		}
	}
	if c.placement == placeLast {
		merged = append(merged, item)
	}

	return c.save(ctx, merged)
}

// Update applies fn to the record with key and writes it back in place.
// Returns nil when no record has key. An error from fn aborts the write.
func (c *collection[T]) Update(ctx context.Context, key string, fn func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(items, key)
	if i < 0 {
		return nil, nil
	}

	updated := items[i]
	if err := fn(&updated); err != nil {
		return nil, err
	}
	items[i] = updated

	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return &updated, nil
}

func indexOf[T keyed](items []T, key string) int {
	for i := range items {
		if items[i].Key() == key {
			return i
		}
	}
	return -1
}
