package store

import (
	"context"
	"fmt"
)

// Backend names a KeyValueStore implementation
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPebble   Backend = "pebble"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

// ParseBackend validates a backend name
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendMemory, BackendPebble, BackendPostgres, BackendRedis:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend: %q", s)
	}
}

// KeyValueStore is the persistence capability: text values addressed by key
//
//go:generate mockgen -source=kv.go -destination=../mocks/kv_store.go -package=mocks -mock_names=KeyValueStore=MockKeyValueStore
type KeyValueStore interface {
	// Get returns the value for key and whether it exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value string) error

	// Remove deletes keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error

	// Close releases the backend
	Close() error
}
