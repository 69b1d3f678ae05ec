package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/logger"
)

type pebbleKV struct {
	db *pebble.DB
}

// OpenPebble opens (or creates) an embedded pebble database at path
func OpenPebble(path string) (KeyValueStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", path, err)
	}
	logger.Info("Opened pebble store", zap.String("path", path))
	return &pebbleKV{db: db}, nil
}

func (p *pebbleKV) Get(_ context.Context, key string) (string, bool, error) {
	v, closer, err := p.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer closer.Close()

	return string(v), true, nil
}

func (p *pebbleKV) Set(_ context.Context, key string, value string) error {
	if err := p.db.Set([]byte(key), []byte(value), pebble.Sync); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (p *pebbleKV) Remove(_ context.Context, keys ...string) error {
	batch := p.db.NewBatch()
	defer batch.Close()

	for _, k := range keys {
		if err := batch.Delete([]byte(k), nil); err != nil {
			return fmt.Errorf("failed to delete %s: %w", k, err)
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("failed to commit delete batch: %w", err)
	}
	return nil
}

func (p *pebbleKV) Close() error {
	return p.db.Close()
}
