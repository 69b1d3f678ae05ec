package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/store"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// runKeyValueStoreSuite exercises the KeyValueStore contract against one backend
func runKeyValueStoreSuite(t *testing.T, newKV func(t *testing.T) store.KeyValueStore) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		kv := newKV(t)
		v, ok, err := kv.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		kv := newKV(t)
		require.NoError(t, kv.Set(ctx, "iryswiki_threads", `[{"id":"thread-1"}]`))

		v, ok, err := kv.Get(ctx, "iryswiki_threads")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"thread-1"}]`, v)
	})

	t.Run("set replaces", func(t *testing.T) {
		kv := newKV(t)
		require.NoError(t, kv.Set(ctx, "k", "first"))
		require.NoError(t, kv.Set(ctx, "k", "second"))

		v, _, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "second", v)
	})

	t.Run("remove many", func(t *testing.T) {
		kv := newKV(t)
		require.NoError(t, kv.Set(ctx, "a", "1"))
		require.NoError(t, kv.Set(ctx, "b", "2"))
		require.NoError(t, kv.Set(ctx, "c", "3"))

		require.NoError(t, kv.Remove(ctx, "a", "b", "never-set"))

		_, ok, err := kv.Get(ctx, "a")
		require.NoError(t, err)
		assert.False(t, ok)
		_, ok, err = kv.Get(ctx, "b")
		require.NoError(t, err)
		assert.False(t, ok)
		v, ok, err := kv.Get(ctx, "c")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "3", v)
	})
}

func TestMemoryKV(t *testing.T) {
	runKeyValueStoreSuite(t, func(t *testing.T) store.KeyValueStore {
		return store.NewMemoryKV()
	})
}

func TestPebbleKV(t *testing.T) {
	runKeyValueStoreSuite(t, func(t *testing.T) store.KeyValueStore {
		kv, err := store.OpenPebble(filepath.Join(t.TempDir(), "db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = kv.Close() })
		return kv
	})
}

func TestPebbleKV_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db")

	kv, err := store.OpenPebble(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "iryswiki_profiles", "[]"))
	require.NoError(t, kv.Close())

	kv, err = store.OpenPebble(path)
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get(ctx, "iryswiki_profiles")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestParseBackend(t *testing.T) {
	for _, name := range []string{"memory", "pebble", "postgres", "redis"} {
		b, err := store.ParseBackend(name)
		require.NoError(t, err)
		assert.Equal(t, store.Backend(name), b)
	}

	_, err := store.ParseBackend("localstorage")
	assert.Error(t, err)
}
