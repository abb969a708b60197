// FilePath: internal/kvstore/kvstore_test.go
package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	// Absent is not an error.
	v, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	require.NoError(t, store.Set(ctx, "hr.locale", "es"))
	v, ok, err = store.Get(ctx, "hr.locale")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "es", v)

	require.NoError(t, store.Set(ctx, "hr.locale", "en"))
	v, _, _ = store.Get(ctx, "hr.locale")
	assert.Equal(t, "en", v)

	require.NoError(t, store.Delete(ctx, "hr.locale"))
	_, ok, err = store.Get(ctx, "hr.locale")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key succeeds.
	require.NoError(t, store.Delete(ctx, "missing"))
}

func TestFileStorePersists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "hr.demoSeeded", "1"))
	require.NoError(t, store.Set(ctx, "hr.locale", "es"))
	require.NoError(t, store.Delete(ctx, "hr.locale"))

	// A fresh instance over the same file sees the surviving keys.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	v, ok, err := reopened.Get(ctx, "hr.demoSeeded")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok, err = reopened.Get(ctx, "hr.locale")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "deep", "store.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "k", "v"))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileStoreMalformedFileStartsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)

	// The first write replaces the broken file.
	require.NoError(t, store.Set(ctx, "k", "v"))
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, _ := reopened.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}
