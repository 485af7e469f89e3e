package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kfs "github.com/hupe1980/kets/internal/fs"
)

// testStoreLifecycle exercises the BlobStore contract shared by all
// implementations.
func testStoreLifecycle(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing.kets")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "a.kets", []byte("alpha")))
	require.NoError(t, store.Put(ctx, "dir/b.kets", []byte("beta")))

	data, err := store.Get(ctx, "a.kets")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	// Returned data is a private copy.
	data[0] = 'X'
	again, err := store.Get(ctx, "a.kets")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(again))

	// Overwrite.
	require.NoError(t, store.Put(ctx, "a.kets", []byte("gamma")))
	data, err = store.Get(ctx, "a.kets")
	require.NoError(t, err)
	assert.Equal(t, "gamma", string(data))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.kets", "dir/b.kets"}, names)

	names, err = store.List(ctx, "dir/")
	require.NoError(t, err)
	assert.Equal(t, []string{"dir/b.kets"}, names)

	require.NoError(t, store.Delete(ctx, "a.kets"))
	require.NoError(t, store.Delete(ctx, "a.kets"), "deleting twice is not an error")
	_, err = store.Get(ctx, "a.kets")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	testStoreLifecycle(t, store)

	// Verify file exists on disk
	_, err := os.Stat(filepath.Join(tmpDir, "dir", "b.kets"))
	require.NoError(t, err)
	assert.Equal(t, tmpDir, store.Root())
}

func TestLocalStore_NoTempFilesLeft(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	require.NoError(t, store.Put(context.Background(), "x", []byte("1")))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].Name())
}

func TestLocalStore_InvalidName(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", "../escape", "/abs"} {
		assert.Error(t, store.Put(ctx, name, nil), name)
		_, err := store.Get(ctx, name)
		assert.Error(t, err, name)
	}
}

func TestLocalStore_MissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "nope"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_Canceled(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "x", nil), context.Canceled)
	_, err := store.Get(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_FailedPutKeepsOldBlob(t *testing.T) {
	faults := map[string]kfs.Fault{
		"write":  {FailAfterBytes: 2},
		"sync":   {FailAfterBytes: -1, FailOnSync: true},
		"close":  {FailAfterBytes: -1, FailOnClose: true},
		"rename": {FailAfterBytes: -1, FailOnRename: true},
	}

	for name, fault := range faults {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			tmpDir := t.TempDir()
			ffs := kfs.NewFaultyFS(nil)
			store := NewLocalStoreFS(tmpDir, ffs)

			require.NoError(t, store.Put(ctx, "a.kets", []byte("old")))

			ffs.AddRule("a.kets", fault)
			require.ErrorIs(t, store.Put(ctx, "a.kets", []byte("new content")), kfs.ErrInjected)
			ffs.ClearRules()

			data, err := store.Get(ctx, "a.kets")
			require.NoError(t, err)
			assert.Equal(t, "old", string(data))

			entries, err := os.ReadDir(tmpDir)
			require.NoError(t, err)
			require.Len(t, entries, 1, "temporary file left behind")
		})
	}
}
