package blobstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	testStoreLifecycle(t, NewMemoryStore())
}

func TestMemoryStore_PutCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", data))
	data[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("blob-%02d", i)
			assert.NoError(t, store.Put(ctx, name, []byte(name)))
			got, err := store.Get(ctx, name)
			assert.NoError(t, err)
			assert.Equal(t, name, string(got))
		}()
	}
	wg.Wait()

	names, err := store.List(ctx, "blob-")
	require.NoError(t, err)
	assert.Len(t, names, 16)
}

func TestMemoryStore_Size(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", make([]byte, 10)))
	require.NoError(t, store.Put(ctx, "b", make([]byte, 5)))
	assert.Equal(t, int64(15), store.Size())

	require.NoError(t, store.Put(ctx, "a", make([]byte, 2)))
	assert.Equal(t, int64(7), store.Size())

	require.NoError(t, store.Delete(ctx, "b"))
	require.NoError(t, store.Delete(ctx, "missing"))
	assert.Equal(t, int64(2), store.Size())
}
