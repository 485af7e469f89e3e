package blobstore

import (
	"container/list"
	"context"
	"slices"
	"sync"
)

// CachingStore wraps a BlobStore and keeps recently read blobs in memory.
//
// The cache is bounded by the total size of cached blobs and evicts the least
// recently used blob first. Writes and deletes through the CachingStore
// invalidate the affected entry; writes that bypass it are not observed.
type CachingStore struct {
	inner    BlobStore
	maxBytes int64

	mu      sync.Mutex
	size    int64
	lru     *list.List
	entries map[string]*list.Element

	// epoch counts invalidations. While reads of the inner store are in
	// flight, written maps each invalidated name to the epoch of its last
	// invalidation so a read that started earlier does not cache stale data.
	epoch    uint64
	inflight int
	written  map[string]uint64

	hits, misses uint64
}

type cacheEntry struct {
	name string
	data []byte
}

// NewCachingStore creates a new CachingStore.
// Blobs larger than maxBytes are never cached.
func NewCachingStore(inner BlobStore, maxBytes int64) *CachingStore {
	return &CachingStore{
		inner:    inner,
		maxBytes: maxBytes,
		lru:      list.New(),
		entries:  make(map[string]*list.Element),
		written:  make(map[string]uint64),
	}
}

// Put writes through to the inner store and drops any cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Get returns the cached blob or reads it from the inner store.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	if el, ok := s.entries[name]; ok {
		s.lru.MoveToFront(el)
		s.hits++
		data := slices.Clone(el.Value.(*cacheEntry).data)
		s.mu.Unlock()
		return data, nil
	}
	s.misses++
	s.inflight++
	start := s.epoch
	s.mu.Unlock()

	data, err := s.inner.Get(ctx, name)
	s.finishRead(name, data, err == nil, start)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Delete removes the blob from the inner store and the cache.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List is passed through to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns the number of cache hits and misses.
func (s *CachingStore) Stats() (hits, misses uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}

// finishRead caches data read from the inner store unless name was
// invalidated after the read started at epoch start.
func (s *CachingStore) finishRead(name string, data []byte, ok bool, start uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stale := s.written[name] > start
	s.inflight--
	if s.inflight == 0 {
		clear(s.written)
	}
	if ok && !stale {
		s.addLocked(name, data)
	}
}

func (s *CachingStore) addLocked(name string, data []byte) {
	n := int64(len(data))
	if n > s.maxBytes {
		return
	}

	if el, ok := s.entries[name]; ok {
		s.removeLocked(el)
	}
	s.entries[name] = s.lru.PushFront(&cacheEntry{name: name, data: slices.Clone(data)})
	s.size += n

	for s.size > s.maxBytes {
		s.removeLocked(s.lru.Back())
	}
}

func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if s.inflight > 0 {
		s.written[name] = s.epoch
	}

	if el, ok := s.entries[name]; ok {
		s.removeLocked(el)
	}
}

func (s *CachingStore) removeLocked(el *list.Element) {
	e := s.lru.Remove(el).(*cacheEntry)
	delete(s.entries, e.name)
	s.size -= int64(len(e.data))
}
