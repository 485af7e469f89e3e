package blobstore

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Limits bounds the load a LimitedStore puts on its inner store.
type Limits struct {
	// BytesPerSec is the maximum transfer rate of Put and Get payloads.
	// If 0, unlimited.
	BytesPerSec int64

	// MaxInFlight is the maximum number of concurrent requests.
	// If 0, unlimited.
	MaxInFlight int64
}

// LimitedStore wraps a BlobStore with request concurrency and throughput
// limits. Put waits for its payload before writing; Get is charged after the
// payload arrived, since its size is not known up front.
type LimitedStore struct {
	inner BlobStore

	inflight  *semaphore.Weighted // nil if unlimited
	ioLimiter *rate.Limiter       // nil if unlimited
	burst     int
}

// NewLimitedStore creates a new LimitedStore.
func NewLimitedStore(inner BlobStore, l Limits) *LimitedStore {
	s := &LimitedStore{inner: inner}

	if l.MaxInFlight > 0 {
		s.inflight = semaphore.NewWeighted(l.MaxInFlight)
	}
	if l.BytesPerSec > 0 {
		s.burst = int(min(l.BytesPerSec, 1<<30))
		s.ioLimiter = rate.NewLimiter(rate.Limit(l.BytesPerSec), s.burst)
	}
	return s
}

// Put writes a blob once the rate limit admits its size.
func (s *LimitedStore) Put(ctx context.Context, name string, data []byte) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.waitIO(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Get reads a blob and charges its size against the rate limit.
func (s *LimitedStore) Get(ctx context.Context, name string) ([]byte, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.waitIO(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Delete removes a blob.
func (s *LimitedStore) Delete(ctx context.Context, name string) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return s.inner.Delete(ctx, name)
}

// List lists blobs.
func (s *LimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return s.inner.List(ctx, prefix)
}

func (s *LimitedStore) acquire(ctx context.Context) (func(), error) {
	if s.inflight == nil {
		return func() {}, ctx.Err()
	}
	if err := s.inflight.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { s.inflight.Release(1) }, nil
}

// waitIO blocks until n bytes are admitted. Requests above the burst size are
// admitted in burst-sized steps.
func (s *LimitedStore) waitIO(ctx context.Context, n int) error {
	if s.ioLimiter == nil {
		return nil
	}
	for n > 0 {
		step := min(n, s.burst)
		if err := s.ioLimiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
