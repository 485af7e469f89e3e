// Package parallel runs index-range loops on a bounded number of goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers resolves a requested worker count: n <= 0 means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// For calls fn(i) once for every i in [0, n).
//
// The range is split into at most workers contiguous chunks, one goroutine per
// chunk. With workers <= 1, or fewer than minChunk items per worker, fn runs
// inline in index order. fn must be safe to call concurrently for distinct i.
func For(n, workers, minChunk int, fn func(i int)) {
	if minChunk < 1 {
		minChunk = 1
	}
	if workers > n/minChunk {
		workers = n / minChunk
	}
	if workers <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
