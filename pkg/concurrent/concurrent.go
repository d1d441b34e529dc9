package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Chunks splits [0, n) into contiguous ranges of at least minChunk items and
// runs fn on each range, with at most workers ranges in flight. It waits for
// all of them and returns the first error. The context given to fn is
// canceled as soon as one range fails.
func Chunks(ctx context.Context, n, workers, minChunk int, fn func(ctx context.Context, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if minChunk <= 0 {
		minChunk = 1
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, lo, hi)
		})
	}

	return g.Wait()
}

// ParallelMap applies mapFn to every element of in, preserving order.
// The workers parameter controls the number of goroutines.
func ParallelMap[T any, R any](ctx context.Context, in []T, workers int, mapFn func(T) R) ([]R, error) {
	out := make([]R, len(in))
	err := Chunks(ctx, len(in), workers, 1, func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			out[i] = mapFn(in[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
