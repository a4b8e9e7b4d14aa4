package txgraph

import (
	"context"
)

import (
	"golang.org/x/sync/errgroup"
)

type span struct {
	lo, hi int
}

// shards splits [0, n) into at most workers contiguous spans.
func shards(n, workers int) []span {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	spans := make([]span, 0, workers)
	for i := 0; i < workers; i++ {
		lo := i * n / workers
		hi := (i + 1) * n / workers
		spans = append(spans, span{lo, hi})
	}
	return spans
}

// fanOut runs do once per shard of [0, n). Every shard gets its own
// slot index so workers can fill private accumulators which the caller
// merges in shard order once all of them have returned.
func fanOut(ctx context.Context, workers, n int, do func(ctx context.Context, shard int, lo, hi int) error) (int, error) {
	spans := shards(n, workers)
	if len(spans) <= 1 {
		for i, s := range spans {
			if err := do(ctx, i, s.lo, s.hi); err != nil {
				return len(spans), err
			}
		}
		return len(spans), nil
	}
	g, gCtx := errgroup.WithContext(ctx)
	for i, s := range spans {
		i, s := i, s
		g.Go(func() error {
			return do(gCtx, i, s.lo, s.hi)
		})
	}
	return len(spans), g.Wait()
}
