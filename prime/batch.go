package prime

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type batchConfig[T Integer] struct {
	workers int
	cache   *Cache[T]
}

// BatchOption configures FactorizeAll.
type BatchOption[T Integer] func(*batchConfig[T])

// WithWorkers caps the number of factorizations running at once. The
// default, or any value below 1, runs one goroutine per input.
func WithWorkers[T Integer](n int) BatchOption[T] {
	return func(c *batchConfig[T]) {
		c.workers = n
	}
}

// WithCache routes every factorization through c.
func WithCache[T Integer](c *Cache[T]) BatchOption[T] {
	return func(cfg *batchConfig[T]) {
		cfg.cache = c
	}
}

// FactorizeAll factorizes every number concurrently and returns the results
// keyed by input. Duplicate inputs collapse to one entry.
//
// The first failure cancels the remaining work and is returned alone; there
// is no partial result.
func FactorizeAll[T Integer](ctx context.Context, numbers []T, opts ...BatchOption[T]) (map[T][]T, error) {
	var cfg batchConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.workers > 0 {
		g.SetLimit(cfg.workers)
	}

	results := make([][]T, len(numbers))
	for i, n := range numbers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var (
				factors []T
				err     error
			)
			if cfg.cache != nil {
				factors, err = cfg.cache.GetOrComputeContext(gctx, n)
			} else {
				factors, err = FactorizeContext(gctx, n)
			}
			if err != nil {
				return err
			}
			results[i] = factors
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[T][]T, len(numbers))
	for i, n := range numbers {
		out[n] = results[i]
	}
	return out, nil
}
