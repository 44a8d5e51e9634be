package cache

import (
	"context"

	"github.com/maypok86/otter/v2"
	"github.com/tstromberg/primemark/prime"
)

// factorLoader computes misses inside otter, which deduplicates concurrent
// loads of the same key.
type factorLoader struct{}

func (factorLoader) Load(ctx context.Context, n int64) ([]int64, error) {
	return prime.FactorizeContext(ctx, n)
}

func (factorLoader) Reload(ctx context.Context, n int64, _ []int64) ([]int64, error) {
	return prime.FactorizeContext(ctx, n)
}

type otterMemo struct {
	c *otter.Cache[int64, []int64]
}

// NewOtter creates an Otter cache.
func NewOtter(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c := otter.Must(&otter.Options[int64, []int64]{MaximumSize: capacity})
	return &otterMemo{c: c}
}

func (m *otterMemo) Get(n int64) ([]int64, bool) {
	return m.c.GetIfPresent(n)
}

func (m *otterMemo) Set(n int64, factors []int64) {
	m.c.Set(n, factors)
}

func (*otterMemo) Name() string {
	return "otter"
}

func (*otterMemo) Close() {}

func (m *otterMemo) GetOrCompute(n int64) ([]int64, bool, error) {
	if factors, ok := m.c.GetIfPresent(n); ok {
		return factors, true, nil
	}
	factors, err := m.c.Get(context.Background(), n, factorLoader{})
	return factors, false, err
}
