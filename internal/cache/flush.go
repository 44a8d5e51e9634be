package cache

import "github.com/tstromberg/primemark/prime"

type flushMemo struct {
	c *prime.Cache[int64]
}

// NewFlush wraps prime.Cache, which drops every entry once it is full.
func NewFlush(capacity int) Memo {
	return &flushMemo{c: prime.NewCache[int64](capacity)}
}

func (m *flushMemo) Get(n int64) ([]int64, bool) {
	return m.c.Lookup(n)
}

// Set computes n itself; prime.Cache only stores values it derived.
func (m *flushMemo) Set(n int64, _ []int64) {
	_, _ = m.c.GetOrCompute(n) //nolint:errcheck // invalid inputs are simply not stored
}

func (*flushMemo) Name() string {
	return "flush"
}

func (m *flushMemo) Close() {
	m.c.Purge()
}

func (m *flushMemo) GetOrCompute(n int64) ([]int64, bool, error) {
	return m.c.Load(n)
}

// Stats exposes the underlying counters.
func (m *flushMemo) Stats() prime.CacheStats {
	return m.c.Stats()
}
