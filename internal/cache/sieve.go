package cache

import "github.com/scalalang2/golang-fifo/sieve"

type sieveMemo struct {
	c *sieve.Sieve[int64, []int64]
}

func NewSieve(capacity int) Memo {
	capacity = clampCapacity(capacity)
	return &sieveMemo{c: sieve.New[int64, []int64](capacity, 0)}
}

func (m *sieveMemo) Get(n int64) ([]int64, bool) {
	return m.c.Get(n)
}

func (m *sieveMemo) Set(n int64, factors []int64) {
	m.c.Set(n, factors)
}

func (*sieveMemo) Name() string {
	return "sieve"
}

func (*sieveMemo) Close() {}
