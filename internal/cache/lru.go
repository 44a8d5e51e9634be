package cache

import lru "github.com/hashicorp/golang-lru/v2"

type lruMemo struct {
	c *lru.Cache[int64, []int64]
}

func NewLRU(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c, _ := lru.New[int64, []int64](capacity) //nolint:errcheck // capacity always positive
	return &lruMemo{c: c}
}

func (m *lruMemo) Get(n int64) ([]int64, bool) {
	return m.c.Get(n)
}

func (m *lruMemo) Set(n int64, factors []int64) {
	m.c.Add(n, factors)
}

func (*lruMemo) Name() string {
	return "lru"
}

func (*lruMemo) Close() {}
