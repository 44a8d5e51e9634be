package cache

import lru "github.com/hashicorp/golang-lru/v2"

type twoQueueMemo struct {
	c *lru.TwoQueueCache[int64, []int64]
}

func NewTwoQueue(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c, _ := lru.New2Q[int64, []int64](capacity) //nolint:errcheck // capacity always positive
	return &twoQueueMemo{c: c}
}

func (m *twoQueueMemo) Get(n int64) ([]int64, bool) {
	return m.c.Get(n)
}

func (m *twoQueueMemo) Set(n int64, factors []int64) {
	m.c.Add(n, factors)
}

func (*twoQueueMemo) Name() string {
	return "2q"
}

func (*twoQueueMemo) Close() {}
