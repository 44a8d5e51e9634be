package cache

import "github.com/Yiling-J/theine-go"

type theineMemo struct {
	c *theine.Cache[int64, []int64]
}

func NewTheine(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c, _ := theine.NewBuilder[int64, []int64](int64(capacity)).Build() //nolint:errcheck // capacity always positive
	return &theineMemo{c: c}
}

func (m *theineMemo) Get(n int64) ([]int64, bool) {
	return m.c.Get(n)
}

func (m *theineMemo) Set(n int64, factors []int64) {
	m.c.Set(n, factors, 1)
}

func (*theineMemo) Name() string {
	return "theine"
}

func (m *theineMemo) Close() {
	m.c.Close()
}
