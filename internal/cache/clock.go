package cache

import (
	"sync"

	"github.com/Code-Hex/go-generics-cache/policy/clock"
)

type clockMemo struct {
	c  *clock.Cache[int64, []int64]
	mu sync.Mutex
}

// NewClock creates a clock-based cache.
func NewClock(capacity int) Memo {
	capacity = clampCapacity(capacity)
	return &clockMemo{
		c: clock.NewCache[int64, []int64](clock.WithCapacity(capacity)),
	}
}

func (m *clockMemo) Get(n int64) ([]int64, bool) {
	m.mu.Lock()
	v, ok := m.c.Get(n)
	m.mu.Unlock()
	return v, ok
}

func (m *clockMemo) Set(n int64, factors []int64) {
	m.mu.Lock()
	m.c.Set(n, factors)
	m.mu.Unlock()
}

func (*clockMemo) Name() string {
	return "clock"
}

func (*clockMemo) Close() {}
