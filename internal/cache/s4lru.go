package cache

import (
	"sync"

	"github.com/dgryski/go-s4lru"
)

type s4lruMemo struct {
	c  *s4lru.Cache
	mu sync.Mutex
}

// NewS4LRU creates a segmented LRU cache. s4lru splits capacity across four
// equal segments, so it is rounded up to a multiple of 4.
func NewS4LRU(capacity int) Memo {
	capacity = (clampCapacity(capacity) + 3) &^ 3
	return &s4lruMemo{c: s4lru.New(capacity)}
}

func (m *s4lruMemo) Get(n int64) ([]int64, bool) {
	m.mu.Lock()
	v, ok := m.c.Get(stringKey(n))
	m.mu.Unlock()
	if !ok {
		return nil, false
	}
	return v.([]int64), true //nolint:errcheck,revive // type is known from Set
}

func (m *s4lruMemo) Set(n int64, factors []int64) {
	m.mu.Lock()
	m.c.Set(stringKey(n), factors)
	m.mu.Unlock()
}

func (*s4lruMemo) Name() string {
	return "s4lru"
}

func (*s4lruMemo) Close() {}
