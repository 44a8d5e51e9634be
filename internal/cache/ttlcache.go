package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlcacheMemo struct {
	c *ttlcache.Cache[int64, []int64]
}

// NewTTLCache creates a TTL-based cache.
func NewTTLCache(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c := ttlcache.New[int64, []int64](
		ttlcache.WithCapacity[int64, []int64](uint64(capacity)), //nolint:gosec // capacity always positive
		ttlcache.WithTTL[int64, []int64](time.Hour),             // factorizations never go stale; only capacity matters
	)
	go c.Start()
	return &ttlcacheMemo{c: c}
}

func (m *ttlcacheMemo) Get(n int64) ([]int64, bool) {
	item := m.c.Get(n)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

func (m *ttlcacheMemo) Set(n int64, factors []int64) {
	m.c.Set(n, factors, ttlcache.DefaultTTL)
}

func (*ttlcacheMemo) Name() string {
	return "ttlcache"
}

func (m *ttlcacheMemo) Close() {
	m.c.Stop()
}
