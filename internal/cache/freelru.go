package cache

import (
	"fmt"

	lru "github.com/elastic/go-freelru"
)

type freeLRUSyncedMemo struct {
	c *lru.SyncedLRU[int64, []int64]
}

func NewFreeLRUSynced(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c, err := lru.NewSynced[int64, []int64](uint32(capacity), hash) //nolint:gosec // clamped above
	if err != nil {
		panic(fmt.Sprintf("freelru-sync capacity %d: %v", capacity, err))
	}
	return &freeLRUSyncedMemo{c: c}
}

func (m *freeLRUSyncedMemo) Get(n int64) ([]int64, bool) {
	return m.c.Get(n)
}

func (m *freeLRUSyncedMemo) Set(n int64, factors []int64) {
	m.c.Add(n, factors)
}

func (*freeLRUSyncedMemo) Name() string {
	return "freelru-sync"
}

func (*freeLRUSyncedMemo) Close() {}

type freeLRUShardedMemo struct {
	c *lru.ShardedLRU[int64, []int64]
}

func NewFreeLRUSharded(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c, err := lru.NewSharded[int64, []int64](uint32(capacity), hash) //nolint:gosec // clamped above
	if err != nil {
		panic(fmt.Sprintf("freelru-shard capacity %d: %v", capacity, err))
	}
	return &freeLRUShardedMemo{c: c}
}

func (m *freeLRUShardedMemo) Get(n int64) ([]int64, bool) {
	return m.c.Get(n)
}

func (m *freeLRUShardedMemo) Set(n int64, factors []int64) {
	m.c.Add(n, factors)
}

func (*freeLRUShardedMemo) Name() string {
	return "freelru-shard"
}

func (*freeLRUShardedMemo) Close() {}
