package cache

import "github.com/vmihailenco/go-tinylfu"

type tinyLFUMemo struct {
	c *tinylfu.SyncT
}

// NewTinyLFU creates a TinyLFU cache.
func NewTinyLFU(capacity int) Memo {
	capacity = clampCapacity(capacity)
	return &tinyLFUMemo{c: tinylfu.NewSync(capacity, capacity*10)}
}

func (m *tinyLFUMemo) Get(n int64) ([]int64, bool) {
	v, ok := m.c.Get(stringKey(n))
	if !ok {
		return nil, false
	}
	return v.([]int64), true //nolint:errcheck,revive // type is known from Set
}

func (m *tinyLFUMemo) Set(n int64, factors []int64) {
	m.c.Set(&tinylfu.Item{Key: stringKey(n), Value: factors})
}

func (*tinyLFUMemo) Name() string {
	return "tinylfu"
}

func (*tinyLFUMemo) Close() {}
