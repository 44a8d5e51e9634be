package cache

import "github.com/dgraph-io/ristretto"

type ristrettoMemo struct {
	c *ristretto.Cache
}

// NewRistretto creates a Ristretto cache.
func NewRistretto(capacity int) Memo {
	capacity = clampCapacity(capacity)
	c, _ := ristretto.NewCache(&ristretto.Config{ //nolint:errcheck // config always valid
		NumCounters:        int64(capacity) * 10,
		MaxCost:            int64(capacity),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	return &ristrettoMemo{c: c}
}

func (m *ristrettoMemo) Get(n int64) ([]int64, bool) {
	v, ok := m.c.Get(n)
	if !ok {
		return nil, false
	}
	return v.([]int64), true //nolint:errcheck,revive // type is known from Set
}

func (m *ristrettoMemo) Set(n int64, factors []int64) {
	m.c.Set(n, factors, 1)
}

func (*ristrettoMemo) Name() string {
	return "ristretto"
}

func (m *ristrettoMemo) Close() {
	m.c.Wait() // flush pending async writes
	m.c.Close()
}

// Wait blocks until buffered writes have been applied.
func (m *ristrettoMemo) Wait() {
	m.c.Wait()
}
