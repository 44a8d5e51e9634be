package cache

import "github.com/coocood/freecache"

// entrySize estimates one freecache entry: 8-byte key, a handful of varint
// factors and the ~24-byte entry header.
const entrySize = 48

type freecacheMemo struct {
	c *freecache.Cache
}

// NewFreecache creates a freecache sized for capacity factor lists.
func NewFreecache(capacity int) Memo {
	capacity = clampCapacity(capacity)
	cacheBytes := max(capacity*entrySize,
		// minimum 512KB
		512*1024)
	return &freecacheMemo{c: freecache.NewCache(cacheBytes)}
}

func (m *freecacheMemo) Get(n int64) ([]int64, bool) {
	v, err := m.c.GetInt(n)
	if err != nil {
		return nil, false
	}
	return decodeFactors(v)
}

func (m *freecacheMemo) Set(n int64, factors []int64) {
	m.c.SetInt(n, encodeFactors(factors), 0) //nolint:errcheck,gosec // best-effort set
}

func (*freecacheMemo) Name() string {
	return "freecache"
}

func (*freecacheMemo) Close() {}
