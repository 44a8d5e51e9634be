package prime

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
)

// CacheStats is a snapshot of a Cache's counters.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Flushes uint64
	Entries int
}

// Cache memoizes factorizations up to a fixed number of distinct inputs.
// When an insert would exceed the capacity, every resident entry is dropped
// first; there is no per-entry eviction.
//
// Reads of resident entries proceed in parallel. Inserts and flushes are
// serialized. Two goroutines missing on the same key may both compute it.
type Cache[T Integer] struct {
	mu       sync.RWMutex
	entries  map[T][]T
	capacity int

	hits    atomic.Uint64
	misses  atomic.Uint64
	flushes atomic.Uint64
}

// NewCache returns an empty cache holding at most capacity entries.
// A capacity below 1 is treated as 1.
func NewCache[T Integer](capacity int) *Cache[T] {
	capacity = max(capacity, 1)
	return &Cache[T]{
		entries:  make(map[T][]T, capacity),
		capacity: capacity,
	}
}

// Capacity returns the maximum number of resident entries.
func (c *Cache[T]) Capacity() int {
	return c.capacity
}

// Lookup returns the cached factorization of n without computing it.
func (c *Cache[T]) Lookup(n T) ([]T, bool) {
	c.mu.RLock()
	factors, ok := c.entries[n]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return slices.Clone(factors), true
}

// GetOrCompute returns the factorization of n, computing and storing it on a
// miss. The result is identical to Factorize(n); errors are never cached.
func (c *Cache[T]) GetOrCompute(n T) ([]T, error) {
	factors, _, err := c.Load(n)
	return factors, err
}

// GetOrComputeContext is GetOrCompute with a miss computed by
// FactorizeContext, so cancelling ctx abandons the computation.
func (c *Cache[T]) GetOrComputeContext(ctx context.Context, n T) ([]T, error) {
	factors, _, err := c.LoadContext(ctx, n)
	return factors, err
}

// Load is GetOrCompute that also reports whether n was already resident.
func (c *Cache[T]) Load(n T) (factors []T, hit bool, err error) {
	return c.LoadContext(context.Background(), n)
}

// LoadContext is Load with cancellation. A cancelled computation is not
// stored.
func (c *Cache[T]) LoadContext(ctx context.Context, n T) (factors []T, hit bool, err error) {
	if factors, ok := c.Lookup(n); ok {
		c.hits.Add(1)
		return factors, true, nil
	}
	c.misses.Add(1)

	factors, err = FactorizeContext(ctx, n)
	if err != nil {
		return nil, false, err
	}
	c.store(n, factors)
	return slices.Clone(factors), false, nil
}

func (c *Cache[T]) store(n T, factors []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[n]; ok {
		return
	}
	if len(c.entries) >= c.capacity {
		clear(c.entries)
		c.flushes.Add(1)
	}
	c.entries[n] = factors
}

// Len returns the number of resident entries.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops every entry. It does not count as a flush.
func (c *Cache[T]) Purge() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}

// Stats returns the current counters.
func (c *Cache[T]) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Flushes: c.flushes.Load(),
		Entries: c.Len(),
	}
}
