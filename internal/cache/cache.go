// Package cache adapts third-party cache libraries into factorization memos
// so their hit rate, latency and throughput can be compared with the
// flush-on-full prime.Cache.
package cache

import "github.com/tstromberg/primemark/prime"

// Memo is a minimal interface for a memo of factorizations keyed by input.
type Memo interface {
	Get(n int64) ([]int64, bool)
	Set(n int64, factors []int64)
	Name() string
	Close()
}

// Factory creates a new memo holding at most capacity entries.
type Factory func(capacity int) Memo

// Computer is implemented by memos that own their miss path, such as a
// loader-backed cache or prime.Cache itself.
type Computer interface {
	Memo
	GetOrCompute(n int64) (factors []int64, hit bool, err error)
}

// GetOrCompute returns the factorization of n from m, computing and storing
// it on a miss. hit reports whether the value was already resident.
func GetOrCompute(m Memo, n int64) (factors []int64, hit bool, err error) {
	if c, ok := m.(Computer); ok {
		return c.GetOrCompute(n)
	}
	if factors, ok := m.Get(n); ok {
		return factors, true, nil
	}
	factors, err = prime.Factorize(n)
	if err != nil {
		return nil, false, err
	}
	m.Set(n, factors)
	return factors, false, nil
}

// minCapacity is the smallest size every backend accepts. Below it 2q and
// tinylfu build zero-sized segments.
const minCapacity = 4

func clampCapacity(capacity int) int {
	return max(capacity, minCapacity)
}
