package prime

import (
	"fmt"
	"math"
)

// DefaultMaxSpan is the widest interval PrimesInRange accepts unless
// overridden with WithMaxSpan. NewSequence has no ceiling unless one is
// passed.
const DefaultMaxSpan uint64 = 1_000_000

type rangeConfig struct {
	maxSpan uint64
}

// unbounded disables the span ceiling.
const unbounded uint64 = math.MaxUint64

// RangeOption configures PrimesInRange and NewSequence.
type RangeOption func(*rangeConfig)

// WithMaxSpan sets the ceiling on through-from. The span, not the magnitude
// of the bounds, determines how many candidates are tested.
func WithMaxSpan(span uint64) RangeOption {
	return func(c *rangeConfig) {
		c.maxSpan = span
	}
}

func newRangeConfig(maxSpan uint64, opts []RangeOption) rangeConfig {
	cfg := rangeConfig{maxSpan: maxSpan}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// checkRange validates [from, through] before any candidate is tested.
// An inverted range is not an error; it reports empty instead.
func checkRange[T Integer](from, through T, maxSpan uint64) (empty bool, err error) {
	if from < 1 {
		return false, rangeError(from, through, "lower bound must be at least 1")
	}
	if from > through {
		return true, nil
	}
	if span := uint64(through - from); span > maxSpan {
		return false, rangeError(from, through, fmt.Sprintf("span %d exceeds ceiling %d", span, maxSpan))
	}
	return false, nil
}

// PrimesInRange returns every prime p with from <= p <= through, ascending.
//
// A lower bound below 1 or a span above the ceiling fails with a
// *RangeError. An inverted range (from > through) yields an empty list.
func PrimesInRange[T Integer](from, through T, opts ...RangeOption) ([]T, error) {
	seq, err := newSequence(from, through, newRangeConfig(DefaultMaxSpan, opts))
	if err != nil {
		return nil, err
	}

	primes := []T{}
	for p, ok := seq.Next(); ok; p, ok = seq.Next() {
		primes = append(primes, p)
	}
	return primes, nil
}
