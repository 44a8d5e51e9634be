package prime

import "iter"

type stage uint8

const (
	stageTwo stage = iota
	stageThree
	stageLow  // cursor, 6k-1
	stageHigh // cursor+2, 6k+1
	stageDone
)

// Sequence yields the primes of a closed interval one at a time, so a caller
// that stops early never pays for the rest of the range. A Sequence is
// single-use: once Next reports false it stays exhausted.
//
// A Sequence is not safe for concurrent use.
type Sequence[T Integer] struct {
	from    T
	through T
	cursor  T
	stage   stage
}

// NewSequence validates [from, through] and returns a cursor positioned
// before the first prime. A lower bound below 1 fails with a *RangeError and
// an inverted range yields an empty Sequence. The span is unbounded unless
// WithMaxSpan is passed.
func NewSequence[T Integer](from, through T, opts ...RangeOption) (*Sequence[T], error) {
	return newSequence(from, through, newRangeConfig(unbounded, opts))
}

func newSequence[T Integer](from, through T, cfg rangeConfig) (*Sequence[T], error) {
	empty, err := checkRange(from, through, cfg.maxSpan)
	if err != nil {
		return nil, err
	}

	s := &Sequence[T]{from: from, through: through}
	if empty {
		s.stage = stageDone
		return s, nil
	}

	// A zero cursor means no wheel position fits below MaxValue, leaving
	// only 2 and 3 as candidates.
	s.cursor, _ = firstCursor(from)
	return s, nil
}

// firstCursor returns the smallest c ≡ 5 (mod 6) with c >= 5 and
// c+2 >= from, so the pair (c, c+2) is the first that can reach from.
func firstCursor[T Integer](from T) (T, bool) {
	if from < 7 {
		return 5, true
	}
	c := from - 2
	step := (5 - c%6 + 6) % 6
	if !headroom(c, step) {
		return 0, false
	}
	return c + step, true
}

func (s *Sequence[T]) contains(n T) bool {
	return n >= s.from && n <= s.through
}

// Next returns the next prime in the interval, or false once the interval
// is exhausted.
func (s *Sequence[T]) Next() (T, bool) {
	for {
		switch s.stage {
		case stageTwo:
			s.stage = stageThree
			if s.contains(2) {
				return 2, true
			}

		case stageThree:
			s.stage = stageLow
			if s.contains(3) {
				return 3, true
			}

		case stageLow:
			c := s.cursor
			if c < 5 || c > s.through {
				s.stage = stageDone
				continue
			}
			s.stage = stageHigh
			if c >= s.from && IsPrime(c) {
				return c, true
			}

		case stageHigh:
			c := s.cursor
			if !headroom(c, 2) || c+2 > s.through {
				s.stage = stageDone
				continue
			}
			hi := c + 2
			if headroom(c, 6) {
				s.cursor = c + 6
				s.stage = stageLow
			} else {
				s.stage = stageDone
			}
			if hi >= s.from && IsPrime(hi) {
				return hi, true
			}

		default:
			return 0, false
		}
	}
}

// All adapts the remaining primes to a range-over-func iterator. Breaking
// out of the loop leaves the Sequence positioned after the last prime seen.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p, ok := s.Next(); ok; p, ok = s.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
