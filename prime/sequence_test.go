package prime

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSequenceStopsEarly(t *testing.T) {
	// The full range is far beyond the enumeration ceiling, but only the
	// first few primes are ever computed.
	seq, err := NewSequence(int64(1), int64(math.MaxInt64/2))
	if err != nil {
		t.Fatalf("NewSequence error: %v", err)
	}

	var got []int64
	for range 6 {
		p, ok := seq.Next()
		if !ok {
			t.Fatal("sequence ended early")
		}
		got = append(got, p)
	}
	if diff := cmp.Diff([]int64{2, 3, 5, 7, 11, 13}, got); diff != "" {
		t.Errorf("first primes mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceExhaustion(t *testing.T) {
	seq, err := NewSequence(10, 20)
	if err != nil {
		t.Fatalf("NewSequence error: %v", err)
	}

	var got []int
	for p, ok := seq.Next(); ok; p, ok = seq.Next() {
		got = append(got, p)
	}
	if diff := cmp.Diff([]int{11, 13, 17, 19}, got); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}

	for range 3 {
		if p, ok := seq.Next(); ok {
			t.Errorf("Next after exhaustion = %d, want end of sequence", p)
		}
	}
}

func TestSequenceAllBreak(t *testing.T) {
	seq, err := NewSequence(100, 200)
	if err != nil {
		t.Fatalf("NewSequence error: %v", err)
	}

	var got []int
	for p := range seq.All() {
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	if diff := cmp.Diff([]int{101, 103, 107}, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	// The cursor resumes after the last prime seen.
	if p, ok := seq.Next(); !ok || p != 109 {
		t.Errorf("Next after break = (%d, %v), want (109, true)", p, ok)
	}
}

func TestSequenceMatchesPrimesInRange(t *testing.T) {
	ranges := [][2]uint16{{1, 1}, {1, 2}, {2, 3}, {4, 4}, {5, 5}, {6, 7}, {90, 130}, {65000, math.MaxUint16}}
	for _, r := range ranges {
		seq, err := NewSequence(r[0], r[1])
		if err != nil {
			t.Fatalf("NewSequence(%d, %d) error: %v", r[0], r[1], err)
		}
		got := []uint16{}
		for p := range seq.All() {
			got = append(got, p)
		}
		want, err := PrimesInRange(r[0], r[1])
		if err != nil {
			t.Fatalf("PrimesInRange(%d, %d) error: %v", r[0], r[1], err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("[%d, %d] mismatch (-enumerator +sequence):\n%s", r[0], r[1], diff)
		}
	}
}

func TestSequenceValidation(t *testing.T) {
	if _, err := NewSequence(0, 10); !errors.Is(err, ErrRange) {
		t.Errorf("NewSequence(0, 10) error = %v, want ErrRange", err)
	}

	seq, err := NewSequence(10, 1)
	if err != nil {
		t.Fatalf("NewSequence(10, 1) error = %v, want nil", err)
	}
	if p, ok := seq.Next(); ok {
		t.Errorf("inverted sequence yielded %d", p)
	}
}

func TestSequenceSpanCeilingIsOptIn(t *testing.T) {
	from, through := int64(1), int64(10_000_000_000)
	if _, err := PrimesInRange(from, through); !errors.Is(err, ErrRange) {
		t.Errorf("PrimesInRange(%d, %d) error = %v, want ErrRange", from, through, err)
	}

	seq, err := NewSequence(from, through)
	if err != nil {
		t.Fatalf("NewSequence(%d, %d) error = %v, want nil", from, through, err)
	}
	if p, ok := seq.Next(); !ok || p != 2 {
		t.Errorf("Next() = %d, %v, want 2, true", p, ok)
	}

	if _, err := NewSequence(from, through, WithMaxSpan(DefaultMaxSpan)); !errors.Is(err, ErrRange) {
		t.Errorf("NewSequence with WithMaxSpan error = %v, want ErrRange", err)
	}
}

func TestSequenceReachesMaxValue(t *testing.T) {
	seq, err := NewSequence(int32(math.MaxInt32-20), math.MaxInt32)
	if err != nil {
		t.Fatalf("NewSequence error: %v", err)
	}
	var last int32
	count := 0
	for p := range seq.All() {
		last = p
		count++
	}
	// 2147483629 and 2^31-1.
	if count != 2 || last != math.MaxInt32 {
		t.Errorf("got %d primes ending at %d, want 2 ending at %d", count, last, int32(math.MaxInt32))
	}
}
