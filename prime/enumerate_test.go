package prime

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimesInRange(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		through int
		want    []int
	}{
		{"two through 73", 2, 73, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73}},
		{"from one", 1, 10, []int{2, 3, 5, 7}},
		{"single prime", 7, 7, []int{7}},
		{"single composite", 8, 8, []int{}},
		{"only three", 3, 4, []int{3}},
		{"starts on 6k+1", 13, 20, []int{13, 17, 19}},
		{"starts between pair", 6, 12, []int{7, 11}},
		{"no primes in gap", 24, 28, []int{}},
		{"inverted range is empty", 10, 2, []int{}},
		{"offset window", 1000, 1050, []int{1009, 1013, 1019, 1021, 1031, 1033, 1039, 1049}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PrimesInRange(tc.from, tc.through)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("PrimesInRange(%d, %d) mismatch (-want +got):\n%s", tc.from, tc.through, diff)
			}
		})
	}
}

func TestPrimesInRangeMatchesOracle(t *testing.T) {
	for from := 1; from <= 40; from++ {
		for through := from; through <= 120; through += 7 {
			got, err := PrimesInRange(from, through)
			require.NoError(t, err)

			want := []int{}
			for n := from; n <= through; n++ {
				if IsPrime(n) {
					want = append(want, n)
				}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("PrimesInRange(%d, %d) mismatch (-oracle +got):\n%s", from, through, diff)
			}
		}
	}
}

func TestPrimesInRangeRejectsLowerBound(t *testing.T) {
	for _, from := range []int{0, -1, math.MinInt} {
		got, err := PrimesInRange(from, 100)
		require.Error(t, err, "PrimesInRange(%d, 100) = %v", from, got)
		assert.True(t, errors.Is(err, ErrRange))

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Contains(t, rangeErr.Reason, "lower bound")
	}
}

func TestPrimesInRangeSpanCeiling(t *testing.T) {
	_, err := PrimesInRange(1, 1+int(DefaultMaxSpan)+1)
	require.ErrorIs(t, err, ErrRange)

	_, err = PrimesInRange(int64(math.MaxInt64-2_000_000), math.MaxInt64)
	require.ErrorIs(t, err, ErrRange, "span, not magnitude, is bounded")

	got, err := PrimesInRange(1, 100, WithMaxSpan(99))
	require.NoError(t, err)
	assert.Len(t, got, 25)

	_, err = PrimesInRange(1, 100, WithMaxSpan(98))
	require.ErrorIs(t, err, ErrRange)
}

func TestPrimesInRangeNearMaxValue(t *testing.T) {
	gotInt8, err := PrimesInRange(int8(100), math.MaxInt8)
	require.NoError(t, err)
	assert.Equal(t, []int8{101, 103, 107, 109, 113, 127}, gotInt8)

	gotUint8, err := PrimesInRange(uint8(200), math.MaxUint8)
	require.NoError(t, err)
	assert.Equal(t, []uint8{211, 223, 227, 229, 233, 239, 241, 251}, gotUint8)

	gotInt16, err := PrimesInRange(int16(32700), math.MaxInt16)
	require.NoError(t, err)
	assert.Equal(t, []int16{32707, 32713, 32717, 32719, 32749}, gotInt16)

	gotInt32, err := PrimesInRange(int32(2147483600), math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, []int32{2147483629, 2147483647}, gotInt32)

	gotUint32, err := PrimesInRange(uint32(4294967200), math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, []uint32{4294967231, 4294967279, 4294967291}, gotUint32)

	gotTop, err := PrimesInRange(int8(math.MaxInt8), math.MaxInt8)
	require.NoError(t, err)
	assert.Equal(t, []int8{127}, gotTop)
}

func TestPrimesInRangeCount(t *testing.T) {
	got, err := PrimesInRange(1, 1_000_000)
	require.NoError(t, err)
	assert.Len(t, got, 78498)
}
