package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipfStaysInKeySpace(t *testing.T) {
	const base = 1_000_000
	nums := Zipf(10_000, 500, base, 0.99, 42)
	require.Len(t, nums, 10_000)
	for _, n := range nums {
		assert.GreaterOrEqual(t, n, int64(base))
		assert.Less(t, n, int64(base+500))
	}
}

func TestZipfIsReproducible(t *testing.T) {
	a := Zipf(1000, 100, 2, 0.8, 7)
	b := Zipf(1000, 100, 2, 0.8, 7)
	assert.Equal(t, a, b)
	c := Zipf(1000, 100, 2, 0.8, 8)
	assert.NotEqual(t, a, c)
}

func TestZipfIsSkewed(t *testing.T) {
	counts := make(map[int64]int)
	for _, n := range Zipf(20_000, 1000, 0, 0.99, 1) {
		counts[n]++
	}
	// The hottest rank must dominate a rank from the tail.
	assert.Greater(t, counts[0], 10*counts[900])
}

func TestScanWraps(t *testing.T) {
	assert.Equal(t, []int64{10, 11, 12, 10, 11, 12, 10}, Scan(7, 3, 10))
}

func TestMixed(t *testing.T) {
	nums := Mixed(12, 100, 0, 0.9, 3, 4)
	require.Len(t, nums, 12)
	assert.Equal(t, int64(100), nums[3])
	assert.Equal(t, int64(101), nums[7])
	assert.Equal(t, int64(102), nums[11])
	for i, n := range nums {
		if (i+1)%4 != 0 {
			assert.Less(t, n, int64(100))
		}
	}

	assert.Equal(t, Zipf(12, 100, 0, 0.9, 3), Mixed(12, 100, 0, 0.9, 3, 0))
}
