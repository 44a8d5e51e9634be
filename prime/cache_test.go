package prime

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := NewCache[int](10)

	first, err := c.GetOrCompute(360)
	require.NoError(t, err)
	second, err := c.GetOrCompute(360)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 2, 3, 3, 5}, first)
	assert.Equal(t, first, second)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestCacheFlushesWhenFull(t *testing.T) {
	c := NewCache[int](3)
	for _, n := range []int{10, 11, 12} {
		_, err := c.GetOrCompute(n)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, c.Len())
	assert.Zero(t, c.Stats().Flushes)

	// A resident key never triggers a flush.
	_, err := c.GetOrCompute(11)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = c.GetOrCompute(13)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len(), "whole cache flushed before insert")
	assert.Equal(t, uint64(1), c.Stats().Flushes)

	_, ok := c.Lookup(10)
	assert.False(t, ok)
	got, ok := c.Lookup(13)
	assert.True(t, ok)
	assert.Equal(t, []int{13}, got)
}

func TestCacheTransparentAcrossFlushes(t *testing.T) {
	c := NewCache[int64](7)
	for round := range 3 {
		for n := int64(1); n <= 50; n++ {
			got, err := c.GetOrCompute(n)
			require.NoError(t, err)
			want, err := Factorize(n)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round %d: GetOrCompute(%d) mismatch (-Factorize +cache):\n%s", round, n, diff)
			}
		}
	}
	assert.Positive(t, c.Stats().Flushes)
}

func TestCacheDoesNotCacheErrors(t *testing.T) {
	c := NewCache[int](2)
	_, err := c.GetOrCompute(-4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.Zero(t, c.Len())
}

func TestCacheReturnsCopies(t *testing.T) {
	c := NewCache[int](2)
	got, err := c.GetOrCompute(12)
	require.NoError(t, err)
	got[0] = 99

	again, err := c.GetOrCompute(12)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 3}, again)
}

func TestCacheCapacityClamp(t *testing.T) {
	c := NewCache[int](0)
	assert.Equal(t, 1, c.Capacity())

	_, err := c.GetOrCompute(4)
	require.NoError(t, err)
	_, err = c.GetOrCompute(9)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestCachePurge(t *testing.T) {
	c := NewCache[int](5)
	for n := 2; n < 6; n++ {
		_, err := c.GetOrCompute(n)
		require.NoError(t, err)
	}
	c.Purge()
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Stats().Flushes)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache[int](64)

	var wg sync.WaitGroup
	for w := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 2000 {
				n := 2 + (i*7+w)%500
				got, err := c.GetOrCompute(n)
				if err != nil {
					t.Errorf("GetOrCompute(%d) error: %v", n, err)
					return
				}
				product := 1
				for _, f := range got {
					product *= f
				}
				if product != n {
					t.Errorf("GetOrCompute(%d) = %v", n, got)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
	stats := c.Stats()
	assert.Equal(t, uint64(16*2000), stats.Hits+stats.Misses)
}

func TestCacheLoadContextCanceled(t *testing.T) {
	c := NewCache[int64](4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, hit, err := c.LoadContext(ctx, 9223372036854775783)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, hit)
	assert.Zero(t, c.Len())

	got, err := c.GetOrComputeContext(context.Background(), 360)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 2, 2, 3, 3, 5}, got)
}
