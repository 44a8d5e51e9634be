package benchmark

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstromberg/primemark/internal/cache"
	"github.com/tstromberg/primemark/internal/workload"
)

func smallWorkload() Workload {
	return Workload{
		Sizes:    []int{50, 200},
		KeySpace: 100,
		Ops:      1000,
		Alpha:    0.99,
		Base:     1_000,
	}
}

func TestScanHitRate(t *testing.T) {
	cache.SetFilter([]string{"lru", "flush"})
	t.Cleanup(func() { cache.SetFilter(nil) })

	results := RunScanHitRate(smallWorkload())
	require.Len(t, results, 2)

	for _, r := range results {
		// A scan larger than the cache never hits an LRU or a flushing cache.
		assert.Zero(t, r.Rates[50], r.Name)
		// Once the whole key space fits, only the first pass misses.
		assert.InDelta(t, 90.0, r.Rates[200], 0.001, r.Name)
	}
}

func TestZipfHitRateGrowsWithSize(t *testing.T) {
	cache.SetFilter([]string{"lru"})
	t.Cleanup(func() { cache.SetFilter(nil) })

	w := smallWorkload()
	w.Sizes = []int{10, 100}
	results := RunZipfHitRate(w)
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "lru", r.Name)
	assert.Greater(t, r.Rates[10], 0.0)
	assert.Greater(t, r.Rates[100], r.Rates[10])
	assert.LessOrEqual(t, r.Rates[100], 100.0)
}

func TestMixedHitRate(t *testing.T) {
	cache.SetFilter([]string{"flush"})
	t.Cleanup(func() { cache.SetFilter(nil) })

	results := RunMixedHitRate(smallWorkload())
	require.Len(t, results, 1)
	for _, size := range []int{50, 200} {
		assert.GreaterOrEqual(t, results[0].Rates[size], 0.0)
		assert.LessOrEqual(t, results[0].Rates[size], 100.0)
	}
}

func TestReplayEmptyStream(t *testing.T) {
	assert.Zero(t, replay(cache.NewLRU, nil, 10))
}

func TestThroughputReportsQPS(t *testing.T) {
	if testing.Short() {
		t.Skip("measures wall-clock throughput")
	}
	cache.SetFilter([]string{"flush"})
	old := benchmarkDuration
	benchmarkDuration = 20 * time.Millisecond
	t.Cleanup(func() {
		cache.SetFilter(nil)
		benchmarkDuration = old
	})

	results := RunThroughput(smallWorkload(), []int{1, 2})
	require.Len(t, results, 1)
	assert.Equal(t, "flush", results[0].Name)
	assert.Positive(t, results[0].QPS[1])
	assert.Positive(t, results[0].QPS[2])
}

// recordingMemo remembers every input it was asked about.
type recordingMemo struct {
	mu   sync.Mutex
	seen map[int64]bool
}

func (m *recordingMemo) Get(n int64) ([]int64, bool) {
	m.mu.Lock()
	m.seen[n] = true
	m.mu.Unlock()
	return nil, false
}

func (*recordingMemo) Set(int64, []int64) {}
func (*recordingMemo) Name() string { return "recording" }
func (*recordingMemo) Close() {}

func TestMeasureQPSStaysInWorkloadKeySpace(t *testing.T) {
	old := benchmarkDuration
	benchmarkDuration = 10 * time.Millisecond
	t.Cleanup(func() { benchmarkDuration = old })

	w := smallWorkload()
	w.Base = 5_000
	nums := workload.Zipf(w.Ops, w.KeySpace, w.Base, w.Alpha, workloadSeed)

	rec := &recordingMemo{seen: make(map[int64]bool)}
	qps := measureQPS(func(int) cache.Memo { return rec }, nums, w.Base, 10, 1)
	assert.Positive(t, qps)

	require.NotEmpty(t, rec.seen)
	for n := range rec.seen {
		assert.GreaterOrEqual(t, n, w.Base)
		assert.Less(t, n, w.Base+int64(w.KeySpace))
	}
	for n := w.Base; n < w.Base+10; n++ {
		assert.True(t, rec.seen[n], "warm-up input %d", n)
	}
}

func TestWithOverhead(t *testing.T) {
	results := withOverhead([]MemoryResult{
		{Name: "big", Items: 100, Bytes: 30_000},
		{Name: "small", Items: 100, Bytes: 15_000},
		{Name: "empty", Items: 0, Bytes: 10_000},
	}, MemoryResult{Bytes: 10_000})

	require.Len(t, results, 3)
	assert.Equal(t, []string{"empty", "small", "big"}, []string{results[0].Name, results[1].Name, results[2].Name})
	assert.Equal(t, int64(0), results[0].BytesPerItem)
	assert.Equal(t, int64(50), results[1].BytesPerItem)
	assert.Equal(t, int64(200), results[2].BytesPerItem)
	for _, r := range results {
		assert.Equal(t, uint64(10_000), r.BaselineBytes)
	}
}
