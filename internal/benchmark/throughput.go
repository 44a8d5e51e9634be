package benchmark

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tstromberg/primemark/internal/cache"
	"github.com/tstromberg/primemark/internal/workload"
)

// ThroughputResult holds multi-threaded throughput results for a backend.
type ThroughputResult struct {
	Name string
	QPS  map[int]float64 // thread count -> QPS
}

const (
	throughputCacheSize = 10_000
	opsBatchSize        = 1000
)

// benchmarkDuration is how long each thread count is measured.
var benchmarkDuration = 1 * time.Second

// RunThroughput benchmarks concurrent GetOrCompute at various thread counts
// using the Zipf stream w describes. w.Sizes is ignored; every backend holds
// throughputCacheSize entries.
func RunThroughput(w Workload, threadCounts []int) []ThroughputResult {
	nums := workload.Zipf(w.Ops, w.KeySpace, w.Base, w.Alpha, workloadSeed)
	warm := min(throughputCacheSize, w.KeySpace)

	factories := cache.All()
	results := make([]ThroughputResult, 0, len(factories))
	for _, factory := range factories {
		c := factory(throughputCacheSize)
		name := c.Name()
		c.Close()

		qps := make(map[int]float64)
		for _, threads := range threadCounts {
			qps[threads] = measureQPS(factory, nums, w.Base, warm, threads)
		}
		results = append(results, ThroughputResult{Name: name, QPS: qps})
	}

	return results
}

func measureQPS(factory cache.Factory, nums []int64, base int64, warm, threads int) float64 {
	c := factory(throughputCacheSize)
	defer c.Close()

	// Pre-populate with the hottest Zipf ranks.
	for i := range warm {
		cache.GetOrCompute(c, base+int64(i)) //nolint:errcheck // inputs are positive
	}

	var ops atomic.Int64
	var stop atomic.Bool
	var wg sync.WaitGroup

	workloadLen := len(nums)

	for t := range threads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Stagger start offsets so threads do not walk the stream in lockstep.
			for i := t * (workloadLen / threads); ; {
				for range opsBatchSize {
					cache.GetOrCompute(c, nums[i%workloadLen]) //nolint:errcheck // inputs are positive
					i++
				}
				ops.Add(opsBatchSize)
				if stop.Load() {
					return
				}
			}
		}()
	}

	start := time.Now()
	time.Sleep(benchmarkDuration)
	stop.Store(true)
	wg.Wait()

	return float64(ops.Load()) / time.Since(start).Seconds()
}
