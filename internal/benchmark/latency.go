package benchmark

import (
	"context"
	"math"
	"testing"

	"github.com/tstromberg/primemark/internal/cache"
	"github.com/tstromberg/primemark/prime"
)

// LatencyResult holds single-threaded latency results for a backend.
type LatencyResult struct {
	Name               string
	GetNsOp            float64 // nanoseconds per Get of a resident input
	SetNsOp            float64 // nanoseconds per Set (no eviction)
	SetEvictNsOp       float64 // nanoseconds per Set with eviction (20x keyspace)
	GetOrComputeNsOp   float64 // nanoseconds per GetOrCompute, half resident
	GetAllocs          int64
	SetAllocs          int64
	SetEvictAllocs     int64
	GetOrComputeAllocs int64
}

// OperationResult holds the latency of one library operation.
type OperationResult struct {
	Name   string
	NsOp   float64
	Allocs int64
	Bytes  int64
}

const (
	latencyCacheSize = 10_000
	latencyBase      = 1_000_000
)

// RunLatency benchmarks single-threaded memo latency for all backends.
func RunLatency() []LatencyResult {
	// Pre-factorize inputs once so Set measures only the backend.
	nums, factors := precompute(latencyBase, latencyCacheSize)
	evictNums, evictFactors := precompute(latencyBase, latencyCacheSize*20)

	factories := cache.All()
	results := make([]LatencyResult, 0, len(factories))
	for _, factory := range factories {
		c := factory(latencyCacheSize)
		name := c.Name()
		c.Close()

		getResult := testing.Benchmark(func(b *testing.B) {
			benchGet(b, factory, nums, factors)
		})
		setResult := testing.Benchmark(func(b *testing.B) {
			benchSet(b, factory, nums, factors)
		})
		setEvictResult := testing.Benchmark(func(b *testing.B) {
			benchSet(b, factory, evictNums, evictFactors)
		})
		gocResult := testing.Benchmark(func(b *testing.B) {
			benchGetOrCompute(b, factory, nums)
		})

		results = append(results, LatencyResult{
			Name:               name,
			GetNsOp:            float64(getResult.NsPerOp()),
			SetNsOp:            float64(setResult.NsPerOp()),
			SetEvictNsOp:       float64(setEvictResult.NsPerOp()),
			GetOrComputeNsOp:   float64(gocResult.NsPerOp()),
			GetAllocs:          getResult.AllocsPerOp(),
			SetAllocs:          setResult.AllocsPerOp(),
			SetEvictAllocs:     setEvictResult.AllocsPerOp(),
			GetOrComputeAllocs: gocResult.AllocsPerOp(),
		})
	}

	return results
}

// RunOperationLatency benchmarks the prime library operations themselves.
func RunOperationLatency() []OperationResult {
	batch := make([]int64, 64)
	for i := range batch {
		batch[i] = latencyBase + int64(i)
	}

	ops := []struct {
		name string
		fn   func()
	}{
		{"IsPrime(1e9+7)", func() { prime.IsPrime(int64(1_000_000_007)) }},
		{"Factorize(600001)", func() { prime.Factorize(int64(600_001)) }},       //nolint:errcheck // measured only
		{"Factorize(MaxInt64)", func() { prime.Factorize(int64(math.MaxInt64)) }}, //nolint:errcheck // measured only
		{"Factorize(2^62)", func() { prime.Factorize(int64(1) << 62) }},           //nolint:errcheck // measured only
		{"PrimesInRange(1e6, +1e4)", func() { prime.PrimesInRange(int64(1_000_000), 1_010_000) }}, //nolint:errcheck // measured only
		{"Sequence(1e9).first10", func() {
			seq, _ := prime.NewSequence(int64(1_000_000_000), 1_001_000_000) //nolint:errcheck // valid range
			for range 10 {
				seq.Next()
			}
		}},
		{"FactorizeAll(64)", func() { prime.FactorizeAll(context.Background(), batch) }}, //nolint:errcheck // measured only
	}

	results := make([]OperationResult, 0, len(ops))
	for _, op := range ops {
		r := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				op.fn()
			}
		})
		results = append(results, OperationResult{
			Name:   op.name,
			NsOp:   float64(r.NsPerOp()),
			Allocs: r.AllocsPerOp(),
			Bytes:  r.AllocedBytesPerOp(),
		})
	}
	return results
}

func precompute(base int64, count int) ([]int64, [][]int64) {
	nums := make([]int64, count)
	factors := make([][]int64, count)
	for i := range count {
		nums[i] = base + int64(i)
		factors[i], _ = prime.Factorize(nums[i]) //nolint:errcheck // inputs are positive
	}
	return nums, factors
}

func benchGet(b *testing.B, factory cache.Factory, nums []int64, factors [][]int64) {
	c := factory(latencyCacheSize)
	defer c.Close()

	for i, n := range nums {
		c.Set(n, factors[i])
	}

	b.ResetTimer()
	for i := range b.N {
		c.Get(nums[i%len(nums)])
	}
}

func benchSet(b *testing.B, factory cache.Factory, nums []int64, factors [][]int64) {
	c := factory(latencyCacheSize)
	defer c.Close()

	keySpace := len(nums)
	b.ResetTimer()
	for i := range b.N {
		c.Set(nums[i%keySpace], factors[i%keySpace])
	}
}

func benchGetOrCompute(b *testing.B, factory cache.Factory, nums []int64) {
	c := factory(latencyCacheSize)
	defer c.Close()

	// Pre-populate half the inputs to measure both hits and misses.
	for i := range len(nums) / 2 {
		cache.GetOrCompute(c, nums[i]) //nolint:errcheck // inputs are positive
	}

	b.ResetTimer()
	for i := range b.N {
		cache.GetOrCompute(c, nums[i%len(nums)]) //nolint:errcheck // inputs are positive
	}
}
