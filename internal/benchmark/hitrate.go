// Package benchmark implements memo backend benchmark runners.
package benchmark

import (
	"github.com/tstromberg/primemark/internal/cache"
	"github.com/tstromberg/primemark/internal/workload"
)

// HitRateResult holds hit rate results for a single backend.
type HitRateResult struct {
	Name  string
	Rates map[int]float64 // cache size -> hit rate percentage
}

// Workload describes the input stream fed to every backend.
type Workload struct {
	Sizes    []int
	KeySpace int     // distinct inputs
	Ops      int     // stream length
	Alpha    float64 // Zipf skew
	Base     int64   // smallest input
}

const (
	workloadSeed = 42
	// Every 8th input of the mixed stream comes from a scan.
	mixedScanEvery = 8
)

// RunZipfHitRate benchmarks hit rates on a skewed stream of inputs.
func RunZipfHitRate(w Workload) []HitRateResult {
	return runHitRate(w, workload.Zipf(w.Ops, w.KeySpace, w.Base, w.Alpha, workloadSeed))
}

// RunScanHitRate benchmarks hit rates on a cyclic scan over the key space.
func RunScanHitRate(w Workload) []HitRateResult {
	return runHitRate(w, workload.Scan(w.Ops, w.KeySpace, w.Base))
}

// RunMixedHitRate benchmarks hit rates on a skewed stream polluted by a scan.
func RunMixedHitRate(w Workload) []HitRateResult {
	return runHitRate(w, workload.Mixed(w.Ops, w.KeySpace, w.Base, w.Alpha, workloadSeed, mixedScanEvery))
}

func runHitRate(w Workload, nums []int64) []HitRateResult {
	factories := cache.All()
	results := make([]HitRateResult, 0, len(factories))
	for _, factory := range factories {
		c := factory(w.Sizes[0])
		name := c.Name()
		c.Close()

		rates := make(map[int]float64)
		for _, size := range w.Sizes {
			rates[size] = replay(factory, nums, size)
		}
		results = append(results, HitRateResult{Name: name, Rates: rates})
	}
	return results
}

func replay(factory cache.Factory, nums []int64, cacheSize int) float64 {
	if len(nums) == 0 {
		return 0
	}
	c := factory(cacheSize)
	defer c.Close()

	var hits int64
	for _, n := range nums {
		if _, hit, err := cache.GetOrCompute(c, n); err == nil && hit {
			hits++
		}
	}
	return float64(hits) / float64(len(nums)) * 100
}
