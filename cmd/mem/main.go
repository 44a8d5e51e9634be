// Package main measures memory usage for a single memo backend.
// Run in isolated process for accurate measurements.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/tstromberg/primemark/internal/benchmark"
	"github.com/tstromberg/primemark/internal/cache"
	"github.com/tstromberg/primemark/prime"
)

// base is the smallest input stored; factor lists near one million are
// typical of the hit rate workloads.
const base = 1_000_000

var keepAlive any

// waiter is implemented by backends that buffer writes.
type waiter interface {
	Wait()
}

func main() {
	cacheName := flag.String("cache", "", "memo backend to measure, or \"baseline\"")
	capacity := flag.Int("cap", benchmark.DefaultMemoryCapacity, "capacity")
	flag.Parse()

	out := benchmark.MemOutput{Name: *cacheName}
	if *cacheName == "" {
		out.Error = "cache name required"
		emit(out)
		return
	}

	// Factor lists are computed before the first reading so that both the
	// baseline and the backends pay for the same values.
	nums, factors := inputs(*capacity)

	runtime.GC()
	debug.FreeOSMemory()

	items, err := populate(*cacheName, *capacity, nums, factors)
	if err != nil {
		out.Error = err.Error()
		emit(out)
		return
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	runtime.GC()
	debug.FreeOSMemory()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	out.Items = items
	out.Bytes = mem.Alloc
	emit(out)
}

func emit(out benchmark.MemOutput) {
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}

func inputs(capacity int) ([]int64, [][]int64) {
	nums := make([]int64, capacity)
	factors := make([][]int64, capacity)
	for i := range capacity {
		nums[i] = base + int64(i)
		factors[i], _ = prime.Factorize(nums[i]) //nolint:errcheck // inputs are positive
	}
	return nums, factors
}

func populate(name string, capacity int, nums []int64, factors [][]int64) (int, error) {
	if name == "baseline" {
		m := make(map[int64][]int64, capacity)
		for i, n := range nums {
			m[n] = factors[i]
		}
		keepAlive = m
		return len(m), nil
	}

	factory, ok := cache.ByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown cache %q", name)
	}
	c := factory(capacity)

	// Admission-based backends need repeated accesses before they keep an entry.
	for pass := range 3 {
		for i, n := range nums {
			c.Set(n, factors[i])
			if pass > 0 {
				c.Get(n)
			}
		}
		if w, ok := c.(waiter); ok {
			w.Wait()
		}
	}
	keepAlive = c

	count := 0
	for _, n := range nums {
		if _, ok := c.Get(n); ok {
			count++
		}
	}
	return count, nil
}
