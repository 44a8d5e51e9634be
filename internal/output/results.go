// Package output provides result formatting and export.
package output

import (
	"runtime"

	"github.com/google/uuid"

	"github.com/tstromberg/primemark/internal/benchmark"
)

// Results holds all benchmark results of one run.
type Results struct {
	RunID       string
	Timestamp   string
	HitRate     *HitRateData
	Latency     *LatencyData
	Throughput  *ThroughputData
	Memory      *MemoryData
	Rankings    []Ranking
	MedalTable  *MedalTable
	MachineInfo MachineInfo
}

// NewResults returns empty results stamped with a fresh run ID and the
// current machine's details.
func NewResults() Results {
	return Results{
		RunID: uuid.NewString(),
		MachineInfo: MachineInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
		},
	}
}

// MachineInfo holds information about the benchmark environment.
type MachineInfo struct {
	OS          string
	Arch        string
	NumCPU      int
	GoVersion   string
	CommandLine string
}

// Ranking represents an overall ranking entry.
type Ranking struct {
	Rank   int
	Name   string
	Score  float64
	Gold   int
	Silver int
	Bronze int
}

// BenchmarkMedal holds a single benchmark's top placements. Tied entries
// share a placement.
type BenchmarkMedal struct {
	Name   string
	Gold   []string
	Silver []string
	Bronze []string
}

// CategoryMedals holds medals for a benchmark category with its winner.
type CategoryMedals struct {
	Name       string
	Benchmarks []BenchmarkMedal
	Rankings   []Ranking
}

// MedalTable holds all benchmark medals organized by category.
type MedalTable struct {
	Categories []CategoryMedals
}

// HitRateData holds hit rate benchmark data.
type HitRateData struct {
	Zipf  []benchmark.HitRateResult
	Scan  []benchmark.HitRateResult
	Mixed []benchmark.HitRateResult
	Sizes []int
}

// LatencyData holds latency benchmark data.
type LatencyData struct {
	Results    []benchmark.LatencyResult
	Operations []benchmark.OperationResult
}

// ThroughputData holds throughput benchmark data.
type ThroughputData struct {
	Results []benchmark.ThroughputResult
	Threads []int
}

// MemoryData holds memory benchmark data.
type MemoryData struct {
	Results  []benchmark.MemoryResult
	Capacity int
}

// Row aliases keep the writers short.
type (
	HitRateRow    = benchmark.HitRateResult
	LatencyRow    = benchmark.LatencyResult
	OperationRow  = benchmark.OperationResult
	ThroughputRow = benchmark.ThroughputResult
)
