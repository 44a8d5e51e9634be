package output

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// WriteMarkdown writes benchmark results to a Markdown file.
func WriteMarkdown(filename string, results Results, commandLine string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	renderMarkdown(f, results, commandLine)
	return nil
}

func renderMarkdown(out io.Writer, results Results, commandLine string) {
	w := printer(out)

	w("# primemark Results\n\n")
	w("```\n")
	w("Run: %s\n", results.RunID)
	w("Command: %s\n", commandLine)
	w("Environment: %s/%s, %d CPUs, %s\n", results.MachineInfo.OS, results.MachineInfo.Arch, results.MachineInfo.NumCPU, results.MachineInfo.GoVersion)
	w("```\n\n")

	if hr := results.HitRate; hr != nil {
		w("## Hit Rate Benchmarks\n\n")
		writeHitRateMarkdown(w, "Zipf", hr.Zipf, hr.Sizes)
		writeHitRateMarkdown(w, "Scan", hr.Scan, hr.Sizes)
		writeHitRateMarkdown(w, "Mixed", hr.Mixed, hr.Sizes)
	}

	if results.Latency != nil {
		w("## Latency Benchmarks\n\n")
		writeLatencyMarkdown(w, results.Latency.Results)
		writeOperationMarkdown(w, results.Latency.Operations)
	}

	if results.Throughput != nil {
		w("## Throughput Benchmarks\n\n")
		writeThroughputMarkdown(w, "GetOrCompute", results.Throughput.Results, results.Throughput.Threads)
	}

	if results.Memory != nil && len(results.Memory.Results) > 0 {
		w("## Memory Benchmarks\n\n")
		writeMemoryMarkdown(w, results.Memory)
	}

	if len(results.Rankings) > 0 {
		w("## Overall Rankings\n\n")
		w("| Rank | Cache         | Score | Gold | Silver | Bronze |\n")
		w("|------|---------------|-------|------|--------|--------|\n")
		for _, r := range results.Rankings {
			w("| %4d | %-13s | %5.0f | %4d | %6d | %6d |\n", r.Rank, r.Name, r.Score, r.Gold, r.Silver, r.Bronze)
		}
		w("\n")
	}
}

// SizeLabel renders a cache size, using a K suffix for multiples of 1024.
func SizeLabel(size int) string {
	if size >= 1024 && size%1024 == 0 {
		return fmt.Sprintf("%dK", size/1024)
	}
	return fmt.Sprintf("%d", size)
}

// winnerLine reports the leader and how far ahead it is of the runner-up.
// entries must be sorted best first.
func winnerLine(w func(string, ...any), entries []WinnerEntry, higherIsBetter bool) {
	winners, runnerUp := FormatWinners(entries)
	if len(winners) == 0 {
		return
	}
	if runnerUp == nil {
		if len(winners) > 1 {
			w("\n  tie: %v\n", winners)
		}
		return
	}
	best := entries[0].Score
	var pct float64
	if higherIsBetter && runnerUp.Score != 0 {
		pct = (best - runnerUp.Score) / runnerUp.Score * 100
	} else if best != 0 {
		pct = (runnerUp.Score - best) / best * 100
	}
	w("\n  winner: %v (+%.1f%% vs %s)\n", winners, pct, runnerUp.Name)
}

func writeHitRateMarkdown(w func(string, ...any), name string, data []HitRateRow, sizes []int) {
	if len(data) == 0 {
		return
	}

	w("### %s\n\n", name)

	w("| Cache         |")
	for _, size := range sizes {
		w(" %7s |", SizeLabel(size))
	}
	w("     Avg |\n")

	w("|---------------|")
	for range sizes {
		w("---------|")
	}
	w("---------|\n")

	sorted := make([]HitRateRow, len(data))
	copy(sorted, data)
	sort.SliceStable(sorted, func(i, j int) bool {
		return AvgHitRate(sorted[i], sizes) > AvgHitRate(sorted[j], sizes)
	})

	entries := make([]WinnerEntry, len(sorted))
	for i, r := range sorted {
		avg := AvgHitRate(r, sizes)
		w("| %-13s |", r.Name)
		for _, size := range sizes {
			w(" %6.2f%% |", r.Rates[size])
		}
		w(" %6.2f%% |\n", avg)
		entries[i] = WinnerEntry{Name: r.Name, Score: avg}
	}

	winnerLine(w, entries, true)
	w("\n")
}

func writeLatencyMarkdown(w func(string, ...any), data []LatencyRow) {
	if len(data) == 0 {
		return
	}

	w("### Memo Operations\n\n")
	w("| Cache         | Get ns | Get alloc | Set ns | Set alloc | SetEvict ns | SetEvict alloc | GetOrCompute ns | GetOrCompute alloc |\n")
	w("|---------------|--------|-----------|--------|-----------|-------------|----------------|-----------------|--------------------|\n")

	sorted := make([]LatencyRow, len(data))
	copy(sorted, data)
	sort.SliceStable(sorted, func(i, j int) bool {
		return avgLatency(sorted[i]) < avgLatency(sorted[j])
	})

	entries := make([]WinnerEntry, len(sorted))
	for i, r := range sorted {
		w("| %-13s | %6.0f | %9d | %6.0f | %9d | %11.0f | %14d | %15.0f | %18d |\n",
			r.Name, r.GetNsOp, r.GetAllocs, r.SetNsOp, r.SetAllocs, r.SetEvictNsOp, r.SetEvictAllocs,
			r.GetOrComputeNsOp, r.GetOrComputeAllocs)
		entries[i] = WinnerEntry{Name: r.Name, Score: avgLatency(r)}
	}

	winnerLine(w, entries, false)
	w("\n")
}

func writeOperationMarkdown(w func(string, ...any), data []OperationRow) {
	if len(data) == 0 {
		return
	}

	w("### Library Operations\n\n")
	w("| Operation                 |        ns/op | allocs/op |  B/op |\n")
	w("|---------------------------|--------------|-----------|-------|\n")
	for _, r := range data {
		w("| %-25s | %12.0f | %9d | %5d |\n", r.Name, r.NsOp, r.Allocs, r.Bytes)
	}
	w("\n")
}

func writeThroughputMarkdown(w func(string, ...any), name string, data []ThroughputRow, threads []int) {
	if len(data) == 0 {
		return
	}

	w("### %s\n\n", name)

	w("| Cache         |")
	for _, t := range threads {
		w(" %2dT       |", t)
	}
	w("       Avg |\n")

	w("|---------------|")
	for range threads {
		w("-----------|")
	}
	w("-----------|\n")

	sorted := make([]ThroughputRow, len(data))
	copy(sorted, data)
	sort.SliceStable(sorted, func(i, j int) bool {
		return avgQPS(sorted[i]) > avgQPS(sorted[j])
	})

	entries := make([]WinnerEntry, len(sorted))
	for i, r := range sorted {
		w("| %-13s |", r.Name)
		for _, t := range threads {
			w(" %9s |", FormatQPS(r.QPS[t]))
		}
		avg := avgQPS(r)
		w(" %9s |\n", FormatQPS(avg))
		entries[i] = WinnerEntry{Name: r.Name, Score: avg}
	}

	winnerLine(w, entries, true)
	w("\n")
}

// FormatQPS renders operations per second as K or M.
func FormatQPS(qps float64) string {
	if qps >= 1_000_000 {
		return fmt.Sprintf("%.2fM", qps/1_000_000)
	}
	return fmt.Sprintf("%.0fK", qps/1_000)
}

func writeMemoryMarkdown(w func(string, ...any), data *MemoryData) {
	w("Capacity: %d entries\n\n", data.Capacity)
	w("| Cache         | Items Stored | Memory (MB) | Overhead (bytes/item) |\n")
	w("|---------------|--------------|-------------|-----------------------|\n")

	entries := make([]WinnerEntry, len(data.Results))
	for i, r := range data.Results {
		mb := float64(r.Bytes) / 1024 / 1024
		w("| %-13s | %12d | %11.2f | %21d |\n", r.Name, r.Items, mb, r.BytesPerItem)
		entries[i] = WinnerEntry{Name: r.Name, Score: float64(r.Bytes)}
	}

	winnerLine(w, entries, false)
	w("\n")
}
