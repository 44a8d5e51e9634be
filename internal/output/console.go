package output

import (
	"fmt"
	"io"
)

func printer(out io.Writer) func(string, ...any) {
	return func(format string, args ...any) {
		fmt.Fprintf(out, format, args...)
	}
}

// PrintHitRate writes one hit rate table as it appears in the Markdown report.
func PrintHitRate(out io.Writer, name string, data []HitRateRow, sizes []int) {
	writeHitRateMarkdown(printer(out), name, data, sizes)
}

// PrintLatency writes the memo latency table.
func PrintLatency(out io.Writer, data []LatencyRow) {
	writeLatencyMarkdown(printer(out), data)
}

// PrintOperations writes the library operation latency table.
func PrintOperations(out io.Writer, data []OperationRow) {
	writeOperationMarkdown(printer(out), data)
}

// PrintThroughput writes one throughput table.
func PrintThroughput(out io.Writer, name string, data []ThroughputRow, threads []int) {
	writeThroughputMarkdown(printer(out), name, data, threads)
}

// PrintMemory writes the memory table.
func PrintMemory(out io.Writer, data *MemoryData) {
	if data == nil || len(data.Results) == 0 {
		return
	}
	writeMemoryMarkdown(printer(out), data)
}
