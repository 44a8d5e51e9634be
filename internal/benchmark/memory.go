package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/tstromberg/primemark/internal/cache"
)

// MemoryResult holds memory usage results for a backend.
type MemoryResult struct {
	Name          string `json:"name"`
	Items         int    `json:"items"`
	Bytes         uint64 `json:"bytes"`
	BytesPerItem  int64  `json:"bytesPerItem"`
	BaselineBytes uint64 `json:"baselineBytes"`
}

// MemOutput is the JSON document printed by cmd/mem.
type MemOutput struct {
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
	Items int    `json:"items"`
	Bytes uint64 `json:"bytes"`
}

// DefaultMemoryCapacity is the cache size for memory benchmarks.
const DefaultMemoryCapacity = 32_768

// RunMemory builds cmd/mem and measures each backend in its own process.
func RunMemory(ctx context.Context, log *zap.Logger, capacity int) ([]MemoryResult, error) {
	dir, err := os.MkdirTemp("", "primemark-mem")
	if err != nil {
		return nil, fmt.Errorf("create build dir: %w", err)
	}
	defer os.RemoveAll(dir) //nolint:errcheck // best-effort cleanup

	binPath := filepath.Join(dir, "mem")
	buildCmd := exec.CommandContext(ctx, "go", "build", "-o", binPath, "./cmd/mem")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("build mem benchmark: %w\n%s", err, out)
	}

	names := cache.AllNames()
	results := make([]MemoryResult, 0, len(names))

	for _, name := range names {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		res, err := runMemBenchmark(ctx, binPath, name, capacity)
		if err != nil {
			log.Warn("memory benchmark failed", zap.String("cache", name), zap.Error(err))
			continue
		}
		log.Debug("memory benchmark", zap.String("cache", name), zap.Uint64("bytes", res.Bytes))
		results = append(results, res)
	}

	baseline, err := runMemBenchmark(ctx, binPath, "baseline", capacity)
	if err != nil {
		return nil, fmt.Errorf("baseline benchmark: %w", err)
	}

	return withOverhead(results, baseline), nil
}

// withOverhead fills in per-item overhead against the baseline and sorts by
// bytes ascending.
func withOverhead(results []MemoryResult, baseline MemoryResult) []MemoryResult {
	for i := range results {
		results[i].BaselineBytes = baseline.Bytes
		if results[i].Items > 0 {
			diff := int64(results[i].Bytes) - int64(baseline.Bytes) //nolint:gosec // safe conversion
			results[i].BytesPerItem = diff / int64(results[i].Items)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Bytes < results[j].Bytes
	})
	return results
}

func runMemBenchmark(ctx context.Context, binPath, cacheName string, capacity int) (MemoryResult, error) {
	cmd := exec.CommandContext(ctx, binPath, //nolint:gosec // binary built above
		"-cache", cacheName,
		"-cap", strconv.Itoa(capacity),
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return MemoryResult{}, fmt.Errorf("run %s: %w\n%s", cacheName, err, out)
	}

	var res MemOutput
	if err := json.Unmarshal(out, &res); err != nil {
		return MemoryResult{}, fmt.Errorf("parse output for %s: %w\n%s", cacheName, err, out)
	}

	if res.Error != "" {
		return MemoryResult{}, fmt.Errorf("%s: %s", cacheName, res.Error)
	}

	return MemoryResult{
		Name:  res.Name,
		Items: res.Items,
		Bytes: res.Bytes,
	}, nil
}
