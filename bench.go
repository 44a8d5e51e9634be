package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tstromberg/primemark/internal/benchmark"
	"github.com/tstromberg/primemark/internal/cache"
	"github.com/tstromberg/primemark/internal/output"
)

// validSuites lists all available benchmark suites.
var validSuites = []string{"hitrate", "latency", "throughput", "memory"}

// validTests lists all available test names, grouped by suite.
var validTests = []string{
	// hitrate
	"zipf", "scan", "mixed",
	// latency
	"memo", "operations",
	// throughput
	"getorcompute",
	// memory
	"memory",
}

var benchFlags struct {
	suites  string
	tests   string
	caches  string
	sizes   string
	threads string
	outDir  string
	html    string
	open    bool
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark memo backends for the factor cache",
	Long: `Benchmark memo backends for the factor cache.

Suites:
  hitrate     zipf, scan, mixed       hit rate per cache size
  latency     memo, operations        single-threaded ns/op
  throughput  getorcompute            concurrent QPS per thread count
  memory      memory                  bytes per entry (isolated processes)`,
	Example: `  primemark bench --suites latency --tests memo --caches flush,otter
  primemark bench --suites hitrate --sizes 1,4,16 --outdir results`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchFlags.suites, "suites", "all", "comma-separated suites: "+strings.Join(validSuites, ","))
	f.StringVar(&benchFlags.tests, "tests", "", "comma-separated tests to run across suites (default: all)")
	f.StringVar(&benchFlags.caches, "caches", "", "comma-separated backends (default: all): "+strings.Join(cache.AvailableNames(), ","))
	f.StringVar(&benchFlags.sizes, "sizes", "", "comma-separated cache sizes in K (default: bench.sizes)")
	f.StringVar(&benchFlags.threads, "threads", "", "comma-separated thread counts for throughput (default: bench.threads)")
	f.StringVar(&benchFlags.outDir, "outdir", "", "directory for primemark_results.{html,md,json.zst}")
	f.StringVar(&benchFlags.html, "html", "", "HTML report path (default: temp dir)")
	f.BoolVar(&benchFlags.open, "open", false, "open the HTML report in a web browser")
}

var (
	suiteStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	testStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// benchPlan is the resolved set of suites, tests and parameters for one run.
type benchPlan struct {
	suites   map[string]bool
	tests    map[string]bool // nil = all
	workload benchmark.Workload
	threads  []int
}

func (p benchPlan) shouldRun(test string) bool {
	return p.tests == nil || p.tests[test]
}

func newBenchPlan() (benchPlan, error) {
	plan := benchPlan{
		suites: make(map[string]bool),
		workload: benchmark.Workload{
			Sizes:    cfg.Bench.Sizes,
			KeySpace: cfg.Bench.KeySpace,
			Ops:      cfg.Bench.Ops,
			Alpha:    cfg.Bench.Alpha,
			Base:     cfg.Bench.Base,
		},
		threads: cfg.Bench.Threads,
	}

	if benchFlags.suites == "all" || benchFlags.suites == "" {
		for _, s := range validSuites {
			plan.suites[s] = true
		}
	} else {
		for s := range strings.SplitSeq(benchFlags.suites, ",") {
			s = strings.TrimSpace(strings.ToLower(s))
			if s == "" {
				continue
			}
			if !slices.Contains(validSuites, s) {
				return plan, fmt.Errorf("unknown suite %q (available: %s)", s, strings.Join(validSuites, ", "))
			}
			plan.suites[s] = true
		}
	}

	if benchFlags.tests != "" {
		plan.tests = make(map[string]bool)
		for t := range strings.SplitSeq(benchFlags.tests, ",") {
			t = strings.TrimSpace(strings.ToLower(t))
			if t == "" {
				continue
			}
			if !slices.Contains(validTests, t) {
				return plan, fmt.Errorf("unknown test %q (available: %s)", t, strings.Join(validTests, ", "))
			}
			plan.tests[t] = true
		}
	}

	if benchFlags.caches != "" {
		var names []string
		for name := range strings.SplitSeq(benchFlags.caches, ",") {
			name = strings.TrimSpace(name)
			if _, ok := cache.ByName(name); !ok {
				return plan, fmt.Errorf("unknown cache %q (available: %s)", name, strings.Join(cache.AvailableNames(), ", "))
			}
			names = append(names, name)
		}
		cache.SetFilter(names)
	}

	if benchFlags.sizes != "" {
		sizes, err := parsePositiveList(benchFlags.sizes, 1024)
		if err != nil {
			return plan, fmt.Errorf("--sizes: %w", err)
		}
		plan.workload.Sizes = sizes
	}
	if benchFlags.threads != "" {
		threads, err := parsePositiveList(benchFlags.threads, 1)
		if err != nil {
			return plan, fmt.Errorf("--threads: %w", err)
		}
		plan.threads = threads
	}
	if len(plan.workload.Sizes) == 0 {
		return plan, fmt.Errorf("no cache sizes to benchmark")
	}
	return plan, nil
}

func runBench(cmd *cobra.Command, _ []string) error {
	plan, err := newBenchPlan()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	results := output.NewResults()
	log := logger.With(zap.String("run", results.RunID))
	printHeader(out, plan)

	if plan.suites["hitrate"] {
		results.HitRate = runHitRateBenchmarks(out, plan)
	}
	if plan.suites["latency"] {
		results.Latency = runLatencyBenchmarks(out, plan)
	}
	if plan.suites["throughput"] {
		results.Throughput = runThroughputBenchmarks(out, plan)
	}
	if plan.suites["memory"] {
		results.Memory = runMemoryBenchmarks(cmd.Context(), out, log, plan)
	}

	results.Rankings, results.MedalTable = output.ComputeRankings(results)
	printOverallRanking(out, results.Rankings)

	commandLine := "primemark " + strings.Join(os.Args[1:], " ")
	return writeReports(out, log, results, commandLine)
}

func writeReports(out io.Writer, log *zap.Logger, results output.Results, commandLine string) error {
	var htmlPath, mdPath, jsonPath string
	switch {
	case benchFlags.outDir != "":
		if err := os.MkdirAll(benchFlags.outDir, 0o755); err != nil { //nolint:gosec // standard dir permission
			return fmt.Errorf("create output directory: %w", err)
		}
		htmlPath = filepath.Join(benchFlags.outDir, "primemark_results.html")
		mdPath = filepath.Join(benchFlags.outDir, "primemark_results.md")
		jsonPath = filepath.Join(benchFlags.outDir, "primemark_results.json.zst")
	case benchFlags.html != "":
		htmlPath = benchFlags.html
	default:
		htmlPath = filepath.Join(os.TempDir(), "primemark_results.html")
	}

	if err := output.WriteHTML(htmlPath, results, commandLine); err != nil {
		return fmt.Errorf("write HTML: %w", err)
	}
	fmt.Fprintf(out, "Results: %s\n", htmlPath)

	if mdPath != "" {
		if err := output.WriteMarkdown(mdPath, results, commandLine); err != nil {
			return fmt.Errorf("write Markdown: %w", err)
		}
		fmt.Fprintf(out, "         %s\n", mdPath)
	}
	if jsonPath != "" {
		if err := output.WriteJSON(jsonPath, results, commandLine); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Fprintf(out, "         %s\n", jsonPath)
	}

	if benchFlags.open {
		if err := openBrowser(htmlPath); err != nil {
			log.Warn("could not open browser", zap.Error(err))
		}
	}
	return nil
}

const lineWidth = 80

func printHeader(out io.Writer, plan benchPlan) {
	fmt.Fprintln(out, suiteStyle.Render("primemark"))
	fmt.Fprintln(out)

	var suitesRun []string
	for _, s := range validSuites {
		if plan.suites[s] {
			suitesRun = append(suitesRun, s)
		}
	}
	sizes := make([]string, len(plan.workload.Sizes))
	for i, s := range plan.workload.Sizes {
		sizes[i] = output.SizeLabel(s)
	}

	fmt.Fprintf(out, "  caches: %d\n", len(cache.AllNames()))
	fmt.Fprintf(out, "  suites: %s\n", strings.Join(suitesRun, ", "))
	fmt.Fprintf(out, "  sizes:  %s\n", strings.Join(sizes, ", "))
	fmt.Fprintln(out)
}

func printSuite(out io.Writer, name, description string) {
	header := fmt.Sprintf("%s: %s ", name, description)
	padding := max(lineWidth-len(header), 4)
	fmt.Fprintf(out, "%s%s\n\n", suiteStyle.Render(header), dimStyle.Render(strings.Repeat("─", padding)))
}

func printTest(out io.Writer, name, description string) {
	fmt.Fprintf(out, "  %s %s\n\n", testStyle.Render("["+name+"]"), description)
}

func runHitRateBenchmarks(out io.Writer, plan benchPlan) *output.HitRateData {
	w := plan.workload
	data := &output.HitRateData{Sizes: w.Sizes}

	printSuite(out, "hitrate", "memo efficiency")

	if plan.shouldRun("zipf") {
		printTest(out, "zipf", fmt.Sprintf("Zipf (alpha=%.2f, %d ops, %d inputs from %d)", w.Alpha, w.Ops, w.KeySpace, w.Base))
		data.Zipf = benchmark.RunZipfHitRate(w)
		output.PrintHitRate(out, "Zipf", data.Zipf, w.Sizes)
	}
	if plan.shouldRun("scan") {
		printTest(out, "scan", fmt.Sprintf("cyclic scan (%d ops over %d inputs)", w.Ops, w.KeySpace))
		data.Scan = benchmark.RunScanHitRate(w)
		output.PrintHitRate(out, "Scan", data.Scan, w.Sizes)
	}
	if plan.shouldRun("mixed") {
		printTest(out, "mixed", "Zipf with every 8th input from a scan")
		data.Mixed = benchmark.RunMixedHitRate(w)
		output.PrintHitRate(out, "Mixed", data.Mixed, w.Sizes)
	}
	return data
}

func runLatencyBenchmarks(out io.Writer, plan benchPlan) *output.LatencyData {
	data := &output.LatencyData{}

	printSuite(out, "latency", "single-threaded (ns/op)")

	if plan.shouldRun("memo") {
		printTest(out, "memo", "Get/Set/GetOrCompute of factor lists")
		data.Results = benchmark.RunLatency()
		output.PrintLatency(out, data.Results)
	}
	if plan.shouldRun("operations") {
		printTest(out, "operations", "prime library calls")
		data.Operations = benchmark.RunOperationLatency()
		output.PrintOperations(out, data.Operations)
	}
	return data
}

func runThroughputBenchmarks(out io.Writer, plan benchPlan) *output.ThroughputData {
	data := &output.ThroughputData{Threads: plan.threads}

	printSuite(out, "throughput", "multi-threaded (QPS)")

	if plan.shouldRun("getorcompute") {
		printTest(out, "getorcompute", fmt.Sprintf("concurrent GetOrCompute over Zipf (alpha=%.2f, %d inputs from %d)", plan.workload.Alpha, plan.workload.KeySpace, plan.workload.Base))
		data.Results = benchmark.RunThroughput(plan.workload, plan.threads)
		output.PrintThroughput(out, "GetOrCompute", data.Results, plan.threads)
	}
	return data
}

func runMemoryBenchmarks(ctx context.Context, out io.Writer, log *zap.Logger, plan benchPlan) *output.MemoryData {
	capacity := cfg.Bench.MemoryCapacity

	printSuite(out, "memory", "overhead per entry (isolated processes)")

	if !plan.shouldRun("memory") {
		return nil
	}

	printTest(out, "memory", fmt.Sprintf("%d factor lists, 3 passes", capacity))

	results, err := benchmark.RunMemory(ctx, log, capacity)
	if err != nil {
		log.Error("memory benchmark", zap.Error(err))
		return nil
	}
	data := &output.MemoryData{Results: results, Capacity: capacity}
	output.PrintMemory(out, data)
	return data
}

func printOverallRanking(out io.Writer, rankings []output.Ranking) {
	if len(rankings) == 0 {
		return
	}

	printSuite(out, "summary", "ranked voting across all tests")

	for i := 0; i < len(rankings) && i < 3; i++ {
		r := rankings[i]
		fmt.Fprintf(out, "  #%d  %s (%.0f points)\n", r.Rank, r.Name, r.Score)
	}
	fmt.Fprintln(out)
}

// openBrowser opens the specified path in the default web browser.
func openBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path) //nolint:noctx // trusted command, fire-and-forget
	case "linux":
		cmd = exec.Command("xdg-open", path) //nolint:noctx // trusted command, fire-and-forget
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path) //nolint:noctx // trusted command, fire-and-forget
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
