package output

import (
	"embed"
	"html/template"
	"os"
	"sort"
	"time"
)

//go:embed template.html
var templateFS embed.FS

// WriteHTML writes benchmark results to an HTML file.
func WriteHTML(filename string, results Results, commandLine string) error {
	results.Timestamp = time.Now().Format("2006-01-02 15:04:05 MST")
	results.MachineInfo.CommandLine = commandLine

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return htmlTemplate.Execute(f, results)
}

var htmlTemplate = template.Must(template.New("template.html").Funcs(templateFuncs).ParseFS(templateFS, "template.html"))

type hitRateSet struct {
	Name string
	Rows []HitRateRow
}

var templateFuncs = template.FuncMap{
	"size":       SizeLabel,
	"qps":        FormatQPS,
	"avgHitRate": AvgHitRate,
	"avgLatency": avgLatency,
	"avgQPS":     avgQPS,
	"mb": func(b uint64) float64 {
		return float64(b) / 1024 / 1024
	},
	"sortByHitRate": func(rows []HitRateRow, sizes []int) []HitRateRow {
		sorted := append([]HitRateRow(nil), rows...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return AvgHitRate(sorted[i], sizes) > AvgHitRate(sorted[j], sizes)
		})
		return sorted
	},
	"sortByLatency": func(rows []LatencyRow) []LatencyRow {
		sorted := append([]LatencyRow(nil), rows...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return avgLatency(sorted[i]) < avgLatency(sorted[j])
		})
		return sorted
	},
	"sortByThroughput": func(rows []ThroughputRow) []ThroughputRow {
		sorted := append([]ThroughputRow(nil), rows...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return avgQPS(sorted[i]) > avgQPS(sorted[j])
		})
		return sorted
	},
	"hitRateSets": func(hr *HitRateData) []hitRateSet {
		return []hitRateSet{{"Zipf", hr.Zipf}, {"Scan", hr.Scan}, {"Mixed", hr.Mixed}}
	},
	"color": func(name string) template.CSS {
		if c, ok := cacheColors[name]; ok {
			return template.CSS("border-left:4px solid " + c)
		}
		return ""
	},
}

var cacheColors = map[string]string{
	"flush":         "#2E7D32",
	"otter":         "#1976D2",
	"theine":        "#D32F2F",
	"ristretto":     "#7B1FA2",
	"freecache":     "#F57C00",
	"freelru-shard": "#0288D1",
	"freelru-sync":  "#00796B",
	"tinylfu":       "#C2185B",
	"sieve":         "#5D4037",
	"s3-fifo":       "#455A64",
	"2q":            "#E64A19",
	"s4lru":         "#512DA8",
	"clock":         "#00695C",
	"lru":           "#AFB42B",
	"ttlcache":      "#0097A7",
}
