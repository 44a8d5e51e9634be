package output

import (
	"math"
	"sort"

	"github.com/tstromberg/primemark/internal/benchmark"
)

// Points awarded by placement: 1st=10, 2nd=7, 3rd=5, 4th=4, 5th=3, 6th=2, 7th=1.
var placementPoints = []float64{10, 7, 5, 4, 3, 2, 1}

// categoryOrder is the display order of medal categories.
var categoryOrder = []string{"Hit Rate", "Latency", "Throughput", "Memory"}

type rankedEntry struct {
	name  string
	score float64
}

// Round3 rounds to 3 decimal places for tie detection.
func Round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// WinnerEntry represents a ranked entry for winner display.
type WinnerEntry struct {
	Name  string
	Score float64
}

// FormatWinners returns winner names and the first runner-up for comparison.
// If multiple entries tie for first, all are returned as winners.
// runnerUp is nil if everyone ties or there is only one entry.
func FormatWinners(entries []WinnerEntry) (winners []string, runnerUp *WinnerEntry) {
	if len(entries) == 0 {
		return nil, nil
	}

	bestScore := Round3(entries[0].Score)
	for _, e := range entries {
		if Round3(e.Score) != bestScore {
			runnerUp = &WinnerEntry{Name: e.Name, Score: e.Score}
			break
		}
		winners = append(winners, e.Name)
	}

	return winners, runnerUp
}

// tally accumulates points and medals across benchmarks.
type tally struct {
	scores             map[string]float64
	medals             map[string][3]int // [gold, silver, bronze]
	categoryMedals     map[string]map[string][3]int
	categoryBenchmarks map[string][]BenchmarkMedal
}

func newTally() *tally {
	return &tally{
		scores:             make(map[string]float64),
		medals:             make(map[string][3]int),
		categoryMedals:     make(map[string]map[string][3]int),
		categoryBenchmarks: make(map[string][]BenchmarkMedal),
	}
}

// award ranks entries by score and hands out points and medals. Entries whose
// scores are equal to 3 decimal places share a placement, and the placements
// they occupy are skipped.
func (t *tally) award(category, benchName string, entries []rankedEntry, higherIsBetter bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if higherIsBetter {
			return entries[i].score > entries[j].score
		}
		return entries[i].score < entries[j].score
	})

	bm := BenchmarkMedal{Name: benchName}
	pos := 0
	for i := 0; i < len(entries); {
		var tied []string
		base := Round3(entries[i].score)
		for i < len(entries) && Round3(entries[i].score) == base {
			tied = append(tied, entries[i].name)
			i++
		}

		for _, n := range tied {
			if pos < len(placementPoints) {
				t.scores[n] += placementPoints[pos]
			} else if _, ok := t.scores[n]; !ok {
				t.scores[n] = 0
			}
			if pos < 3 {
				m := t.medals[n]
				m[pos]++
				t.medals[n] = m

				if t.categoryMedals[category] == nil {
					t.categoryMedals[category] = make(map[string][3]int)
				}
				cm := t.categoryMedals[category][n]
				cm[pos]++
				t.categoryMedals[category][n] = cm
			}
		}

		switch pos {
		case 0:
			bm.Gold = tied
		case 1:
			bm.Silver = tied
		case 2:
			bm.Bronze = tied
		}
		pos += len(tied)
	}

	t.categoryBenchmarks[category] = append(t.categoryBenchmarks[category], bm)
}

// ComputeRankings calculates overall rankings from benchmark results.
func ComputeRankings(results Results) ([]Ranking, *MedalTable) {
	t := newTally()

	if hr := results.HitRate; hr != nil {
		for _, b := range []struct {
			name string
			data []benchmark.HitRateResult
		}{
			{"Zipf", hr.Zipf},
			{"Scan", hr.Scan},
			{"Mixed", hr.Mixed},
		} {
			if len(b.data) == 0 {
				continue
			}
			entries := make([]rankedEntry, len(b.data))
			for i, r := range b.data {
				entries[i] = rankedEntry{r.Name, AvgHitRate(r, hr.Sizes)}
			}
			t.award("Hit Rate", b.name, entries, true)
		}
	}

	if lat := results.Latency; lat != nil && len(lat.Results) > 0 {
		entries := make([]rankedEntry, len(lat.Results))
		for i, r := range lat.Results {
			entries[i] = rankedEntry{r.Name, avgLatency(r)}
		}
		t.award("Latency", "Get/Set", entries, false)

		entries = make([]rankedEntry, len(lat.Results))
		for i, r := range lat.Results {
			entries[i] = rankedEntry{r.Name, r.GetOrComputeNsOp}
		}
		t.award("Latency", "GetOrCompute", entries, false)
	}

	if tp := results.Throughput; tp != nil && len(tp.Results) > 0 {
		entries := make([]rankedEntry, len(tp.Results))
		for i, r := range tp.Results {
			entries[i] = rankedEntry{r.Name, avgQPS(r)}
		}
		t.award("Throughput", "GetOrCompute", entries, true)
	}

	if mem := results.Memory; mem != nil && len(mem.Results) > 0 {
		entries := make([]rankedEntry, len(mem.Results))
		for i, r := range mem.Results {
			entries[i] = rankedEntry{r.Name, float64(r.Bytes)}
		}
		t.award("Memory", "Overhead", entries, false)
	}

	if len(t.scores) == 0 {
		return nil, nil
	}
	return t.rankings(), t.medalTable()
}

func (t *tally) rankings() []Ranking {
	out := make([]Ranking, 0, len(t.scores))
	for name, score := range t.scores {
		m := t.medals[name]
		out = append(out, Ranking{Name: name, Score: score, Gold: m[0], Silver: m[1], Bronze: m[2]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return byMedals(out[i], out[j])
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func (t *tally) medalTable() *MedalTable {
	var categories []CategoryMedals
	for _, cat := range categoryOrder {
		bm := t.categoryBenchmarks[cat]
		if len(bm) == 0 {
			continue
		}

		cm := t.categoryMedals[cat]
		ranks := make([]Ranking, 0, len(cm))
		for name, m := range cm {
			ranks = append(ranks, Ranking{Name: name, Gold: m[0], Silver: m[1], Bronze: m[2]})
		}
		sort.Slice(ranks, func(i, j int) bool { return byMedals(ranks[i], ranks[j]) })
		for i := range ranks {
			ranks[i].Rank = i + 1
		}

		categories = append(categories, CategoryMedals{Name: cat, Benchmarks: bm, Rankings: ranks})
	}
	return &MedalTable{Categories: categories}
}

// byMedals orders by gold, then silver, then bronze, then name.
func byMedals(a, b Ranking) bool {
	if a.Gold != b.Gold {
		return a.Gold > b.Gold
	}
	if a.Silver != b.Silver {
		return a.Silver > b.Silver
	}
	if a.Bronze != b.Bronze {
		return a.Bronze > b.Bronze
	}
	return a.Name < b.Name
}

// AvgHitRate computes the average hit rate across all cache sizes.
func AvgHitRate(r benchmark.HitRateResult, sizes []int) float64 {
	if len(sizes) == 0 {
		return 0
	}
	var sum float64
	for _, size := range sizes {
		sum += r.Rates[size]
	}
	return sum / float64(len(sizes))
}

func avgLatency(r benchmark.LatencyResult) float64 {
	return (r.GetNsOp + r.SetNsOp) / 2
}

func avgQPS(r benchmark.ThroughputResult) float64 {
	if len(r.QPS) == 0 {
		return 0
	}
	var sum float64
	for _, qps := range r.QPS {
		sum += qps
	}
	return sum / float64(len(r.QPS))
}
