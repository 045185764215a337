package strategy

import (
	"math"
	rand "math/rand/v2"

	"github.com/lox/drawstats/internal/analysis"
	"github.com/lox/drawstats/internal/lottery"
	"github.com/lox/drawstats/internal/randutil"
)

// Generator draws candidate sets for a strategy. It owns its random source
// and is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// GenerateZone generates a full zone pick, e.g. 5 of 35 for the front zone.
func (g *Generator) GenerateZone(draws []lottery.Draw, s Strategy, zone lottery.Zone) []int {
	return g.Generate(draws, s, zone, zone.Pick(), zone.Max())
}

// Generate returns count distinct numbers in [1,limit], sorted ascending.
// count is clamped to [0,limit].
func (g *Generator) Generate(draws []lottery.Draw, s Strategy, zone lottery.Zone, count, limit int) []int {
	count = clamp(count, 0, limit)
	if len(draws) == 0 {
		return randutil.SampleRange(g.rng, count, limit)
	}

	candidates := fill(Pool(draws, s, zone, count, limit), count, limit)
	selected := randutil.Sample(g.rng, candidates, count)
	if len(selected) != count {
		return randutil.SampleRange(g.rng, count, limit)
	}
	return selected
}

// Pool returns the strategy's candidate pool before filling and sampling.
// Members above limit are dropped and duplicates removed.
func Pool(draws []lottery.Draw, s Strategy, zone lottery.Zone, count, limit int) []int {
	freqs := analysis.Frequency(draws, zone)

	var pool []int
	switch s {
	case Hot:
		pool = head(analysis.Hot(freqs), min(count+2, limit))
	case Cold:
		pool = head(analysis.Cold(freqs), min(count+2, limit))
	case Balanced:
		half := int(math.Ceil(float64(count) / 2))
		pool = append(head(analysis.Hot(freqs), half), head(analysis.Cold(freqs), half)...)
	case Trend:
		recent := analysis.Frequency(analysis.Recent(draws), zone)
		all := make([]int, 0, len(recent))
		for _, f := range recent {
			all = append(all, f.Number)
		}
		pool = head(all, count+2)
	default:
		hotCount := int(math.Ceil(float64(count) * 0.4))
		coldCount := int(math.Ceil(float64(count) * 0.3))
		neutralCount := max(0, count-hotCount-coldCount)

		byCount := func(keep func(analysis.NumberFrequency) bool, n int) []int {
			var out []int
			for _, f := range freqs {
				if len(out) == n {
					break
				}
				if keep(f) {
					out = append(out, f.Number)
				}
			}
			return out
		}
		pool = append(pool, byCount(func(f analysis.NumberFrequency) bool { return f.IsHot }, hotCount)...)
		pool = append(pool, byCount(func(f analysis.NumberFrequency) bool { return f.IsCold }, coldCount)...)
		pool = append(pool, byCount(func(f analysis.NumberFrequency) bool { return !f.IsHot && !f.IsCold }, neutralCount)...)
	}

	return dedupe(pool, limit)
}

// fill tops pool up to count members by scanning 1..limit in order.
func fill(pool []int, count, limit int) []int {
	if len(pool) >= count {
		return pool
	}
	present := make(map[int]bool, len(pool))
	for _, n := range pool {
		present[n] = true
	}
	for n := 1; n <= limit && len(pool) < count; n++ {
		if !present[n] {
			pool = append(pool, n)
		}
	}
	return pool
}

func dedupe(pool []int, limit int) []int {
	seen := make(map[int]bool, len(pool))
	out := make([]int, 0, len(pool))
	for _, n := range pool {
		if n < 1 || n > limit || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func head(list []int, n int) []int {
	if n < len(list) {
		return list[:n]
	}
	return list
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
