package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/lox/drawstats/internal/lottery"
)

// Distribution summarises a per-draw value over the window.
type Distribution struct {
	Average   float64
	Min       int
	Max       int
	StdDev    float64
	Histogram map[int]int
}

// Neutral defaults reported when there is no usable history.
var (
	DefaultSum  = Distribution{Average: 100, Min: 15, Max: 175, Histogram: map[int]int{}}
	DefaultSpan = Distribution{Average: 20, Min: 4, Max: 34, Histogram: map[int]int{}}
)

// Sum describes the sum of each draw's front numbers.
func Sum(draws []lottery.Draw) Distribution {
	return distribute(draws, DefaultSum, func(front []int) int {
		total := 0
		for _, n := range front {
			total += n
		}
		return total
	})
}

// Span describes max minus min of each draw's front numbers.
func Span(draws []lottery.Draw) Distribution {
	return distribute(draws, DefaultSpan, SpanOf)
}

// SpanOf returns max(numbers) - min(numbers), 0 for fewer than two numbers.
func SpanOf(numbers []int) int {
	if len(numbers) < 2 {
		return 0
	}
	lo, hi := numbers[0], numbers[0]
	for _, n := range numbers[1:] {
		lo = min(lo, n)
		hi = max(hi, n)
	}
	return hi - lo
}

func distribute(draws []lottery.Draw, fallback Distribution, value func([]int) int) Distribution {
	var values []float64
	hist := make(map[int]int)
	lo, hi := 0, 0

	for _, d := range draws {
		if len(d.Front) != lottery.Front.Pick() {
			continue
		}
		v := value(d.Front)
		if len(values) == 0 || v < lo {
			lo = v
		}
		if len(values) == 0 || v > hi {
			hi = v
		}
		values = append(values, float64(v))
		hist[v]++
	}

	if len(values) == 0 {
		fallback.Histogram = map[int]int{}
		return fallback
	}

	d := Distribution{
		Average:   stat.Mean(values, nil),
		Min:       lo,
		Max:       hi,
		Histogram: hist,
	}
	if len(values) > 1 {
		d.StdDev = stat.StdDev(values, nil)
	}
	return d
}
