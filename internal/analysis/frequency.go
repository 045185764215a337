package analysis

import (
	"sort"

	"github.com/lox/drawstats/internal/lottery"
)

// NumberFrequency describes how often a number appeared in a window.
type NumberFrequency struct {
	Number     int
	Count      int
	Percentage float64 // share of draws containing the number
	IsHot      bool
	IsCold     bool
	LastSeen   int // index of the newest draw containing the number, len(draws) if never seen
}

// Frequency counts every number of the zone across draws. The result has one
// entry per number in 1..zone.Max(), sorted by count descending with ties
// kept in ascending number order.
func Frequency(draws []lottery.Draw, zone lottery.Zone) []NumberFrequency {
	size := zone.Max()
	counts := make([]int, size+1)
	lastSeen := make([]int, size+1)
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	total := 0
	for idx, d := range draws {
		for _, n := range d.Numbers(zone) {
			if !zone.Contains(n) {
				continue
			}
			counts[n]++
			total++
			if lastSeen[n] < 0 {
				lastSeen[n] = idx
			}
		}
	}

	mean := float64(total) / float64(size)
	results := make([]NumberFrequency, 0, size)
	for n := 1; n <= size; n++ {
		f := NumberFrequency{
			Number:   n,
			Count:    counts[n],
			IsHot:    float64(counts[n]) > mean*hotFactor,
			IsCold:   float64(counts[n]) < mean*coldFactor,
			LastSeen: lastSeen[n],
		}
		if len(draws) > 0 {
			f.Percentage = float64(counts[n]) / float64(len(draws))
		}
		if f.LastSeen < 0 {
			f.LastSeen = len(draws)
		}
		results = append(results, f)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Count > results[j].Count
	})
	return results
}

// MeanCount returns the average occurrence count per number.
func MeanCount(freqs []NumberFrequency) float64 {
	if len(freqs) == 0 {
		return 0
	}
	total := 0
	for _, f := range freqs {
		total += f.Count
	}
	return float64(total) / float64(len(freqs))
}

// CountOf returns the count recorded for n, or 0 if n is not in freqs.
func CountOf(freqs []NumberFrequency, n int) int {
	for _, f := range freqs {
		if f.Number == n {
			return f.Count
		}
	}
	return 0
}

// Hot returns the hot numbers in descending count order.
func Hot(freqs []NumberFrequency) []int {
	return numbers(freqs, func(f NumberFrequency) bool { return f.IsHot })
}

// Cold returns the cold numbers in ascending count order, coldest first.
func Cold(freqs []NumberFrequency) []int {
	cold := numbers(freqs, func(f NumberFrequency) bool { return f.IsCold })
	counts := make(map[int]int, len(cold))
	for _, f := range freqs {
		counts[f.Number] = f.Count
	}
	sort.SliceStable(cold, func(i, j int) bool {
		return counts[cold[i]] < counts[cold[j]]
	})
	return cold
}

// Neutral returns the numbers that are neither hot nor cold, descending count.
func Neutral(freqs []NumberFrequency) []int {
	return numbers(freqs, func(f NumberFrequency) bool { return !f.IsHot && !f.IsCold })
}

func numbers(freqs []NumberFrequency, keep func(NumberFrequency) bool) []int {
	var out []int
	for _, f := range freqs {
		if keep(f) {
			out = append(out, f.Number)
		}
	}
	return out
}
