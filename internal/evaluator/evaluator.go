// Package evaluator scores number combinations against a draw window.
package evaluator

import (
	"fmt"
	"math"

	"github.com/lox/drawstats/internal/analysis"
	"github.com/lox/drawstats/internal/insight"
	"github.com/lox/drawstats/internal/lottery"
)

// Rating buckets a combination score.
type Rating int

const (
	Invalid Rating = iota
	NeedsWork
	Fair
	Good
	Excellent
)

func (r Rating) String() string {
	switch r {
	case Invalid:
		return "invalid"
	case NeedsWork:
		return "needs work"
	case Fair:
		return "fair"
	case Good:
		return "good"
	case Excellent:
		return "excellent"
	default:
		return fmt.Sprintf("rating(%d)", int(r))
	}
}

// RatingFor maps a score in [0,100] to its bucket.
func RatingFor(score float64) Rating {
	switch {
	case score >= 80:
		return Excellent
	case score >= 60:
		return Good
	case score >= 40:
		return Fair
	default:
		return NeedsWork
	}
}

// Sub-score weights of the overall score.
const (
	FrequencyWeight = 0.3
	BalanceWeight   = 0.3
	TrendWeight     = 0.2
	DiversityWeight = 0.2
)

// Zone weights of a combined front/back score.
const (
	FrontWeight = 0.7
	BackWeight  = 0.3
)

const trendPoints = 20

// Evaluation is the scored breakdown of one combination. All scores are in [0,100].
type Evaluation struct {
	Score          float64
	FrequencyScore float64
	BalanceScore   float64
	TrendScore     float64
	DiversityScore float64
	Rating         Rating
	Details        string
}

// Evaluate scores candidate against draws for zone. An empty candidate or
// one with out-of-range or repeated numbers rates Invalid with a zero score.
// The result depends only on the inputs.
func Evaluate(candidate []int, draws []lottery.Draw, zone lottery.Zone) Evaluation {
	if !wellFormed(candidate, zone) {
		return Evaluation{Rating: Invalid, Details: insight.InvalidCombination}
	}

	e := Evaluation{
		FrequencyScore: frequencyScore(candidate, draws, zone),
		BalanceScore:   balanceScore(candidate, draws, zone),
		TrendScore:     trendScore(candidate, draws, zone),
		DiversityScore: diversityScore(candidate, zone),
	}
	e.Score = FrequencyWeight*e.FrequencyScore +
		BalanceWeight*e.BalanceScore +
		TrendWeight*e.TrendScore +
		DiversityWeight*e.DiversityScore
	e.Rating = RatingFor(e.Score)
	e.Details = insight.ForEvaluation(e.Score, e.FrequencyScore, e.BalanceScore)
	return e
}

// Combined weights a front and a back evaluation into one score.
func Combined(front, back Evaluation) float64 {
	return FrontWeight*front.Score + BackWeight*back.Score
}

func wellFormed(candidate []int, zone lottery.Zone) bool {
	if len(candidate) == 0 {
		return false
	}
	seen := make(map[int]bool, len(candidate))
	for _, n := range candidate {
		if !zone.Contains(n) || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

// frequencyScore maps each number's count relative to the zone mean onto
// 0..100 with the mean at 50. Without history every number sits at the mean.
func frequencyScore(candidate []int, draws []lottery.Draw, zone lottery.Zone) float64 {
	freqs := analysis.Frequency(draws, zone)
	mean := analysis.MeanCount(freqs)

	total := 0.0
	for _, n := range candidate {
		if mean == 0 {
			total += 50
			continue
		}
		ratio := float64(analysis.CountOf(freqs, n)) / mean
		total += math.Min(100, ratio*50)
	}
	return total / float64(len(candidate))
}

func balanceScore(candidate []int, draws []lottery.Draw, zone lottery.Zone) float64 {
	odd, big := 0, 0
	threshold := zone.BigThreshold()
	for _, n := range candidate {
		if n%2 == 1 {
			odd++
		}
		if n > threshold {
			big++
		}
	}
	size := float64(len(candidate))

	oddBalance := 1 - math.Abs(float64(odd)/size-analysis.OddEven(draws, zone).OddPercentage())
	bigBalance := 1 - math.Abs(float64(big)/size-analysis.BigSmall(draws, zone).BigPercentage())
	return (oddBalance + bigBalance) / 2 * 100
}

func trendScore(candidate []int, draws []lottery.Draw, zone lottery.Zone) float64 {
	recent := analysis.Frequency(analysis.Recent(draws), zone)
	score := 0.0
	for _, n := range candidate {
		if analysis.CountOf(recent, n) > 0 {
			score += trendPoints
		}
	}
	return math.Min(100, score)
}

func diversityScore(candidate []int, zone lottery.Zone) float64 {
	span := analysis.SpanOf(candidate)
	return math.Min(100, float64(span)/float64(zone.MaxSpan())*100)
}
