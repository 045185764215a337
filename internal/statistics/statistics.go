package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lox/drawstats/internal/evaluator"
)

// Statistics accumulates combination scores across a learning run.
type Statistics struct {
	Count  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	// Rating buckets per evaluator.RatingFor
	Excellent int
	Good      int
	Fair      int
	NeedsWork int
}

// Mean returns the arithmetic mean of all scores
func (s *Statistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of all scores
func (s *Statistics) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return math.Max(0, (s.Sum2-float64(s.Count)*mean*mean)/float64(s.Count-1))
}

// StdDev returns the sample standard deviation of all scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new score
func (s *Statistics) Add(score float64) {
	s.Count++
	s.Sum += score
	s.Sum2 += score * score
	s.Values = append(s.Values, score)

	switch evaluator.RatingFor(score) {
	case evaluator.Excellent:
		s.Excellent++
	case evaluator.Good:
		s.Good++
	case evaluator.Fair:
		s.Fair++
	default:
		s.NeedsWork++
	}
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate checks that the accumulators agree with the stored values.
func (s *Statistics) Validate() error {
	if s.Count != len(s.Values) {
		return fmt.Errorf("count mismatch: Count=%d, values=%d", s.Count, len(s.Values))
	}
	if buckets := s.Excellent + s.Good + s.Fair + s.NeedsWork; buckets != s.Count {
		return fmt.Errorf("rating buckets sum to %d, expected %d", buckets, s.Count)
	}
	if s.Count > 0 {
		if diff := math.Abs(floats.Sum(s.Values) - s.Sum); diff > 1e-6 {
			return fmt.Errorf("sum mismatch: accumulated=%.6f, values=%.6f", s.Sum, floats.Sum(s.Values))
		}
	}
	return nil
}

// Summary is a point-in-time digest of the accumulated scores.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Low95  float64
	High95 float64
	Median float64
	P90    float64
	Min    float64
	Max    float64

	Excellent int
	Good      int
	Fair      int
	NeedsWork int
}

// Summarize returns the current Summary.
func (s *Statistics) Summarize() Summary {
	if s.Count == 0 {
		return Summary{}
	}
	low, high := s.ConfidenceInterval95()
	return Summary{
		Count:  s.Count,
		Mean:   stat.Mean(s.Values, nil),
		StdDev: s.StdDev(),
		Low95:  low,
		High95: high,
		Median: s.Median(),
		P90:    s.Percentile(0.9),
		Min:    floats.Min(s.Values),
		Max:    floats.Max(s.Values),

		Excellent: s.Excellent,
		Good:      s.Good,
		Fair:      s.Fair,
		NeedsWork: s.NeedsWork,
	}
}
