// Package insight renders templated commentary for generated combinations.
// The text depends only on its inputs.
package insight

import (
	"fmt"

	"github.com/lox/drawstats/internal/analysis"
	"github.com/lox/drawstats/internal/strategy"
)

// Stats are the combination figures the templates quote.
type Stats struct {
	Sum  int
	Span int
	Odd  int
	Size int
}

// StatsOf computes Stats for a front-zone combination.
func StatsOf(front []int) Stats {
	st := Stats{Span: analysis.SpanOf(front), Size: len(front)}
	for _, n := range front {
		st.Sum += n
		if n%2 == 1 {
			st.Odd++
		}
	}
	return st
}

// InvalidCombination is the evaluation detail of an unusable candidate.
const InvalidCombination = "Invalid number combination"

// ForEvaluation summarises an evaluation's overall, frequency and balance
// scores in one line.
func ForEvaluation(score, frequency, balance float64) string {
	return fmt.Sprintf("Overall score %.1f, frequency %.1f, balance %.1f", score, frequency, balance)
}

// ForIteration returns the insight lines for the n-th (1-based) learning
// iteration.
func ForIteration(n int, s strategy.Strategy, st Stats) []string {
	switch n {
	case 1:
		return []string{
			fmt.Sprintf("Iteration %d: starting the %s strategy for an initial pass", n, s.Title()),
			"Scanning the history for number distribution patterns",
			fmt.Sprintf("Current combination sums to %d", st.Sum),
		}
	case 2:
		return []string{
			fmt.Sprintf("Iteration %d: examining the frequency distribution in depth", n),
			"Separating hot and cold numbers",
			fmt.Sprintf("Current combination odd:even ratio is %d:%d", st.Odd, st.Size-st.Odd),
		}
	case 3:
		return []string{
			fmt.Sprintf("Iteration %d: relating numbers to each other and to the trend", n),
			fmt.Sprintf("Combination span is %d, within the historical range", st.Span),
			"Looking for periodic recurrence",
		}
	case 4:
		return []string{
			fmt.Sprintf("Iteration %d: tuning model parameters", n),
			"Combining the analysis dimensions into one score",
			"Balancing odd/even, big/small and sum range together",
		}
	case 5:
		return []string{
			fmt.Sprintf("Iteration %d: adapting and cross-checking the model", n),
			"Adjusting weights against historical results",
			"Model stability keeps improving",
		}
	default:
		return []string{
			fmt.Sprintf("Iteration %d: continuing to refine the model", n),
			"Blending long-run patterns with the latest trend",
			"The multi-dimensional model is now well established",
		}
	}
}

// ForStrategy returns the insight lines describing a single recommendation.
func ForStrategy(s strategy.Strategy, st Stats) []string {
	if st.Size == 0 {
		return []string{"Strategy analysis complete"}
	}

	switch s {
	case strategy.Hot:
		return []string{
			"Picked from hot numbers with a high historical frequency",
			fmt.Sprintf("Combination sums to %d, close to the historical average", st.Sum),
		}
	case strategy.Cold:
		return []string{
			"Focused on cold numbers that are due for a rebound",
			fmt.Sprintf("Span of %d keeps the numbers moderately spread", st.Span),
		}
	case strategy.Balanced:
		return []string{
			fmt.Sprintf("Odd:even ratio %d:%d aims for an even mix", st.Odd, st.Size-st.Odd),
			"Big and small numbers are weighed to avoid extreme combinations",
		}
	case strategy.Trend:
		return []string{
			fmt.Sprintf("Based on the trend over the latest %d draws", analysis.RecentWindow),
			"Leans on short-term recurrence",
		}
	default:
		return []string{
			"Blends frequency, balance and trend signals",
			"Weights the dimensions to optimise the overall score",
		}
	}
}
