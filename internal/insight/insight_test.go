package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawstats/internal/strategy"
)

func TestStatsOf(t *testing.T) {
	st := StatsOf([]int{3, 8, 15, 22, 31})
	assert.Equal(t, Stats{Sum: 79, Span: 28, Odd: 3, Size: 5}, st)
	assert.Equal(t, Stats{}, StatsOf(nil))
}

func TestForIteration(t *testing.T) {
	st := Stats{Sum: 79, Span: 28, Odd: 3, Size: 5}

	first := ForIteration(1, strategy.Integrated, st)
	require.Len(t, first, 3)
	assert.Contains(t, first[0], "Iteration 1")
	assert.Contains(t, first[0], strategy.Integrated.Title())
	assert.Contains(t, first[2], "79")

	assert.Contains(t, ForIteration(2, strategy.Balanced, st)[2], "3:2")
	assert.Contains(t, ForIteration(3, strategy.Hot, st)[1], "28")

	for n := 1; n <= 8; n++ {
		lines := ForIteration(n, strategy.Trend, st)
		assert.Len(t, lines, 3)
		assert.Equal(t, lines, ForIteration(n, strategy.Trend, st))
	}
	assert.Equal(t, ForIteration(6, strategy.Cold, st)[1], ForIteration(9, strategy.Cold, st)[1])
}

func TestForStrategy(t *testing.T) {
	st := Stats{Sum: 90, Span: 20, Odd: 2, Size: 5}
	for _, s := range strategy.All {
		assert.Len(t, ForStrategy(s, st), 2, "%s", s)
	}
	assert.Contains(t, ForStrategy(strategy.Balanced, st)[0], "2:3")
	assert.Equal(t, []string{"Strategy analysis complete"}, ForStrategy(strategy.Hot, Stats{}))
}

func TestForEvaluation(t *testing.T) {
	assert.Equal(t, "Overall score 62.5, frequency 70.0, balance 55.3", ForEvaluation(62.5, 70, 55.26))
}
