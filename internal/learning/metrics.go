package learning

import (
	"math"
	rand "math/rand/v2"
)

// Trend is the direction of a metric between iterations.
type Trend int

const (
	Stable Trend = iota
	Up
	Down
)

func (t Trend) String() string {
	switch t {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "stable"
	}
}

// Metric names reported for every iteration.
const (
	MetricAccuracy   = "accuracy"
	MetricComplexity = "complexity"
	MetricEfficiency = "efficiency"
	MetricQuality    = "quality"
)

// Metric is one simulated performance indicator.
type Metric struct {
	Name   string
	Value  float64
	Change float64
	Trend  Trend
}

// metricTracker carries simulated performance metrics across iterations.
// The values are cosmetic; only accuracy and quality follow the iteration.
type metricTracker struct {
	rng     *rand.Rand
	metrics []Metric
}

func newMetricTracker(rng *rand.Rand) *metricTracker {
	return &metricTracker{rng: rng}
}

// update folds an iteration's accuracy (0..1) and score (0..100) into the
// metrics and returns a copy of the new values.
func (m *metricTracker) update(accuracy, score float64) []Metric {
	if m.metrics == nil {
		m.metrics = []Metric{
			{Name: MetricAccuracy, Value: accuracy * 100},
			{Name: MetricComplexity, Value: 15, Change: 15, Trend: Up},
			{Name: MetricEfficiency, Value: 75 + m.rng.Float64()*15},
			{Name: MetricQuality, Value: score},
		}
		return m.snapshot()
	}

	for i, metric := range m.metrics {
		next := metric.Value
		trend := Stable
		change := 0.0

		switch metric.Name {
		case MetricAccuracy:
			next = accuracy * 100
			change = next - metric.Value
			trend = trendOf(change, 0.5)
		case MetricComplexity:
			next = math.Min(100, metric.Value+8+m.rng.Float64()*4)
			change = next - metric.Value
			trend = Up
		case MetricEfficiency:
			next = math.Max(60, metric.Value-m.rng.Float64()*3)
			change = next - metric.Value
			trend = trendOf(change, 0.5)
		case MetricQuality:
			next = score
			change = next - metric.Value
			trend = trendOf(change, 1)
		}

		m.metrics[i] = Metric{Name: metric.Name, Value: round1(next), Change: round1(change), Trend: trend}
	}
	return m.snapshot()
}

func (m *metricTracker) snapshot() []Metric {
	out := make([]Metric, len(m.metrics))
	copy(out, m.metrics)
	return out
}

func trendOf(change, band float64) Trend {
	switch {
	case change > band:
		return Up
	case change < -band:
		return Down
	default:
		return Stable
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// simulatedAccuracy grows with run progress and is capped at 0.85.
func simulatedAccuracy(iteration, total int, rng *rand.Rand) float64 {
	const (
		base    = 0.3
		maxGain = 0.4
		ceiling = 0.85
	)
	progress := float64(iteration) / float64(total)
	factor := 0.8 + rng.Float64()*0.4
	return math.Min(base+maxGain*progress*factor, ceiling)
}
