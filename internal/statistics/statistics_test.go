package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
	if got := stats.Summarize(); got != (Summary{}) {
		t.Errorf("Expected zero summary, got %+v", got)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected empty stats to validate, got %v", err)
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(72.5)

	if stats.Count != 1 {
		t.Errorf("Expected 1 score, got %d", stats.Count)
	}
	if stats.Mean() != 72.5 {
		t.Errorf("Expected mean of 72.5, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Good != 1 {
		t.Errorf("Expected score in the good bucket, got %+v", stats)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{85, 30, 62, 45, 50} {
		stats.Add(v)
	}

	expectedMean := (85.0 + 30 + 62 + 45 + 50) / 5
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean of %f, got %f", expectedMean, stats.Mean())
	}

	// sorted: 30, 45, 50, 62, 85
	if stats.Median() != 50 {
		t.Errorf("Expected median of 50, got %f", stats.Median())
	}

	if stats.Excellent != 1 || stats.Good != 1 || stats.Fair != 2 || stats.NeedsWork != 1 {
		t.Errorf("Unexpected rating buckets: %+v", stats)
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}

	summary := stats.Summarize()
	if summary.Count != 5 || summary.Min != 30 || summary.Max != 85 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
	if math.Abs(summary.Mean-expectedMean) > 1e-9 {
		t.Errorf("Expected summary mean %f, got %f", expectedMean, summary.Mean)
	}
	if summary.Low95 >= summary.Mean || summary.High95 <= summary.Mean {
		t.Errorf("Expected mean inside CI, got [%f, %f]", summary.Low95, summary.High95)
	}
	// 0.9 * 4 = 3.6 -> 62*0.4 + 85*0.6
	if math.Abs(summary.P90-75.8) > 1e-9 {
		t.Errorf("Expected p90 of 75.8, got %f", summary.P90)
	}
	if summary.Excellent != 1 || summary.Good != 1 || summary.Fair != 2 || summary.NeedsWork != 1 {
		t.Errorf("Expected rating buckets in summary, got %+v", summary)
	}
}

func TestStatistics_BucketsFollowRatings(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{80, 79.99, 60, 40, 39.99} {
		stats.Add(v)
	}
	if stats.Excellent != 1 || stats.Good != 2 || stats.Fair != 1 || stats.NeedsWork != 1 {
		t.Errorf("Unexpected rating buckets at the thresholds: %+v", stats)
	}
}

func TestStatistics_EvenMedian(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{10, 40, 20, 30} {
		stats.Add(v)
	}
	if stats.Median() != 25 {
		t.Errorf("Expected median of 25, got %f", stats.Median())
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := &Statistics{}
	for i := 1; i <= 5; i++ {
		stats.Add(float64(i))
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
	}

	for _, tt := range tests {
		if got := stats.Percentile(tt.percentile); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Percentile(%v) = %f, expected %f", tt.percentile, got, tt.expected)
		}
	}
}

func TestStatistics_ValidateDetectsDrift(t *testing.T) {
	stats := &Statistics{}
	stats.Add(50)
	stats.Sum = 10

	if err := stats.Validate(); err == nil {
		t.Error("Expected sum mismatch to be reported")
	}
}
