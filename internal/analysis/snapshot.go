package analysis

import "github.com/lox/drawstats/internal/lottery"

// Snapshot bundles every statistic of a draw window, computed once.
type Snapshot struct {
	Draws          int
	FrontFrequency []NumberFrequency
	BackFrequency  []NumberFrequency
	FrontOddEven   Ratio
	BackOddEven    Ratio
	FrontBigSmall  Ratio
	BackBigSmall   Ratio
	Sum            Distribution
	Span           Distribution
}

// Analyze computes a Snapshot over draws.
func Analyze(draws []lottery.Draw) Snapshot {
	return Snapshot{
		Draws:          len(draws),
		FrontFrequency: Frequency(draws, lottery.Front),
		BackFrequency:  Frequency(draws, lottery.Back),
		FrontOddEven:   OddEven(draws, lottery.Front),
		BackOddEven:    OddEven(draws, lottery.Back),
		FrontBigSmall:  BigSmall(draws, lottery.Front),
		BackBigSmall:   BigSmall(draws, lottery.Back),
		Sum:            Sum(draws),
		Span:           Span(draws),
	}
}

// Frequency returns the zone's frequency table.
func (s Snapshot) Frequency(zone lottery.Zone) []NumberFrequency {
	if zone == lottery.Back {
		return s.BackFrequency
	}
	return s.FrontFrequency
}

// Recent returns the newest RecentWindow draws.
func Recent(draws []lottery.Draw) []lottery.Draw {
	return lottery.Window(draws, RecentWindow)
}
