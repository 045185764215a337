package analysis

import "github.com/lox/drawstats/internal/lottery"

// Ratio splits every number instance of a zone into two categories.
// For OddEven the first category is odd, for BigSmall it is big.
type Ratio struct {
	FirstCount  int
	SecondCount int
	First       float64
	Second      float64
}

func (r Ratio) OddPercentage() float64   { return r.First }
func (r Ratio) EvenPercentage() float64  { return r.Second }
func (r Ratio) BigPercentage() float64   { return r.First }
func (r Ratio) SmallPercentage() float64 { return r.Second }

// OddEven counts odd and even number instances across draws.
func OddEven(draws []lottery.Draw, zone lottery.Zone) Ratio {
	return split(draws, zone, func(n int) bool { return n%2 == 1 })
}

// BigSmall counts number instances above and at-or-below the zone threshold.
func BigSmall(draws []lottery.Draw, zone lottery.Zone) Ratio {
	threshold := zone.BigThreshold()
	return split(draws, zone, func(n int) bool { return n > threshold })
}

func split(draws []lottery.Draw, zone lottery.Zone, first func(int) bool) Ratio {
	var r Ratio
	for _, d := range draws {
		for _, n := range d.Numbers(zone) {
			if first(n) {
				r.FirstCount++
			} else {
				r.SecondCount++
			}
		}
	}

	total := r.FirstCount + r.SecondCount
	if total == 0 {
		r.First, r.Second = 0.5, 0.5
		return r
	}
	r.First = float64(r.FirstCount) / float64(total)
	r.Second = float64(r.SecondCount) / float64(total)
	return r
}
