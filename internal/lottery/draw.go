// Package lottery defines the draw model shared by the analysis engine.
package lottery

import "fmt"

// Zone identifies one of the two independent number spaces of a draw.
type Zone int

const (
	Front Zone = iota
	Back
)

func (z Zone) String() string {
	switch z {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}

// Max returns the largest number in the zone.
func (z Zone) Max() int {
	if z == Back {
		return 12
	}
	return 35
}

// Pick returns how many numbers a draw contains in the zone.
func (z Zone) Pick() int {
	if z == Back {
		return 2
	}
	return 5
}

// BigThreshold returns the boundary above which a number counts as "big".
func (z Zone) BigThreshold() int {
	if z == Back {
		return 6
	}
	return 18
}

// MaxSpan returns the widest possible max-min spread in the zone.
func (z Zone) MaxSpan() int {
	return z.Max() - 1
}

// Contains reports whether n is a valid number for the zone.
func (z Zone) Contains(n int) bool {
	return n >= 1 && n <= z.Max()
}

// Draw is a validated historical draw. The engine never mutates it.
type Draw struct {
	ID    string
	Date  string
	Front []int
	Back  []int
}

// Numbers returns the draw's numbers for the zone.
func (d Draw) Numbers(z Zone) []int {
	if z == Back {
		return d.Back
	}
	return d.Front
}

// RawDraw is an unvalidated import record. A nil slice means the zone is
// missing from the record or was not a list of numbers.
type RawDraw struct {
	ID    string
	Date  string
	Front []float64
	Back  []float64
	Prize string
	Sales string
}

// Window returns the newest n draws of a newest-first history.
// n <= 0 returns the whole history.
func Window(draws []Draw, n int) []Draw {
	if n <= 0 || n >= len(draws) {
		return draws
	}
	return draws[:n]
}
