package lottery

import "math"

// Validate returns the records that form well-formed draws, in input order.
// Records with a missing zone, a wrong count, out-of-range, fractional or
// repeated numbers are dropped.
func Validate(raw []RawDraw) []Draw {
	draws := make([]Draw, 0, len(raw))
	for _, r := range raw {
		front, ok := zoneNumbers(r.Front, Front)
		if !ok {
			continue
		}
		back, ok := zoneNumbers(r.Back, Back)
		if !ok {
			continue
		}
		draws = append(draws, Draw{ID: r.ID, Date: r.Date, Front: front, Back: back})
	}
	return draws
}

func zoneNumbers(values []float64, z Zone) ([]int, bool) {
	if values == nil || len(values) != z.Pick() {
		return nil, false
	}

	seen := make(map[int]bool, len(values))
	numbers := make([]int, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || v != math.Trunc(v) {
			return nil, false
		}
		n := int(v)
		if !z.Contains(n) || seen[n] {
			return nil, false
		}
		seen[n] = true
		numbers = append(numbers, n)
	}
	return numbers, true
}

// IsValid reports whether d satisfies the same rules Validate enforces.
func IsValid(d Draw) bool {
	return validZone(d.Front, Front) && validZone(d.Back, Back)
}

func validZone(numbers []int, z Zone) bool {
	if len(numbers) != z.Pick() {
		return false
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if !z.Contains(n) || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}
