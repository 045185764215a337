// Package strategy turns window statistics into candidate number sets.
package strategy

import (
	"fmt"
	"strings"
)

// Strategy names a rule for building a candidate pool.
type Strategy int

const (
	Integrated Strategy = iota
	Balanced
	Hot
	Cold
	Trend
)

// All lists the strategies in the default learning rotation order.
var All = []Strategy{Integrated, Balanced, Hot, Cold, Trend}

var names = map[Strategy]string{
	Integrated: "integrated",
	Balanced:   "balanced",
	Hot:        "hot",
	Cold:       "cold",
	Trend:      "trend",
}

var titles = map[Strategy]string{
	Integrated: "Integrated analysis",
	Balanced:   "Balanced mix",
	Hot:        "Hot tracking",
	Cold:       "Cold rebound",
	Trend:      "Recent trend",
}

func (s Strategy) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Title returns a human-readable strategy name.
func (s Strategy) Title() string {
	if t, ok := titles[s]; ok {
		return t
	}
	return s.String()
}

// Parse resolves a strategy name. Unknown names resolve to Integrated
// along with an error.
func Parse(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range names {
		if n == name {
			return s, nil
		}
	}
	return Integrated, fmt.Errorf("unknown strategy %q", name)
}

// ParseAll resolves a list of strategy names.
func ParseAll(list []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(list))
	for _, name := range list {
		s, err := Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
