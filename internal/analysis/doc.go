// Package analysis computes frequency, ratio and distribution statistics
// over a newest-first window of validated draws.
//
// Every function is pure: it only reads its inputs and returns neutral
// defaults instead of failing on empty history.
package analysis

// RecentWindow is the number of newest draws the trend statistics look at.
const RecentWindow = 10

const (
	hotFactor  = 1.2
	coldFactor = 0.8
)
