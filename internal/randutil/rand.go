package randutil

import (
	rand "math/rand/v2"
	"slices"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every generator in the engine is built here so a seed fully replays a run.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns an independent generator seeded from parent, for handing
// to a goroutine that must not share parent.
func Derive(parent *rand.Rand) *rand.Rand {
	return New(parent.Int64())
}

// Sample picks k distinct values from pool without replacement and returns
// them sorted ascending. pool is not modified. k is clamped to len(pool).
func Sample(rng *rand.Rand, pool []int, k int) []int {
	k = max(0, min(k, len(pool)))
	shuffled := slices.Clone(pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	picked := shuffled[:k]
	slices.Sort(picked)
	return picked
}

// SampleRange picks k distinct values uniformly from [1, n], sorted ascending.
func SampleRange(rng *rand.Rand, k, n int) []int {
	if n <= 0 {
		return []int{}
	}
	k = max(0, min(k, n))
	perm := rng.Perm(n)[:k]
	out := make([]int, k)
	for i, p := range perm {
		out[i] = p + 1
	}
	slices.Sort(out)
	return out
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
