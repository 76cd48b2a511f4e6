package stats

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// deriveSeed mixes a base seed and a stream id into a new seed with a
// SplitMix64 finalizer, so neighbouring trial ids get unrelated streams.
// Complexity: O(1).
func deriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG returns the deterministic RNG of trial t.
// math/rand.Rand is not goroutine-safe; each trial gets its own.
func trialRNG(base int64, t int) *rand.Rand {
	if base == 0 {
		base = defaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(base, uint64(t))))
}

// permutation returns 0..n-1 shuffled in place with Fisher–Yates.
// Complexity: O(n) time and memory.
func permutation(n int, r *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
