package quizgen

import "math/rand/v2"

// Rand is the randomness source used for word picks and shuffles.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

// NewRand returns a deterministic Rand seeded with seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newEntropyRand returns a Rand seeded from the runtime's entropy source.
func newEntropyRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// shuffle performs an unbiased Fisher–Yates shuffle of s in place.
func shuffle[T any](r Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
