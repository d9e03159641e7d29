package effects

import "math/rand/v2"

// RandomSource yields uniform draws in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// pcgStream is the fixed PCG increment paired with caller seeds
const pcgStream = 0x9e3779b97f4a7c15

// NewSeededSource returns a reproducible source for simulations and tests
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// NewSource returns a randomly seeded source
func NewSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
