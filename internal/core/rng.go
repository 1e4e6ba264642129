package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewStreamRNG creates one of many independent deterministic streams sharing
// a seed. Seeders use one stream per row so the result does not depend on how
// rows are spread across workers.
func NewStreamRNG(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// Chance reports true with the given percent probability. 0 never fires and
// 100 always does.
func (r *RNG) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.r.IntN(100) < percent
}

// FillDensity fills buf with 0/1 values where each cell is alive with the
// given percent probability.
func (r *RNG) FillDensity(buf []uint8, percent int) {
	for i := range buf {
		buf[i] = 0
		if r.Chance(percent) {
			buf[i] = 1
		}
	}
}
