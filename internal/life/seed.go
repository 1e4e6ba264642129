package life

import (
	"github.com/aquilax/go-perlin"

	"golinator/internal/core"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	// noiseScale is the number of cells per noise unit.
	noiseScale = 24.0
)

// newNoise returns the noise field for PatternNoise and nil otherwise.
func newNoise(p core.SeedParams) *perlin.Perlin {
	if p.Pattern != core.PatternNoise {
		return nil
	}
	return perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, p.Seed)
}

// seedRows fills rows [from, to). Random rows draw from their own stream so
// any split of rows across workers yields the same grid.
func seedRows(dst *core.Generation, p core.SeedParams, noise *perlin.Perlin, from, to int) {
	n := dst.N
	cells := dst.Cells()
	for row := from; row < to; row++ {
		line := cells[row*n : (row+1)*n]
		if noise == nil {
			core.NewStreamRNG(p.Seed, uint64(row)).FillDensity(line, p.Density)
			continue
		}
		for col := range line {
			line[col] = 0
			if noiseAlive(noise, row, col, p.Density) {
				line[col] = 1
			}
		}
	}
}

// noiseAlive maps the noise sample into [0, 1) and compares it against the
// density so that 0 and 100 still mean all-dead and all-alive.
func noiseAlive(noise *perlin.Perlin, row, col, density int) bool {
	if density <= 0 {
		return false
	}
	if density >= 100 {
		return true
	}
	v := noise.Noise2D(float64(col)/noiseScale, float64(row)/noiseScale)
	v = (v + 1) / 2
	if v < 0 {
		v = 0
	}
	return v*100 < float64(density)
}
