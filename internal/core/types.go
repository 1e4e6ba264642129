package core

// SeedParams controls how a generation is populated at startup.
type SeedParams struct {
	Seed int64
	// Density is the percent chance, 0-100, that a cell starts alive.
	Density int
	Pattern Pattern
}

// Pattern selects the seeding strategy.
type Pattern string

const (
	// PatternRandom flips an independent biased coin per cell.
	PatternRandom Pattern = "random"
	// PatternNoise thresholds a smooth noise field, producing clustered blobs.
	PatternNoise Pattern = "noise"
)

// Seeder fills a generation with an initial population.
type Seeder interface {
	Seed(dst *Generation, p SeedParams)
}

// Kernel is the compute capability the stepper drives. Step reads only prev
// and writes only curr; it must not return before every cell of curr has been
// written. It panics when prev and curr differ in size.
type Kernel interface {
	Seeder
	Step(prev, curr *Generation)
}
