package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"golinator/internal/core"
)

// Scalar runs the rule on the calling goroutine. It is the reference the
// parallel kernel is checked against.
type Scalar struct{}

// Seed populates dst according to p.
func (Scalar) Seed(dst *core.Generation, p core.SeedParams) {
	seedRows(dst, p, newNoise(p), 0, dst.N)
}

// Step computes curr from prev.
func (Scalar) Step(prev, curr *core.Generation) {
	checkPair(prev, curr)
	stepRows(prev, curr, 0, prev.N)
}

// Parallel splits the grid into row bands and runs them concurrently. Each
// band reads only prev and writes a disjoint slice of curr, and Step returns
// only once every band is done.
type Parallel struct {
	workers int
}

// NewParallel returns a kernel using up to workers goroutines. A non-positive
// count falls back to runtime.NumCPU.
func NewParallel(workers int) *Parallel {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Parallel{workers: workers}
}

// Workers reports the concurrency limit.
func (p *Parallel) Workers() int { return p.workers }

// Seed populates dst according to params, one band per worker.
func (p *Parallel) Seed(dst *core.Generation, params core.SeedParams) {
	noise := newNoise(params)
	p.run(dst.N, func(from, to int) {
		seedRows(dst, params, noise, from, to)
	})
}

// Step computes curr from prev.
func (p *Parallel) Step(prev, curr *core.Generation) {
	checkPair(prev, curr)
	p.run(prev.N, func(from, to int) {
		stepRows(prev, curr, from, to)
	})
}

func (p *Parallel) run(rows int, fn func(from, to int)) {
	var eg errgroup.Group
	eg.SetLimit(p.workers)
	for _, band := range bands(rows, p.workers) {
		eg.Go(func() error {
			fn(band[0], band[1])
			return nil
		})
	}
	// Wait is the barrier: curr is not visible to the caller before it.
	_ = eg.Wait()
}

// bands splits rows into at most n contiguous [from, to) ranges whose sizes
// differ by at most one.
func bands(rows, n int) [][2]int {
	if n > rows {
		n = rows
	}
	if n <= 0 {
		return nil
	}
	each := rows / n
	bigger := rows - each*n
	out := make([][2]int, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		size := each
		if i < bigger {
			size++
		}
		out = append(out, [2]int{start, start + size})
		start += size
	}
	return out
}
