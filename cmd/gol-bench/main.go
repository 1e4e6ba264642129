package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"golinator/internal/core"
	"golinator/internal/life"
	"golinator/internal/sim"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid worker count %q", part)
		}
		*l = append(*l, n)
	}
	return nil
}

type runResult struct {
	name    string
	elapsed time.Duration
	cells   []uint8
	alive   int
}

func main() {
	size := flag.Int("size", 1024, "grid side length")
	gens := flag.Int("gens", 200, "generations to simulate per kernel")
	density := flag.Int("density", 50, "percent chance a cell starts alive")
	seed := flag.Int64("seed", 1337, "seed shared by every run")
	var workers intList
	flag.Var(&workers, "workers", "comma-separated worker counts for the parallel kernel (repeatable)")
	flag.Parse()
	if len(workers) == 0 {
		workers = intList{runtime.NumCPU()}
	}

	printHost()

	params := core.SeedParams{Seed: *seed, Density: *density, Pattern: core.PatternRandom}
	fmt.Printf("grid %dx%d, %d generations, density %d%%, seed %d\n", *size, *size, *gens, *density, *seed)

	baseline, err := run("scalar", life.Scalar{}, *size, *gens, params)
	if err != nil {
		log.Fatal(err)
	}
	report(baseline, baseline)

	for _, w := range workers {
		kernel := life.NewParallel(w)
		res, err := run(fmt.Sprintf("parallel/%d", kernel.Workers()), kernel, *size, *gens, params)
		if err != nil {
			log.Fatal(err)
		}
		if !slices.Equal(res.cells, baseline.cells) {
			log.Fatalf("%s diverged from the scalar kernel", res.name)
		}
		report(res, baseline)
	}
}

func printHost() {
	logical, err := cpu.Counts(true)
	if err != nil {
		logical = runtime.NumCPU()
	}
	model := "unknown cpu"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	}
	fmt.Printf("host: %s, %d logical cores, GOMAXPROCS %d\n", model, logical, runtime.GOMAXPROCS(0))
}

func run(name string, kernel core.Kernel, size, gens int, params core.SeedParams) (runResult, error) {
	sess, err := sim.NewSession(size, kernel, params)
	if err != nil {
		return runResult{}, fmt.Errorf("%s: %w", name, err)
	}
	start := time.Now()
	for i := 0; i < gens; i++ {
		sess.Stepper.Advance()
	}
	elapsed := time.Since(start)
	cur := sess.Store.Current()
	return runResult{
		name:    name,
		elapsed: elapsed,
		cells:   slices.Clone(cur.Cells()),
		alive:   cur.Population(),
	}, nil
}

func report(res, baseline runResult) {
	speedup := 1.0
	if res.elapsed > 0 {
		speedup = float64(baseline.elapsed) / float64(res.elapsed)
	}
	fmt.Printf("%-14s %10s  %6.2fx  alive %d\n", res.name, res.elapsed.Round(time.Microsecond), speedup, res.alive)
}
