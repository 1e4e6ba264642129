package app

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"golinator/internal/core"
	"golinator/internal/life"
)

const (
	// WindowSize is the fixed side length of the viewport in pixels.
	WindowSize = 1024
	// WindowTitle is shown in the window's title bar.
	WindowTitle = "GameOfLife_inator"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size    int
	Density int
	Seed    int64
	TPS     int
	Workers int
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:    1024,
		Density: 50,
		Seed:    time.Now().UnixNano(),
		TPS:     60,
		Workers: runtime.NumCPU(),
		Pattern: string(core.PatternRandom),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "s", c.Size, "grid side length (shorthand)")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.IntVar(&c.Density, "d", c.Density, "percent chance a cell starts alive (shorthand)")
	fs.IntVar(&c.Density, "density", c.Density, "percent chance a cell starts alive, 0-100")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (default: derived from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: random or noise")
}

// Parse fills c from command-line tokens. Unknown tokens are ignored. When
// -h or -help is present the usage is written to out and flag.ErrHelp is
// returned.
func (c *Config) Parse(name string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	c.Bind(fs)

	known, help := filterArgs(fs, args)
	if help {
		fmt.Fprintf(out, "Usage: %s [flags]\n", name)
		fs.PrintDefaults()
		return flag.ErrHelp
	}
	fs.SetOutput(io.Discard)
	if err := fs.Parse(known); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return c.Validate()
}

// Validate checks ranges the flag parser cannot.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size %d: %w", c.Size, core.ErrInvalidSize)
	}
	if c.Density < 0 || c.Density > 100 {
		return fmt.Errorf("density %d: %w", c.Density, core.ErrInvalidDensity)
	}
	switch core.Pattern(c.Pattern) {
	case core.PatternRandom, core.PatternNoise:
	default:
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	return nil
}

// SeedParams returns the seeding parameters for the store.
func (c *Config) SeedParams() core.SeedParams {
	return core.SeedParams{Seed: c.Seed, Density: c.Density, Pattern: core.Pattern(c.Pattern)}
}

// Kernel returns the compute kernel the stepper should drive.
func (c *Config) Kernel() *life.Parallel {
	return life.NewParallel(c.Workers)
}

type boolFlag interface {
	IsBoolFlag() bool
}

// filterArgs keeps only the tokens that belong to flags registered on fs,
// together with their values, and reports whether help was requested.
// Help wins even where the token sits in a value position, as in "-s -help".
func filterArgs(fs *flag.FlagSet, args []string) (known []string, help bool) {
	for _, tok := range args {
		if name, ok := flagName(tok); ok && (name == "h" || name == "help") {
			return nil, true
		}
	}
	for i := 0; i < len(args); i++ {
		tok := args[i]
		name, ok := flagName(tok)
		if !ok {
			continue
		}
		hasValue := strings.Contains(tok, "=")
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if bf, ok := f.Value.(boolFlag); ok && bf.IsBoolFlag() {
			known = append(known, tok)
			continue
		}
		if hasValue {
			known = append(known, tok)
			continue
		}
		if i+1 >= len(args) {
			continue
		}
		known = append(known, tok, args[i+1])
		i++
	}
	return known, help
}

// flagName returns the name part of a flag token, without dashes or value.
func flagName(tok string) (string, bool) {
	if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
		return "", false
	}
	name, _, _ := strings.Cut(strings.TrimLeft(tok, "-"), "=")
	return name, true
}
