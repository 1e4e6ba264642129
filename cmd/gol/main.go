//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"golinator/internal/app"
	"golinator/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(os.Args[0], os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	kernel := cfg.Kernel()
	sess, err := sim.NewSession(cfg.Size, kernel, cfg.SeedParams())
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	log.Printf("grid %dx%d, density %d%%, seed %d, %s pattern, %d workers",
		cfg.Size, cfg.Size, cfg.Density, cfg.Seed, cfg.Pattern, kernel.Workers())

	game := app.New(sess)

	ebiten.SetWindowTitle(app.WindowTitle)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.WindowSize, app.WindowSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
