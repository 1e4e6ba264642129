package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"golinator/internal/app"
	"golinator/internal/sim"
	"golinator/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 256
	cfg.TPS = 15
	if err := cfg.Parse(os.Args[0], os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	sess, err := sim.NewSession(cfg.Size, cfg.Kernel(), cfg.SeedParams())
	if err != nil {
		log.Fatalf("create session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := term.New(screen, sess, cfg.TPS).Run(ctx)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
