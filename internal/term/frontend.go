// Package term runs a session in a terminal through tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"golinator/internal/core"
	"golinator/internal/input"
	"golinator/internal/sim"
	"golinator/internal/ui"
)

// frameInterval is how often input is applied and the screen redrawn.
const frameInterval = time.Second / 30

// Frontend drives a session from a tcell screen. The bottom row is a status
// line; the rest is the viewport.
type Frontend struct {
	screen tcell.Screen
	sess   *sim.Session
	ctrl   *input.Controller
	pace   *core.FixedStep
	events collector
	cpu    *ui.CPUSampler
}

// New returns a front-end that advances the simulation at tps generations per
// second regardless of the redraw rate.
func New(screen tcell.Screen, sess *sim.Session, tps int) *Frontend {
	return &Frontend{
		screen: screen,
		sess:   sess,
		ctrl:   input.NewController(),
		pace:   core.NewFixedStep(tps),
		cpu:    ui.NewCPUSampler(time.Second),
	}
}

// Run processes events and frames until ctx is done or the user quits.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				f.screen.Sync()
			}
			f.events.handle(ev)
			if f.events.quit {
				return nil
			}
		case <-ticker.C:
			if err := f.Frame(); err != nil {
				return err
			}
		}
	}
}

// Frame applies collected input, steps when due and redraws.
func (f *Frontend) Frame() error {
	if f.events.reseed {
		f.events.reseed = false
		if err := f.sess.Reseed(); err != nil {
			return err
		}
	}

	w, h := f.screen.Size()
	viewH := h - 1
	if w <= 0 || viewH <= 0 {
		return nil
	}
	f.ctrl.Update(f.sess, f.events.take(w, viewH))
	if f.pace.ShouldStep() {
		f.sess.Tick()
	}

	draw(f.screen, f.sess, w, viewH)
	status := ui.StatusOf(f.sess)
	status.TPS = float64(time.Second / f.pace.Interval())
	status.CPU = f.cpu.Percent()
	drawStatus(f.screen, status, viewH, w)
	f.screen.Show()
	return nil
}
