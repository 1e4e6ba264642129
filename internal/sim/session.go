// Package sim holds the simulation context the main loop owns and passes to
// the input controller, the stepper and the renderer.
package sim

import (
	"golinator/internal/core"
	"golinator/internal/view"
)

// Session bundles the grid, its stepper, the view and the pause flag.
type Session struct {
	Store   *core.Store
	Stepper *Stepper
	View    *view.Transform
	Paused  bool

	seed core.SeedParams
}

// NewSession allocates and seeds a grid of the given size.
func NewSession(size int, kernel core.Kernel, seed core.SeedParams) (*Session, error) {
	store, err := core.NewStore(size)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(kernel, seed); err != nil {
		return nil, err
	}
	return &Session{
		Store:   store,
		Stepper: NewStepper(store, kernel),
		View:    view.New(size),
		seed:    seed,
	}, nil
}

// Tick advances one generation unless the session is paused. It reports
// whether a step ran.
func (s *Session) Tick() bool {
	if s.Paused {
		return false
	}
	s.Stepper.Advance()
	return true
}

// TogglePause flips the pause flag.
func (s *Session) TogglePause() { s.Paused = !s.Paused }

// Reseed re-initialises the grid with the configured seed parameters and
// restarts the generation counter.
func (s *Session) Reseed() error {
	if err := s.Store.Initialize(s.Stepper.Kernel(), s.seed); err != nil {
		return err
	}
	s.Stepper.resetGeneration()
	return nil
}
