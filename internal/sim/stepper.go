package sim

import "golinator/internal/core"

// Stepper advances a store one generation at a time through a kernel.
type Stepper struct {
	store      *core.Store
	kernel     core.Kernel
	generation uint64
}

// NewStepper binds a kernel to the store it advances.
func NewStepper(store *core.Store, kernel core.Kernel) *Stepper {
	return &Stepper{store: store, kernel: kernel}
}

// Generation returns the number of completed steps.
func (s *Stepper) Generation() uint64 { return s.generation }

// Kernel returns the compute kernel in use.
func (s *Stepper) Kernel() core.Kernel { return s.kernel }

// Advance computes the next generation from previous into current and then
// publishes current as the new previous. The kernel returns only after every
// cell is written, so Publish never copies a partial generation. Both buffers
// come from the same store and always share a size.
func (s *Stepper) Advance() {
	s.kernel.Step(s.store.Previous(), s.store.Current())
	s.store.Publish()
	s.generation++
}

// resetGeneration restarts the counter after a reseed.
func (s *Stepper) resetGeneration() { s.generation = 0 }
