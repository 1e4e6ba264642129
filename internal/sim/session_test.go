package sim

import (
	"errors"
	"slices"
	"testing"

	"golinator/internal/core"
	"golinator/internal/life"
)

func newBlankSession(t *testing.T, size int) *Session {
	t.Helper()
	s, err := NewSession(size, life.NewParallel(4), core.SeedParams{Seed: 1, Density: 0})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func plant(s *Session, cells ...[2]int) {
	for _, c := range cells {
		s.Store.Current().Set(c[0], c[1], true)
	}
	s.Store.Publish()
}

func TestNewSessionRejectsBadSize(t *testing.T) {
	if _, err := NewSession(0, life.Scalar{}, core.SeedParams{Density: 50}); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

func TestAdvanceBlinkerPeriodTwo(t *testing.T) {
	s := newBlankSession(t, 9)
	plant(s, [2]int{4, 3}, [2]int{4, 4}, [2]int{4, 5})
	start := slices.Clone(s.Store.Current().Cells())

	s.Stepper.Advance()
	cur := s.Store.Current()
	for _, c := range [][2]int{{3, 4}, {4, 4}, {5, 4}} {
		if !cur.Alive(c[0], c[1]) {
			t.Fatalf("after one step (%d,%d) should be alive", c[0], c[1])
		}
	}
	if cur.Population() != 3 {
		t.Fatalf("population = %d, want 3", cur.Population())
	}
	if !slices.Equal(cur.Cells(), s.Store.Previous().Cells()) {
		t.Fatal("Advance must publish current into previous")
	}

	s.Stepper.Advance()
	if !slices.Equal(start, s.Store.Current().Cells()) {
		t.Fatal("blinker did not return after two steps")
	}
	if s.Stepper.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", s.Stepper.Generation())
	}
}

func TestAdvanceBlockFixedPoint(t *testing.T) {
	s := newBlankSession(t, 8)
	plant(s, [2]int{3, 3}, [2]int{3, 4}, [2]int{4, 3}, [2]int{4, 4})
	start := slices.Clone(s.Store.Current().Cells())
	for i := 0; i < 5; i++ {
		s.Stepper.Advance()
		if !slices.Equal(start, s.Store.Current().Cells()) {
			t.Fatalf("block changed at step %d", i+1)
		}
	}
}

func TestAdvancePanicsOnMismatchedBuffers(t *testing.T) {
	s := newBlankSession(t, 4)
	*s.Store.Previous() = *core.NewGeneration(3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	s.Stepper.Advance()
}

func TestTickRespectsPause(t *testing.T) {
	s := newBlankSession(t, 6)
	plant(s, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	start := slices.Clone(s.Store.Current().Cells())

	s.TogglePause()
	if s.Tick() {
		t.Fatal("Tick ran while paused")
	}
	if !slices.Equal(start, s.Store.Current().Cells()) {
		t.Fatal("paused session changed the grid")
	}

	s.TogglePause()
	if !s.Tick() {
		t.Fatal("Tick did not run after resuming")
	}
	if s.Stepper.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", s.Stepper.Generation())
	}
}

func TestReseedRestoresInitialGrid(t *testing.T) {
	s, err := NewSession(32, life.Scalar{}, core.SeedParams{Seed: 77, Density: 40})
	if err != nil {
		t.Fatal(err)
	}
	start := slices.Clone(s.Store.Current().Cells())
	s.Tick()
	s.Tick()
	if err := s.Reseed(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(start, s.Store.Current().Cells()) {
		t.Fatal("Reseed should reproduce the initial grid")
	}
	if s.Stepper.Generation() != 0 {
		t.Fatalf("generation = %d after reseed", s.Stepper.Generation())
	}
}
