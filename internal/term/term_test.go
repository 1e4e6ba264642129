package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"golinator/internal/core"
	"golinator/internal/life"
	"golinator/internal/sim"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func newSession(t *testing.T, size, density int) *sim.Session {
	t.Helper()
	sess, err := sim.NewSession(size, life.Scalar{}, core.SeedParams{Seed: 1, Density: density})
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func runeAt(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := s.GetContents()
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func TestCollectorKeysAreOneShot(t *testing.T) {
	var c collector
	c.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	c.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	s := c.take(10, 10)
	if !s.Left || !s.Space || s.Width != 10 {
		t.Fatalf("snapshot = %+v", s)
	}
	if s := c.take(10, 10); s.Left || s.Space {
		t.Fatalf("keys should clear after take: %+v", s)
	}
}

func TestCollectorMouse(t *testing.T) {
	var c collector
	c.handle(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	s := c.take(10, 10)
	if !s.MouseLeft || s.CursorX != 3.5 || s.CursorY != 4.5 {
		t.Fatalf("snapshot = %+v", s)
	}
	if s := c.take(10, 10); !s.MouseLeft {
		t.Fatal("button should stay held until released")
	}
	c.handle(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	if s := c.take(10, 10); s.MouseLeft {
		t.Fatal("release should clear the button")
	}

	c.handle(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if s := c.take(10, 10); s.WheelY != 1 {
		t.Fatalf("wheel = %v, want 1", s.WheelY)
	}
}

func TestCollectorQuitAndReseed(t *testing.T) {
	var c collector
	c.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if !c.reseed || c.quit {
		t.Fatal("r should request a reseed")
	}
	c.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !c.quit {
		t.Fatal("escape should quit")
	}
}

func TestFrameDrawsBottomUp(t *testing.T) {
	screen := newScreen(t, 4, 5)
	sess := newSession(t, 4, 0)
	sess.Paused = true
	sess.Store.Current().Set(0, 0, true)
	sess.Store.Current().Set(3, 2, true)
	sess.Store.Publish()

	f := New(screen, sess, 60)
	if err := f.Frame(); err != nil {
		t.Fatal(err)
	}
	if r := runeAt(t, screen, 0, 3); r != aliveRune {
		t.Fatalf("grid (0,0) should be drawn bottom-left, got %q", r)
	}
	if r := runeAt(t, screen, 2, 0); r != aliveRune {
		t.Fatalf("grid (3,2) should be drawn on the top row, got %q", r)
	}
	if r := runeAt(t, screen, 1, 1); r != ' ' {
		t.Fatalf("dead cell drawn as %q", r)
	}
	if r := runeAt(t, screen, 0, 4); r != 'g' {
		t.Fatalf("status line should start the bottom row, got %q", r)
	}
}

func TestFrameAppliesInput(t *testing.T) {
	screen := newScreen(t, 4, 5)
	sess := newSession(t, 4, 100)
	sess.Paused = true
	f := New(screen, sess, 60)

	f.events.handle(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	if err := f.Frame(); err != nil {
		t.Fatal(err)
	}
	if sess.Store.Current().Alive(3, 1) {
		t.Fatal("click on the top row should kill grid cell (3,1)")
	}
	if sess.Store.Current().Population() != 15 {
		t.Fatalf("population = %d, want 15", sess.Store.Current().Population())
	}

	f.events.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if err := f.Frame(); err != nil {
		t.Fatal(err)
	}
	if sess.Paused {
		t.Fatal("space should resume the session")
	}
}

func TestFrameAppliesEveryWheelNotch(t *testing.T) {
	screen := newScreen(t, 4, 5)
	sess := newSession(t, 64, 0)
	sess.Paused = true
	f := New(screen, sess, 60)

	for range 3 {
		f.events.handle(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	}
	if err := f.Frame(); err != nil {
		t.Fatal(err)
	}
	if z := sess.View.Zoom(); z != 8 {
		t.Fatalf("zoom after three notches = %v, want 8", z)
	}
}
