package term

import (
	"github.com/gdamore/tcell/v2"

	"golinator/internal/input"
)

// collector folds tcell events into the per-frame input snapshot. Terminals
// only report key presses, never releases, so a key counts as held for the
// frame its event arrived in.
type collector struct {
	snap   input.Snapshot
	quit   bool
	reseed bool
}

// handle records one event.
func (c *collector) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	}
}

func (c *collector) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		c.snap.Left = true
	case tcell.KeyRight:
		c.snap.Right = true
	case tcell.KeyUp:
		c.snap.Up = true
	case tcell.KeyDown:
		c.snap.Down = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			c.snap.Space = true
		case 'q', 'Q':
			c.quit = true
		case 'r', 'R':
			c.reseed = true
		case '+':
			c.snap.WheelY++
		case '-':
			c.snap.WheelY--
		}
	}
}

func (c *collector) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if buttons&tcell.WheelUp != 0 {
		c.snap.WheelY++
	}
	if buttons&tcell.WheelDown != 0 {
		c.snap.WheelY--
	}
	x, y := ev.Position()
	c.snap.CursorX = float64(x) + 0.5
	c.snap.CursorY = float64(y) + 0.5
	c.snap.MouseLeft = buttons&tcell.Button1 != 0
}

// take returns the snapshot for a w×h viewport and clears the one-shot keys.
// The mouse button state carries over until a release event arrives.
func (c *collector) take(w, h int) input.Snapshot {
	s := c.snap
	s.Width = float64(w)
	s.Height = float64(h)
	c.snap = input.Snapshot{
		MouseLeft: c.snap.MouseLeft,
		CursorX:   c.snap.CursorX,
		CursorY:   c.snap.CursorY,
	}
	return s
}
