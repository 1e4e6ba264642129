// Package input turns raw per-frame input state into discrete commands and
// applies them to a simulation session.
package input

import (
	"math"

	"golinator/internal/sim"
	"golinator/internal/view"
)

// Snapshot is the raw input state a front-end samples once per frame.
type Snapshot struct {
	Left, Right, Up, Down bool
	Space                 bool

	// WheelY is positive when scrolling up.
	WheelY float64

	MouseLeft bool

	// CursorX and CursorY are viewport coordinates with y measured from the
	// top, as windowing systems report them.
	CursorX, CursorY float64
	Width, Height    float64
}

// latch records which tracked key last fired.
type latch uint8

const (
	latchIdle latch = iota
	latchLeft
	latchRight
	latchUp
	latchDown
	latchPause
)

// Controller edge-triggers key commands: a held key fires once, and nothing
// fires again until every tracked key has been released.
type Controller struct {
	latch     latch
	mouseHeld bool
	lastCell  [2]int
}

// NewController returns an idle controller.
func NewController() *Controller { return &Controller{} }

// Held reports whether the left mouse button was down on the last poll.
func (c *Controller) Held() bool { return c.mouseHeld }

// Poll converts one frame of input into commands. v is read to locate the
// cell under the cursor and is not modified.
func (c *Controller) Poll(s Snapshot, v *view.Transform) []Command {
	var cmds []Command
	if cmd, ok := c.pollKeys(s); ok {
		cmds = append(cmds, cmd)
	}
	if s.WheelY != 0 {
		kind := ZoomIn
		if s.WheelY < 0 {
			kind = ZoomOut
		}
		// One command per whole notch; a fractional scroll still counts once.
		n := max(int(math.Abs(s.WheelY)), 1)
		for range n {
			cmds = append(cmds, Command{Kind: kind})
		}
	}
	if cmd, ok := c.pollMouse(s, v); ok {
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (c *Controller) pollKeys(s Snapshot) (Command, bool) {
	var (
		next latch
		kind Kind
	)
	switch {
	case s.Left:
		next, kind = latchLeft, PanLeft
	case s.Right:
		next, kind = latchRight, PanRight
	case s.Up:
		next, kind = latchUp, PanUp
	case s.Down:
		next, kind = latchDown, PanDown
	case s.Space:
		next, kind = latchPause, TogglePause
	default:
		c.latch = latchIdle
		return Command{}, false
	}
	if c.latch != latchIdle {
		return Command{}, false
	}
	c.latch = next
	return Command{Kind: kind}, true
}

// pollMouse fires on the press and again whenever a held button drags into
// a different cell.
func (c *Controller) pollMouse(s Snapshot, v *view.Transform) (Command, bool) {
	if !s.MouseLeft {
		c.mouseHeld = false
		return Command{}, false
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Command{}, false
	}
	gx, gy := v.ScreenToGrid(s.CursorX, s.Height-s.CursorY, s.Width, s.Height)
	cell := [2]int{int(math.Floor(gy)), int(math.Floor(gx))}
	if c.mouseHeld && cell == c.lastCell {
		return Command{}, false
	}
	c.mouseHeld = true
	c.lastCell = cell
	return Command{Kind: KillCell, Row: cell[0], Col: cell[1]}, true
}

// Apply dispatches commands to the session.
func (c *Controller) Apply(sess *sim.Session, cmds []Command) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case PanLeft:
			sess.View.PanBy(-1, 0)
		case PanRight:
			sess.View.PanBy(1, 0)
		case PanUp:
			sess.View.PanBy(0, 1)
		case PanDown:
			sess.View.PanBy(0, -1)
		case ZoomIn:
			sess.View.ZoomIn()
		case ZoomOut:
			sess.View.ZoomOut()
		case TogglePause:
			sess.TogglePause()
		case KillCell:
			sess.Store.SetCellDead(cmd.Row, cmd.Col)
		}
	}
	sess.View.Clamp()
}

// Update polls and applies one frame of input, returning what was applied.
func (c *Controller) Update(sess *sim.Session, s Snapshot) []Command {
	cmds := c.Poll(s, sess.View)
	c.Apply(sess, cmds)
	return cmds
}
