package ui

import (
	"fmt"

	"golinator/internal/sim"
)

// Status is the snapshot of a session the HUD prints.
type Status struct {
	Generation uint64
	Population int
	Size       int
	Zoom       float64
	OffsetX    float64
	OffsetY    float64
	Paused     bool
	TPS        float64
	// CPU is the host-wide load in percent, negative when unknown.
	CPU        float64
}

// StatusOf reads the session fields of a Status. TPS and CPU are left for
// the caller, who knows the frame clock.
func StatusOf(s *sim.Session) Status {
	ox, oy := s.View.Offset()
	return Status{
		Generation: s.Stepper.Generation(),
		Population: s.Store.Current().Population(),
		Size:       s.Store.Size(),
		Zoom:       s.View.Zoom(),
		OffsetX:    ox,
		OffsetY:    oy,
		Paused:     s.Paused,
		CPU:        -1,
	}
}

// Lines renders the status as HUD text lines.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	cpu := "cpu --"
	if s.CPU >= 0 {
		cpu = fmt.Sprintf("cpu %.0f%%", s.CPU)
	}
	return []string{
		fmt.Sprintf("gen %d  %s", s.Generation, state),
		fmt.Sprintf("alive %d / %d", s.Population, s.Size*s.Size),
		fmt.Sprintf("zoom x%g  at (%.0f, %.0f)", s.Zoom, s.OffsetX, s.OffsetY),
		fmt.Sprintf("tps %.1f  %s", s.TPS, cpu),
	}
}
