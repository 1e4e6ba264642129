package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"golinator/internal/sim"
	"golinator/internal/ui"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

const aliveRune = '█'

// draw samples the grid at the centre of every terminal cell of a w×h
// viewport. Terminal row 0 is the top, grid row 0 the bottom.
func draw(screen tcell.Screen, s *sim.Session, w, h int) {
	gen := s.Store.Current()
	fw, fh := float64(w), float64(h)
	for y := 0; y < h; y++ {
		sy := fh - float64(y) - 0.5
		for x := 0; x < w; x++ {
			gx, gy := s.View.ScreenToGrid(float64(x)+0.5, sy, fw, fh)
			if gen.Alive(int(gy), int(gx)) {
				screen.SetContent(x, y, aliveRune, nil, aliveStyle)
				continue
			}
			screen.SetContent(x, y, ' ', nil, deadStyle)
		}
	}
}

// drawStatus writes a one-line summary on row y.
func drawStatus(screen tcell.Screen, status ui.Status, y, w int) {
	line := []rune(strings.Join(status.Lines(), " | "))
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		screen.SetContent(x, y, r, nil, statusStyle)
	}
}
