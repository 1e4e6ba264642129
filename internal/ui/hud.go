//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"golinator/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudWidth      = 220
	hudLineHeight = 16
	hudPadding    = 8
)

// HUD draws a translucent status panel in the top-left corner. Tab toggles it.
type HUD struct {
	visible bool
	panel   *ebiten.Image
	cpu     *CPUSampler
}

// NewHUD constructs a hidden HUD.
func NewHUD() *HUD {
	return &HUD{cpu: NewCPUSampler(time.Second)}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
}

// Draw paints the panel for the session when visible.
func (h *HUD) Draw(screen *ebiten.Image, s *sim.Session) {
	if !h.visible {
		return
	}
	status := StatusOf(s)
	status.TPS = ebiten.ActualTPS()
	status.CPU = h.cpu.Percent()
	lines := status.Lines()

	height := hudPadding*2 + len(lines)*hudLineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(hudWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 4
		text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)
}
