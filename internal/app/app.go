//go:build ebiten

package app

import (
	"image/color"

	"golinator/internal/input"
	"golinator/internal/render"
	"golinator/internal/sim"
	"golinator/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation session to the ebiten.Game interface.
type Game struct {
	sess     *sim.Session
	ctrl     *input.Controller
	renderer *render.Renderer
	hud      *ui.HUD
}

// New constructs a Game for the provided session.
func New(sess *sim.Session) *Game {
	return &Game{
		sess:     sess,
		ctrl:     input.NewController(),
		renderer: render.NewRenderer(sess.Store.Size()),
		hud:      ui.NewHUD(),
	}
}

// Update polls input, applies it and advances the simulation once.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sess.Reseed(); err != nil {
			return err
		}
	}
	g.hud.Update()

	g.ctrl.Update(g.sess, g.snapshot())
	g.sess.Tick()
	return nil
}

func (g *Game) snapshot() input.Snapshot {
	_, wheelY := ebiten.Wheel()
	cx, cy := ebiten.CursorPosition()
	return input.Snapshot{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:        ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Space:     ebiten.IsKeyPressed(ebiten.KeySpace),
		WheelY:    wheelY,
		MouseLeft: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		// Sample the centre of the pixel under the cursor.
		CursorX: float64(cx) + 0.5,
		CursorY: float64(cy) + 0.5,
		Width:   WindowSize,
		Height:  WindowSize,
	}
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.renderer.Draw(screen, g.sess.Store, g.sess.View)
	g.hud.Draw(screen, g.sess)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize, WindowSize
}
