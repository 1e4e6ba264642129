//go:build ebiten

package render

import (
	"image/color"

	"golinator/internal/core"
	"golinator/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer keeps the current generation in a single image and draws the
// visible window of it with one DrawImage call.
type Renderer struct {
	n       int
	img     *ebiten.Image
	buf     []byte
	palette Palette

	version  uint64
	uploaded bool
}

// NewRenderer allocates an image for an n×n grid.
func NewRenderer(n int) *Renderer {
	return &Renderer{
		n:       n,
		img:     ebiten.NewImage(n, n),
		buf:     make([]byte, 4*n*n),
		palette: NewPalette(color.White, color.Black),
	}
}

// Draw uploads the current generation when the store changed and draws it
// onto screen through the view.
func (r *Renderer) Draw(screen *ebiten.Image, store *core.Store, v *view.Transform) {
	gen := store.Current()
	if gen.N != r.n {
		return
	}
	if !r.uploaded || r.version != store.Version() {
		r.palette.Fill(r.buf, gen.Cells())
		r.img.WritePixels(r.buf)
		r.version = store.Version()
		r.uploaded = true
	}

	b := screen.Bounds()
	a := Placement(v, float64(b.Dx()), float64(b.Dy()))
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(a.ScaleX, a.ScaleY)
	op.GeoM.Translate(a.TX, a.TY)
	screen.DrawImage(r.img, op)
}
