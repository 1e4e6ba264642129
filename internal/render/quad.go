// Package render draws the current generation through the view transform.
package render

import "golinator/internal/view"

// TexRect is the visible sub-region of the grid in normalised texture
// coordinates, with v growing upward.
type TexRect struct {
	U0, V0 float64
	U1, V1 float64
}

// Quad returns the texture coordinates a full-viewport quad samples so only
// the visible window of the grid is stretched across the screen.
func Quad(v *view.Transform) TexRect {
	size := v.Size()
	ox, oy := v.Offset()
	span := 1 / v.Zoom()
	return TexRect{
		U0: ox / size,
		V0: oy / size,
		U1: ox/size + span,
		V1: oy/size + span,
	}
}

// Affine maps grid image pixels (col, row) to viewport pixels:
//
//	x' = ScaleX*col + TX
//	y' = ScaleY*row + TY
type Affine struct {
	ScaleX, ScaleY float64
	TX, TY         float64
}

// Apply maps an image point into the viewport.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.ScaleX*x + a.TX, a.ScaleY*y + a.TY
}

// Placement returns the transform that draws the grid image, stored with row
// 0 first, onto a w×h viewport so the visible window fills it and row 0 sits
// at the bottom.
func Placement(v *view.Transform, w, h float64) Affine {
	extent := v.Extent()
	ox, oy := v.Offset()
	kx := w / extent
	ky := h / extent
	return Affine{
		ScaleX: kx,
		ScaleY: -ky,
		TX:     -kx * ox,
		TY:     h + ky*oy,
	}
}
