// Package view maps between screen space and grid space.
//
// The visible window is a square of side Size/Zoom whose lower-left corner
// sits at (OffsetX, OffsetY) in grid units. Zoom only takes powers of two
// starting at 1 and ending where one cell fills the window. The window never
// leaves the grid:
//
//	0 <= offset <= size - size/zoom
package view

// Transform is the pan/zoom state of the viewport.
type Transform struct {
	size    float64
	zoom    float64
	offsetX float64
	offsetY float64
}

// New returns the identity view over a grid of side size.
func New(size int) *Transform {
	return &Transform{size: float64(size), zoom: 1}
}

// Size returns the grid side length in cells.
func (t *Transform) Size() float64 { return t.size }

// Zoom returns the current magnification.
func (t *Transform) Zoom() float64 { return t.zoom }

// Offset returns the grid coordinate of the lower-left visible corner.
func (t *Transform) Offset() (float64, float64) { return t.offsetX, t.offsetY }

// Extent returns the side length, in cells, of the visible window.
func (t *Transform) Extent() float64 { return t.size / t.zoom }

// ZoomIn doubles the magnification. It stops once a single cell fills the
// window.
func (t *Transform) ZoomIn() {
	if t.size/(t.zoom*2) < 1 {
		return
	}
	t.zoom *= 2
	t.Clamp()
}

// ZoomOut halves the magnification, stopping at 1.
func (t *Transform) ZoomOut() {
	if t.zoom <= 1 {
		t.zoom = 1
		return
	}
	t.zoom /= 2
	t.Clamp()
}

// PanBy moves the window by dx, dy half-extents. Requests past the grid edge
// are absorbed by clamping.
func (t *Transform) PanBy(dx, dy float64) {
	step := t.size / (2 * t.zoom)
	t.offsetX += dx * step
	t.offsetY += dy * step
	t.Clamp()
}

// Clamp pulls the window back inside the grid on whichever axis overflows.
func (t *Transform) Clamp() {
	limit := t.size - t.size/t.zoom
	t.offsetX = clampOffset(t.offsetX, limit)
	t.offsetY = clampOffset(t.offsetY, limit)
}

func clampOffset(v, limit float64) float64 {
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ScreenToGrid maps a point on a w×h viewport, with y measured from the
// bottom, to grid coordinates. Callers truncate the result to a cell.
func (t *Transform) ScreenToGrid(sx, sy, w, h float64) (float64, float64) {
	extent := t.Extent()
	gx := t.offsetX + sx/w*extent
	gy := t.offsetY + sy/h*extent
	return gx, gy
}
