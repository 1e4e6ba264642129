package view

import (
	"math"
	"math/rand/v2"
	"testing"
)

func checkInvariant(t *testing.T, v *Transform, step string) {
	t.Helper()
	limit := v.Size() - v.Size()/v.Zoom()
	x, y := v.Offset()
	if x < 0 || y < 0 || x > limit || y > limit {
		t.Fatalf("%s: offset (%v,%v) outside [0,%v] at zoom %v", step, x, y, limit, v.Zoom())
	}
}

func isPowerOfTwo(z float64) bool {
	frac, exp := math.Frexp(z)
	return frac == 0.5 && exp >= 1
}

func TestOffsetInvariantUnderRandomOps(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{1, 3, 64, 1024} {
		v := New(size)
		for i := 0; i < 5000; i++ {
			var step string
			switch r.IntN(6) {
			case 0:
				v.ZoomIn()
				step = "zoom in"
			case 1:
				v.ZoomOut()
				step = "zoom out"
			case 2:
				v.PanBy(-1, 0)
				step = "pan left"
			case 3:
				v.PanBy(1, 0)
				step = "pan right"
			case 4:
				v.PanBy(0, 1)
				step = "pan up"
			default:
				v.PanBy(0, -1)
				step = "pan down"
			}
			checkInvariant(t, v, step)
			if !isPowerOfTwo(v.Zoom()) {
				t.Fatalf("zoom %v is not a power of two", v.Zoom())
			}
		}
	}
}

func TestZoomOutFloor(t *testing.T) {
	v := New(16)
	v.ZoomOut()
	if v.Zoom() != 1 {
		t.Fatalf("zoom = %v, want 1", v.Zoom())
	}
	v.ZoomIn()
	v.ZoomIn()
	v.ZoomOut()
	if v.Zoom() != 2 {
		t.Fatalf("zoom = %v, want 2", v.Zoom())
	}
}

func TestZoomInStopsAtOneCell(t *testing.T) {
	v := New(16)
	for i := 0; i < 1100; i++ {
		v.ZoomIn()
	}
	if z := v.Zoom(); math.IsInf(z, 0) || z != 16 {
		t.Fatalf("zoom = %v, want 16", z)
	}
	if e := v.Extent(); e != 1 {
		t.Fatalf("extent = %v, want 1", e)
	}
	checkInvariant(t, v, "zoom in")
	for i := 0; i < 4; i++ {
		v.ZoomOut()
	}
	if v.Zoom() != 1 {
		t.Fatalf("zoom after four halvings = %v, want 1", v.Zoom())
	}
}

func TestZoomOutReclamps(t *testing.T) {
	v := New(1024)
	v.ZoomIn()
	v.ZoomIn() // extent 256
	for i := 0; i < 10; i++ {
		v.PanBy(1, 1)
	}
	if x, y := v.Offset(); x != 768 || y != 768 {
		t.Fatalf("offset = (%v,%v), want (768,768)", x, y)
	}
	v.ZoomOut() // extent 512
	if x, y := v.Offset(); x != 512 || y != 512 {
		t.Fatalf("offset after zoom out = (%v,%v), want (512,512)", x, y)
	}
}

func TestPanStepIsHalfExtent(t *testing.T) {
	v := New(1024)
	v.ZoomIn()
	v.PanBy(1, 0)
	if x, _ := v.Offset(); x != 256 {
		t.Fatalf("offsetX = %v, want 256", x)
	}
	v.PanBy(-1, 0)
	v.PanBy(-1, 0)
	if x, _ := v.Offset(); x != 0 {
		t.Fatalf("offsetX = %v, want clamp to 0", x)
	}
}

func TestPanAtIdentityIsAbsorbed(t *testing.T) {
	v := New(512)
	v.PanBy(1, 1)
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Fatalf("offset = (%v,%v), zoom 1 leaves no room to pan", x, y)
	}
}

func TestScreenToGridCorners(t *testing.T) {
	v := New(2048)
	if x, y := v.ScreenToGrid(0, 0, 1024, 1024); x != 0 || y != 0 {
		t.Fatalf("origin maps to (%v,%v)", x, y)
	}
	if x, y := v.ScreenToGrid(1024, 1024, 1024, 1024); x != 2048 || y != 2048 {
		t.Fatalf("far corner maps to (%v,%v)", x, y)
	}
}

func TestScreenToGridZoomed(t *testing.T) {
	v := New(1024)
	v.ZoomIn()
	v.ZoomIn()
	v.PanBy(1, 2) // offset (128, 256), extent 256
	x, y := v.ScreenToGrid(512, 256, 1024, 1024)
	if x != 256 || y != 320 {
		t.Fatalf("ScreenToGrid = (%v,%v), want (256,320)", x, y)
	}
}
