package render

import "image/color"

// Palette holds the two cell colours as ready-to-copy RGBA bytes.
type Palette struct {
	alive [4]byte
	dead  [4]byte
}

// NewPalette converts alive/dead colours into premultiplied RGBA bytes.
func NewPalette(alive, dead color.Color) Palette {
	return Palette{alive: rgbaBytes(alive), dead: rgbaBytes(dead)}
}

func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Fill converts binary cell data (0/1) into RGBA pixels in buf, which must
// hold 4 bytes per cell.
func (p Palette) Fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := p.dead
		if c != 0 {
			px = p.alive
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
