package core

// Generation stores one N×N snapshot of cell states in row-major order.
// A cell holds 1 when alive and 0 when dead.
type Generation struct {
	N    int
	data []uint8
}

// NewGeneration allocates a dead generation with side length n.
func NewGeneration(n int) *Generation {
	if n <= 0 {
		n = 1
	}
	return &Generation{N: n, data: make([]uint8, n*n)}
}

// Cells exposes the backing slice so kernels can read/write values directly.
func (g *Generation) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Generation) Index(row, col int) int { return row*g.N + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *Generation) InBounds(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// Alive reports whether the cell is alive. Out-of-range cells read as dead.
func (g *Generation) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[g.Index(row, col)] != 0
}

// Set stores the state of an in-range cell and ignores everything else.
func (g *Generation) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(row, col)] = v
}

// Clamp pins coordinates to the border, duplicating edge cells outward.
func (g *Generation) Clamp(row, col int) (int, int) {
	return clampAxis(row, g.N), clampAxis(col, g.N)
}

func clampAxis(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Population counts the live cells.
func (g *Generation) Population() int {
	total := 0
	for _, c := range g.data {
		total += int(c)
	}
	return total
}

// CopyFrom overwrites g with the contents of src. Both must share a size.
func (g *Generation) CopyFrom(src *Generation) {
	if g.N != src.N {
		panic("core: CopyFrom between generations of different size")
	}
	copy(g.data, src.data)
}
