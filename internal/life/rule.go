// Package life implements Conway's birth/survival rule and the kernels that
// apply it across a whole generation.
package life

import "golinator/internal/core"

// Next returns the state of a cell in the following generation.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Neighbors counts the live cells around (row, col). Coordinates beyond the
// grid are clamped to the border, so edge cells see their border duplicated
// outward; a corner cell samples itself three times.
func Neighbors(g *core.Generation, row, col int) int {
	cells := g.Cells()
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.Clamp(row+dr, col+dc)
			count += int(cells[g.Index(r, c)])
		}
	}
	return count
}

// stepRows applies the rule to rows [from, to) of curr, reading only prev.
func stepRows(prev, curr *core.Generation, from, to int) {
	n := prev.N
	src := prev.Cells()
	dst := curr.Cells()
	for row := from; row < to; row++ {
		interior := row > 0 && row < n-1
		for col := 0; col < n; col++ {
			idx := row*n + col
			var neighbors int
			if interior && col > 0 && col < n-1 {
				up := idx - n
				down := idx + n
				neighbors = int(src[up-1]) + int(src[up]) + int(src[up+1]) +
					int(src[idx-1]) + int(src[idx+1]) +
					int(src[down-1]) + int(src[down]) + int(src[down+1])
			} else {
				neighbors = Neighbors(prev, row, col)
			}
			dst[idx] = 0
			if Next(src[idx] != 0, neighbors) {
				dst[idx] = 1
			}
		}
	}
}

func checkPair(prev, curr *core.Generation) {
	if prev.N != curr.N {
		panic("life: step between generations of different size")
	}
}
