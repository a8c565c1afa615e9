// Package render draws grids and paths as text or PNG images.
package render

import (
	"strings"

	"github.com/pdrpinto/gridpath"
)

const (
	SymbolFree     = '.'
	SymbolObstacle = 'X'
	SymbolPath     = '*'
)

// Text renders one line per row with cells separated by spaces. Path cells
// are drawn over the terrain.
func Text(grid *gridpath.Grid, path []gridpath.Cell) string {
	n := grid.Size()
	onPath := make(map[gridpath.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	b.Grow(n * 2 * n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if y > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(symbol(grid, onPath, x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func symbol(grid *gridpath.Grid, onPath map[gridpath.Cell]bool, x, y int) byte {
	if onPath[gridpath.Cell{X: x, Y: y}] {
		return SymbolPath
	}
	if grid.IsPassable(x, y) {
		return SymbolFree
	}
	return SymbolObstacle
}
