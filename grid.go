package gridpath

import (
	"fmt"
)

// Cell is a grid coordinate. X selects the row and Y the column.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String provides a string representation of Cell
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CellState is the terrain stored in a grid cell.
type CellState uint8

const (
	Free CellState = iota
	Obstacle1
	Obstacle2
	Obstacle3
)

// IsObstacle reports whether the state blocks movement.
func (s CellState) IsObstacle() bool { return s != Free }

func (s CellState) valid() bool { return s <= Obstacle3 }

// Grid is an n×n terrain map with optional start and end markers.
// It holds no search state.
type Grid struct {
	size  int
	cells []CellState
	start *Cell
	end   *Cell
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new grid %d: %w", size, ErrInvalidSize)
	}
	return &Grid{
		size:  size,
		cells: make([]CellState, size*size),
	}, nil
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) index(x, y int) int { return x*g.size + y }

// IsInBounds checks if a position is within grid bounds
func (g *Grid) IsInBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// IsPassable reports whether (x, y) is in bounds and free.
func (g *Grid) IsPassable(x, y int) bool {
	return g.IsInBounds(x, y) && g.cells[g.index(x, y)] == Free
}

// State returns the terrain at (x, y).
func (g *Grid) State(x, y int) (CellState, error) {
	if !g.IsInBounds(x, y) {
		return Free, coordError("state", x, y, ErrOutOfBounds)
	}
	return g.cells[g.index(x, y)], nil
}

// SetObstacle stores kind at (x, y). Nothing changes when it fails.
func (g *Grid) SetObstacle(x, y int, kind CellState) error {
	if !g.IsInBounds(x, y) {
		return coordError("set obstacle", x, y, ErrOutOfBounds)
	}
	if kind == Free || !kind.valid() {
		return coordError("set obstacle", x, y, fmt.Errorf("%w: %d", ErrInvalidObstacle, kind))
	}
	g.cells[g.index(x, y)] = kind
	return nil
}

// ClearObstacle resets (x, y) to Free.
func (g *Grid) ClearObstacle(x, y int) error {
	if !g.IsInBounds(x, y) {
		return coordError("clear obstacle", x, y, ErrOutOfBounds)
	}
	i := g.index(x, y)
	if g.cells[i] == Free {
		return coordError("clear obstacle", x, y, ErrNoObstaclePresent)
	}
	g.cells[i] = Free
	return nil
}

func (g *Grid) SetStart(x, y int) error {
	if !g.IsInBounds(x, y) {
		return coordError("set start", x, y, ErrOutOfBounds)
	}
	g.start = &Cell{X: x, Y: y}
	return nil
}

func (g *Grid) SetEnd(x, y int) error {
	if !g.IsInBounds(x, y) {
		return coordError("set end", x, y, ErrOutOfBounds)
	}
	g.end = &Cell{X: x, Y: y}
	return nil
}

// Start returns the start marker and whether it has been set.
func (g *Grid) Start() (Cell, bool) {
	if g.start == nil {
		return Cell{}, false
	}
	return *g.start, true
}

// End returns the end marker and whether it has been set.
func (g *Grid) End() (Cell, bool) {
	if g.end == nil {
		return Cell{}, false
	}
	return *g.end, true
}

// ClearEndpoints unsets both markers.
func (g *Grid) ClearEndpoints() {
	g.start = nil
	g.end = nil
}

// Obstacles lists blocked cells in row-major order.
func (g *Grid) Obstacles() []Cell {
	var out []Cell
	for i, s := range g.cells {
		if s.IsObstacle() {
			out = append(out, Cell{X: i / g.size, Y: i % g.size})
		}
	}
	return out
}

// Snapshot returns a deep copy that shares nothing with g.
func (g *Grid) Snapshot() *Grid {
	c := &Grid{
		size:  g.size,
		cells: append([]CellState(nil), g.cells...),
	}
	if g.start != nil {
		s := *g.start
		c.start = &s
	}
	if g.end != nil {
		e := *g.end
		c.end = &e
	}
	return c
}
