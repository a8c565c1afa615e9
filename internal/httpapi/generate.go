package httpapi

import (
	"errors"
	"math/rand"

	"github.com/pdrpinto/gridpath"
)

type randomParams struct {
	Size     int
	Clusters int
	Steps    int
	Density  float64
}

// clustered random obstacles via random walks
func randomGrid(r *rand.Rand, p randomParams) (*gridpath.Grid, error) {
	grid, err := gridpath.NewGrid(p.Size)
	if err != nil {
		return nil, err
	}
	if p.Size < 2 {
		return nil, errors.New("random grid needs at least two cells per side")
	}

	start, goal := gridpath.Cell{}, gridpath.Cell{}
	for start == goal {
		start = gridpath.Cell{X: r.Intn(p.Size), Y: r.Intn(p.Size)}
		goal = gridpath.Cell{X: r.Intn(p.Size), Y: r.Intn(p.Size)}
	}

	moves := [...]gridpath.Cell{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	for c := 0; c < p.Clusters; c++ {
		at := gridpath.Cell{X: r.Intn(p.Size), Y: r.Intn(p.Size)}
		for s := 0; s < p.Steps; s++ {
			if r.Float64() < p.Density && at != start && at != goal {
				kind := gridpath.CellState(1 + r.Intn(3))
				if err := grid.SetObstacle(at.X, at.Y, kind); err != nil {
					return nil, err
				}
			}
			d := moves[r.Intn(len(moves))]
			next := gridpath.Cell{X: at.X + d.X, Y: at.Y + d.Y}
			if grid.IsInBounds(next.X, next.Y) {
				at = next
			}
		}
	}

	if err := grid.SetStart(start.X, start.Y); err != nil {
		return nil, err
	}
	if err := grid.SetEnd(goal.X, goal.Y); err != nil {
		return nil, err
	}
	return grid, nil
}
