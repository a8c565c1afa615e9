package httpapi

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/gridpath"
)

var (
	errGridTooLarge  = errors.New("grid size exceeds server limit")
	errBatchTooLarge = errors.New("batch exceeds server query limit")
)

// Obstacle places one blocked cell. Kind defaults to 1.
type Obstacle struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Kind int `json:"kind,omitempty" jsonschema:"minimum=1,maximum=3,default=1"`
}

// Terrain is the grid part shared by every request body.
type Terrain struct {
	Size      int        `json:"size" binding:"required,min=1" jsonschema:"required,minimum=1"`
	Obstacles []Obstacle `json:"obstacles,omitempty"`
}

type PathRequest struct {
	Terrain
	Start *gridpath.Cell `json:"start" binding:"required" jsonschema:"required"`
	End   *gridpath.Cell `json:"end" binding:"required" jsonschema:"required"`
}

type BatchRequest struct {
	Terrain
	Queries []gridpath.Query `json:"queries" binding:"required,min=1" jsonschema:"required,minItems=1"`
}

type PathResponse struct {
	Found         bool            `json:"found"`
	Path          []gridpath.Cell `json:"path"`
	Cost          int             `json:"cost"`
	ExpandedNodes int             `json:"expandedNodes"`
	Rendered      string          `json:"rendered"`
	TimeTakenMs   float64         `json:"timeTakenMs"`
}

type BatchItem struct {
	ID            string          `json:"id"`
	Found         bool            `json:"found"`
	Path          []gridpath.Cell `json:"path"`
	Cost          int             `json:"cost"`
	ExpandedNodes int             `json:"expandedNodes"`
	Error         string          `json:"error,omitempty"`
}

type BatchResponse struct {
	Results     []BatchItem `json:"results"`
	TimeTakenMs float64     `json:"timeTakenMs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// build turns a request body into a grid, stopping at the first rejected
// coordinate.
func (t Terrain) build(maxSize int) (*gridpath.Grid, error) {
	if maxSize > 0 && t.Size > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", errGridTooLarge, t.Size, maxSize)
	}
	grid, err := gridpath.NewGrid(t.Size)
	if err != nil {
		return nil, err
	}
	for _, o := range t.Obstacles {
		kind := gridpath.Obstacle1
		if o.Kind != 0 {
			if o.Kind < 0 || o.Kind > int(gridpath.Obstacle3) {
				return nil, fmt.Errorf("obstacle (%d,%d): %w: %d", o.X, o.Y, gridpath.ErrInvalidObstacle, o.Kind)
			}
			kind = gridpath.CellState(o.Kind)
		}
		if err := grid.SetObstacle(o.X, o.Y, kind); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

func (r PathRequest) build(maxSize int) (*gridpath.Grid, error) {
	grid, err := r.Terrain.build(maxSize)
	if err != nil {
		return nil, err
	}
	if err := grid.SetStart(r.Start.X, r.Start.Y); err != nil {
		return nil, err
	}
	if err := grid.SetEnd(r.End.X, r.End.Y); err != nil {
		return nil, err
	}
	return grid, nil
}
