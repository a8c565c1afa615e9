package gridpath

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is reported for any coordinate outside [0, size).
	ErrOutOfBounds = errors.New("coordinates out of grid bounds")
	// ErrNoObstaclePresent is reported when clearing a cell that is already free.
	ErrNoObstaclePresent = errors.New("no obstacle at the given coordinates")
	// ErrInvalidObstacle is reported for a kind outside Obstacle1..Obstacle3.
	ErrInvalidObstacle = errors.New("invalid obstacle kind")
	ErrInvalidSize     = errors.New("grid size must be positive")
	ErrStartUnset      = errors.New("start point not set")
	ErrEndUnset        = errors.New("end point not set")
)

// CoordError records a rejected grid operation and the coordinates it was given.
type CoordError struct {
	Op   string
	Cell Cell
	Err  error
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Cell, e.Err)
}

func (e *CoordError) Unwrap() error { return e.Err }

func coordError(op string, x, y int, err error) error {
	return &CoordError{Op: op, Cell: Cell{X: x, Y: y}, Err: err}
}
