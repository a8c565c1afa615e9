package gridpath

import "log"

// Result contains the outcome of a search. Found is false when no route
// exists; that is an ordinary outcome, not an error.
type Result struct {
	Path          []Cell `json:"path"`
	Cost          int    `json:"cost"`
	ExpandedNodes int    `json:"expandedNodes"`
	Found         bool   `json:"found"`
}

// PathFinder runs A* over a Grid.
type PathFinder struct {
	grid *Grid
	opts Options
}

// NewPathFinder binds a finder to grid. The grid must not be modified while
// FindPath runs.
func NewPathFinder(grid *Grid, options ...Option) *PathFinder {
	return &PathFinder{grid: grid, opts: applyOptions(options)}
}

// FindPath returns a shortest 4-connected path from the grid's start to its
// end. Among equally short routes the one produced by the (f, h, insertion
// order) expansion rule is returned, so repeated calls on an unchanged grid
// agree. A blocked start or end yields Found == false.
func (pf *PathFinder) FindPath() (Result, error) {
	s, err := newSearch(pf.grid)
	if err != nil {
		return Result{}, err
	}
	return complete(s, pf.opts.Logger), nil
}

// complete runs s to the end and logs the outcome.
func complete(s *search, logger *log.Logger) Result {
	s.run()
	res := s.result()
	if res.Found {
		logger.Printf("[INFO] path %s -> %s: %d cells, cost %d, %d expanded",
			s.start, s.goal, len(res.Path), res.Cost, res.ExpandedNodes)
	} else {
		logger.Printf("[INFO] no path %s -> %s after %d expansions",
			s.start, s.goal, res.ExpandedNodes)
	}
	return res
}
