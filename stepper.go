package gridpath

// StepSnapshot describes one iteration of the search. It only carries what
// changed; the full frontier is available from the Stepper on demand.
type StepSnapshot struct {
	// Current is the cell expanded by this step and is now closed.
	Current Cell `json:"current"`
	// Opened lists cells added to the open set, or given a cheaper
	// route, by this step, in neighbour order.
	Opened    []Cell `json:"opened,omitempty"`
	Done      bool   `json:"done"`
	Found     bool   `json:"found"`
	Path      []Cell `json:"path,omitempty"`
	StepIndex int    `json:"step"`
}

// Stepper drives the same search as FindPath one expansion at a time, for
// visualisers and debugging tools.
type Stepper struct {
	s         *search
	stepCount int
	current   Cell
}

// NewStepper prepares a search over grid. The grid must not change until the
// stepper is done.
func NewStepper(grid *Grid) (*Stepper, error) {
	s, err := newSearch(grid)
	if err != nil {
		return nil, err
	}
	return &Stepper{s: s}, nil
}

// Step advances the search by one node expansion. Once the search has
// finished every call returns the final snapshot with no Opened cells.
func (st *Stepper) Step() StepSnapshot {
	var opened []Cell
	if !st.s.done {
		if cell, ok := st.s.step(); ok {
			st.stepCount++
			st.current = cell
			opened = append(opened, st.s.opened...)
		}
	}
	snap := StepSnapshot{
		Current:   st.current,
		Opened:    opened,
		Done:      st.s.done,
		Found:     st.s.found,
		StepIndex: st.stepCount,
	}
	if st.s.found {
		snap.Path = st.s.path()
	}
	return snap
}

// Done reports whether the search has terminated.
func (st *Stepper) Done() bool { return st.s.done }

// Result reports the outcome so far. Found stays false until the end cell
// has been expanded.
func (st *Stepper) Result() Result { return st.s.result() }

// Open returns a copy of the current open set.
func (st *Stepper) Open() map[Cell]bool {
	out := make(map[Cell]bool, len(st.s.openIndex))
	for cell := range st.s.openIndex {
		out[cell] = true
	}
	return out
}

// Closed returns a copy of the current closed set.
func (st *Stepper) Closed() map[Cell]bool {
	out := make(map[Cell]bool, st.s.closed.Size())
	st.s.closed.Each(func(cell Cell) {
		out[cell] = true
	})
	return out
}

// CameFrom maps every reached cell except the start to its current
// predecessor. It walks the whole node arena, so call it when needed rather
// than after every step.
func (st *Stepper) CameFrom() map[Cell]Cell {
	out := make(map[Cell]Cell)
	// The newest arena entry for a cell carries its current parent.
	for _, n := range st.s.nodes {
		if n.parent >= 0 {
			out[n.cell] = st.s.nodes[n.parent].cell
		}
	}
	return out
}
