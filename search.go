package gridpath

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"github.com/pdrpinto/gridpath/internal"
)

// neighborOffsets lists the 4-connected moves in expansion order.
var neighborOffsets = [...]Cell{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// searchNode is one arena entry. parent indexes an earlier entry, or is -1
// for the start node.
type searchNode struct {
	cell   Cell
	g      int
	h      int
	parent int
}

func (n searchNode) f() int { return n.g + n.h }

// search owns the whole state of one A* run. Nodes live in an arena so the
// parent tree goes away with the search.
type search struct {
	grid  *Grid
	start Cell
	goal  Cell

	nodes     []searchNode
	open      openQueue
	openIndex map[Cell]*openItem
	closed    mapset.Set[Cell]
	seq       int
	// opened lists the cells pushed or improved by the latest step.
	opened    []Cell

	expanded int
	done     bool
	found    bool
	goalNode int
}

func newSearch(grid *Grid) (*search, error) {
	start, ok := grid.Start()
	if !ok {
		return nil, ErrStartUnset
	}
	goal, ok := grid.End()
	if !ok {
		return nil, ErrEndUnset
	}
	return newSearchBetween(grid, start, goal), nil
}

// newSearchBetween searches from start to goal without touching the grid's
// own endpoints, so several searches can share one read-only grid. Both
// cells must be in bounds.
func newSearchBetween(grid *Grid, start, goal Cell) *search {
	s := &search{
		grid:      grid,
		start:     start,
		goal:      goal,
		open:      make(openQueue, 0),
		openIndex: make(map[Cell]*openItem),
		closed:    mapset.New[Cell](),
		goalNode:  -1,
	}
	// Blocked endpoints can never be part of a path.
	if !grid.IsPassable(start.X, start.Y) || !grid.IsPassable(goal.X, goal.Y) {
		s.done = true
		return s
	}
	heap.Init(&s.open)
	s.push(start, 0, -1)
	return s
}

// Manhattan is the search heuristic: |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Cell) int {
	return internal.Manhattan(a.X, a.Y, b.X, b.Y)
}

func (s *search) allocate(cell Cell, g, parent int) int {
	s.nodes = append(s.nodes, searchNode{cell: cell, g: g, h: Manhattan(cell, s.goal), parent: parent})
	return len(s.nodes) - 1
}

func (s *search) push(cell Cell, g, parent int) {
	idx := s.allocate(cell, g, parent)
	node := s.nodes[idx]
	item := &openItem{Cell: cell, Node: idx, FCost: node.f(), HCost: node.h, Seq: s.seq}
	s.seq++
	heap.Push(&s.open, item)
	s.openIndex[cell] = item
}

// step performs one iteration of the main loop. It returns the expanded cell
// and false once the search has already finished.
func (s *search) step() (Cell, bool) {
	s.opened = s.opened[:0]
	if s.done {
		return Cell{}, false
	}
	if s.open.Len() == 0 {
		s.done = true
		return Cell{}, false
	}

	item := heap.Pop(&s.open).(*openItem)
	delete(s.openIndex, item.Cell)
	s.closed.Put(item.Cell)
	s.expanded++
	current := s.nodes[item.Node]

	if item.Cell == s.goal {
		s.done = true
		s.found = true
		s.goalNode = item.Node
		return item.Cell, true
	}

	for _, d := range neighborOffsets {
		next := Cell{X: current.cell.X + d.X, Y: current.cell.Y + d.Y}
		if !s.grid.IsPassable(next.X, next.Y) || s.closed.Has(next) {
			continue
		}
		tentativeG := current.g + 1
		existing, inOpen := s.openIndex[next]
		if !inOpen {
			s.push(next, tentativeG, item.Node)
			s.opened = append(s.opened, next)
			continue
		}
		if s.nodes[existing.Node].g <= tentativeG {
			continue
		}
		// h is positional, so only g and the parent change.
		existing.Node = s.allocate(next, tentativeG, item.Node)
		existing.FCost = s.nodes[existing.Node].f()
		heap.Fix(&s.open, existing.IndexInQueue)
		s.opened = append(s.opened, next)
	}
	return item.Cell, true
}

func (s *search) run() {
	for !s.done {
		s.step()
	}
}

func (s *search) path() []Cell {
	if !s.found {
		return nil
	}
	return internal.ReconstructPath(s.goalNode,
		func(i int) int { return s.nodes[i].parent },
		func(i int) Cell { return s.nodes[i].cell },
	)
}

func (s *search) result() Result {
	res := Result{ExpandedNodes: s.expanded, Found: s.found}
	if s.found {
		res.Path = s.path()
		res.Cost = s.nodes[s.goalNode].g
	}
	return res
}

