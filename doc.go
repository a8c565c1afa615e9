// Package gridpath finds shortest paths on square obstacle grids with A*.
//
// Movement is 4-connected with unit step cost and the heuristic is the
// Manhattan distance, so returned paths are optimal. It exposes three entry
// points:
//
//   - PathFinder.FindPath: run the search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - FindPaths: answer many independent queries against snapshots of one grid.
//
// Among open nodes with equal f cost the one with the lower h cost is expanded
// first, and remaining ties go to the node that entered the open set first.
// A start or end cell that is blocked produces Found == false rather than an
// error.
package gridpath
