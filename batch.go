package gridpath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/end pair for FindPaths.
type Query struct {
	ID    string `json:"id"`
	Start Cell   `json:"start"`
	End   Cell   `json:"end"`
}

// BatchResult pairs a query with its outcome. Err holds per-query
// configuration failures such as out-of-bounds endpoints.
type BatchResult struct {
	Query  Query  `json:"query"`
	Result Result `json:"result"`
	Err    error  `json:"-"`
}

// FindPaths answers independent queries against one terrain. All queries
// share a single read-only snapshot of grid, taken once, so the caller's grid
// is only read before the first search starts. Results keep the order of
// queries. A context that is already done returns before any setup.
func FindPaths(ctx context.Context, grid *Grid, queries []Query, options ...Option) ([]BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := applyOptions(options)
	results := make([]BatchResult, len(queries))
	terrain := grid.Snapshot()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.NumberOfWorkers)
	for i, q := range queries {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[i] = runQuery(terrain, q, opts)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.Logger.Printf("[INFO] batch of %d queries finished with %d workers", len(queries), opts.NumberOfWorkers)
	return results, nil
}

// runQuery searches terrain between the query's endpoints. terrain is shared
// by every query and is never written.
func runQuery(terrain *Grid, q Query, opts Options) BatchResult {
	out := BatchResult{Query: q}
	if !terrain.IsInBounds(q.Start.X, q.Start.Y) {
		out.Err = coordError("set start", q.Start.X, q.Start.Y, ErrOutOfBounds)
		return out
	}
	if !terrain.IsInBounds(q.End.X, q.End.Y) {
		out.Err = coordError("set end", q.End.X, q.End.Y, ErrOutOfBounds)
		return out
	}
	out.Result = complete(newSearchBetween(terrain, q.Start, q.End), opts.Logger)
	return out
}
