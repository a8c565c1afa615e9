package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/render"
)

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

func (s *Server) badRequest(c *gin.Context, err error) {
	s.logger.Printf("[WARN] bad request on %s: %v", c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// solve parses a PathRequest and runs the search. It writes the error
// response itself and reports false when the caller should stop.
func (s *Server) solve(c *gin.Context) (*gridpath.Grid, gridpath.Result, bool) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return nil, gridpath.Result{}, false
	}
	grid, err := req.build(s.cfg.MaxGridSize)
	if err != nil {
		s.badRequest(c, err)
		return nil, gridpath.Result{}, false
	}
	result, err := gridpath.NewPathFinder(grid, gridpath.WithLogger(s.logger)).FindPath()
	if err != nil {
		s.badRequest(c, err)
		return nil, gridpath.Result{}, false
	}
	return grid, result, true
}

func (s *Server) handlePath(c *gin.Context) {
	start := time.Now()
	grid, result, ok := s.solve(c)
	if !ok {
		return
	}
	path := result.Path
	if path == nil {
		path = []gridpath.Cell{}
	}
	c.JSON(http.StatusOK, PathResponse{
		Found:         result.Found,
		Path:          path,
		Cost:          result.Cost,
		ExpandedNodes: result.ExpandedNodes,
		Rendered:      render.Text(grid, result.Path),
		TimeTakenMs:   elapsedMs(start),
	})
}

func (s *Server) handlePathPNG(c *gin.Context) {
	opts := render.PNGOptions{Labels: c.Query("labels") == "1"}
	if raw := c.Query("cell"); raw != "" {
		cell, err := strconv.Atoi(raw)
		if err != nil || cell < 2 || cell > 64 {
			s.badRequest(c, errors.New("cell must be an integer between 2 and 64"))
			return
		}
		opts.CellSize = cell
	}
	grid, result, ok := s.solve(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.PNG(&buf, grid, result.Path, opts); err != nil {
		s.logger.Printf("[ERROR] render png: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "failed to render image"})
		return
	}
	c.Header("X-Path-Found", strconv.FormatBool(result.Found))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleBatch(c *gin.Context) {
	start := time.Now()
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	if limit := s.cfg.MaxBatchQueries; limit > 0 && len(req.Queries) > limit {
		s.badRequest(c, fmt.Errorf("%w: %d > %d", errBatchTooLarge, len(req.Queries), limit))
		return
	}
	grid, err := req.Terrain.build(s.cfg.MaxGridSize)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	results, err := gridpath.FindPaths(c.Request.Context(), grid, req.Queries,
		gridpath.WithWorkers(s.cfg.Workers), gridpath.WithLogger(s.logger))
	if err != nil {
		s.logger.Printf("[WARN] batch aborted: %v", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	resp := BatchResponse{Results: make([]BatchItem, 0, len(results))}
	for _, r := range results {
		item := BatchItem{
			ID:            r.Query.ID,
			Found:         r.Result.Found,
			Path:          r.Result.Path,
			Cost:          r.Result.Cost,
			ExpandedNodes: r.Result.ExpandedNodes,
		}
		if item.Path == nil {
			item.Path = []gridpath.Cell{}
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		resp.Results = append(resp.Results, item)
	}
	resp.TimeTakenMs = elapsedMs(start)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSchema(c *gin.Context) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	pathSchema := reflector.Reflect(&PathRequest{})
	pathSchema.Title = "Path request"
	pathSchema.Description = "Grid terrain plus the start and end cells for POST /api/path and /api/path.png."
	batchSchema := reflector.Reflect(&BatchRequest{})
	batchSchema.Title = "Batch request"
	batchSchema.Description = "Grid terrain plus independent start/end queries for POST /api/batch."

	c.JSON(http.StatusOK, gin.H{
		"path":  pathSchema,
		"batch": batchSchema,
	})
}
