package httpapi

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pdrpinto/gridpath"
)

const writeWait = 10 * time.Second

// streamFrame is one websocket message. The "init" frame carries the
// terrain. Each "step" frame carries only what the expansion changed:
// Current joins the closed set and leaves the open set, and Opened joins the
// open set.
type streamFrame struct {
	Type    string          `json:"type"`
	Step    int             `json:"step"`
	Size    int             `json:"size,omitempty"`
	Walls   []gridpath.Cell `json:"walls,omitempty"`
	Opened  []gridpath.Cell `json:"opened,omitempty"`
	Current gridpath.Cell   `json:"current"`
	Start   gridpath.Cell   `json:"start"`
	Goal    gridpath.Cell   `json:"goal"`
	Done    bool            `json:"done"`
	Found   bool            `json:"found"`
	Path    []gridpath.Cell `json:"path,omitempty"`
}

func (s *Server) parseRandomParams(c *gin.Context) (randomParams, int64, error) {
	p := randomParams{Size: 24, Clusters: 8, Steps: 200, Density: 0.25}
	seed := time.Now().UnixNano()

	intParam := func(name string, dst *int, lowest int) error {
		raw := c.Query(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < lowest {
			return fmt.Errorf("%s must be an integer >= %d", name, lowest)
		}
		*dst = v
		return nil
	}
	if err := intParam("size", &p.Size, 2); err != nil {
		return p, 0, err
	}
	if s.cfg.MaxGridSize > 0 && p.Size > s.cfg.MaxGridSize {
		return p, 0, fmt.Errorf("%w: %d > %d", errGridTooLarge, p.Size, s.cfg.MaxGridSize)
	}
	if err := intParam("clusters", &p.Clusters, 0); err != nil {
		return p, 0, err
	}
	if err := intParam("steps", &p.Steps, 0); err != nil {
		return p, 0, err
	}
	if raw := c.Query("density"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			return p, 0, fmt.Errorf("density must be a number in [0, 1]")
		}
		p.Density = v
	}
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return p, 0, fmt.Errorf("seed must be an integer")
		}
		seed = v
	}
	return p, seed, nil
}

func (s *Server) handleStepStream(c *gin.Context) {
	params, seed, err := s.parseRandomParams(c)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	grid, err := randomGrid(rand.New(rand.NewSource(seed)), params)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	stepper, err := gridpath.NewStepper(grid)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Printf("[WARN] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	start, _ := grid.Start()
	goal, _ := grid.End()
	s.logger.Printf("[INFO] streaming search size=%d seed=%d %s -> %s", params.Size, seed, start, goal)

	first := streamFrame{
		Type:  "init",
		Size:  params.Size,
		Walls: grid.Obstacles(),
		Start: start,
		Goal:  goal,
		Done:  stepper.Done(),
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(first); err != nil {
		s.logger.Printf("[WARN] websocket write failed: %v", err)
		return
	}

	for !stepper.Done() {
		snap := stepper.Step()
		frame := streamFrame{
			Type:    "step",
			Step:    snap.StepIndex,
			Opened:  snap.Opened,
			Current: snap.Current,
			Start:   start,
			Goal:    goal,
			Done:    snap.Done,
			Found:   snap.Found,
			Path:    snap.Path,
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(frame); err != nil {
			s.logger.Printf("[WARN] websocket write failed: %v", err)
			return
		}
		if s.cfg.StepDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.cfg.StepDelay):
			}
		} else if ctx.Err() != nil {
			return
		}
	}

	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "search finished")
	if err := conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(writeWait)); err != nil {
		s.logger.Printf("[WARN] websocket close failed: %v", err)
	}
}
