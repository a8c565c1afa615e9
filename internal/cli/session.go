package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/render"
)

// session walks the user through editing a grid. Grid errors are printed
// and the prompt continues.
type session struct {
	in  *bufio.Scanner
	out io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: bufio.NewScanner(in), out: out}
}

func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) askInt(prompt string) (int, error) {
	for {
		raw, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(s.out, "Invalid number %q.\n", raw)
	}
}

func (s *session) askYes(prompt string) (bool, error) {
	raw, err := s.ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(raw) {
	case "y", "yes", "s", "si":
		return true, nil
	}
	return false, nil
}

func (s *session) show(title string, grid *gridpath.Grid) {
	fmt.Fprintln(s.out, title)
	fmt.Fprint(s.out, render.Text(grid, nil))
}

func (s *session) configure(grid *gridpath.Grid) error {
	s.show("Initial map:", grid)

	for {
		more, err := s.askYes("Add an obstacle? (y/n): ")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		x, err := s.askInt("Obstacle x: ")
		if err != nil {
			return err
		}
		y, err := s.askInt("Obstacle y: ")
		if err != nil {
			return err
		}
		kind, err := s.askInt("Obstacle kind (1, 2 or 3): ")
		if err != nil {
			return err
		}
		if err := grid.SetObstacle(x, y, gridpath.CellState(kind)); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		s.show(fmt.Sprintf("\nMap after adding an obstacle at (%d, %d):", x, y), grid)
	}

	for {
		more, err := s.askYes("Remove an obstacle? (y/n): ")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		x, err := s.askInt("Obstacle x to remove: ")
		if err != nil {
			return err
		}
		y, err := s.askInt("Obstacle y to remove: ")
		if err != nil {
			return err
		}
		if err := grid.ClearObstacle(x, y); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		s.show(fmt.Sprintf("\nMap after removing the obstacle at (%d, %d):", x, y), grid)
	}

	if err := s.askPoint("Start", grid.SetStart); err != nil {
		return err
	}
	return s.askPoint("End", grid.SetEnd)
}

func (s *session) askPoint(name string, set func(x, y int) error) error {
	for {
		x, err := s.askInt(fmt.Sprintf("%s x: ", name))
		if err != nil {
			return err
		}
		y, err := s.askInt(fmt.Sprintf("%s y: ", name))
		if err != nil {
			return err
		}
		if err := set(x, y); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		return nil
	}
}
