// Package cli implements the gridpath command: a flag-driven one-shot query
// and an interactive prompt session.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/render"
)

// cellFlag parses "x,y".
type cellFlag struct {
	cell gridpath.Cell
	set  bool
}

func (f *cellFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.cell.X, f.cell.Y)
}

func (f *cellFlag) Set(raw string) error {
	values, err := parseInts(raw, 2, 2)
	if err != nil {
		return err
	}
	f.cell = gridpath.Cell{X: values[0], Y: values[1]}
	f.set = true
	return nil
}

type obstacleArg struct {
	cell gridpath.Cell
	kind gridpath.CellState
}

// obstacleFlag collects repeated "x,y[,kind]" values.
type obstacleFlag []obstacleArg

func (f *obstacleFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, o := range *f {
		parts = append(parts, fmt.Sprintf("%d,%d,%d", o.cell.X, o.cell.Y, o.kind))
	}
	return strings.Join(parts, " ")
}

func (f *obstacleFlag) Set(raw string) error {
	values, err := parseInts(raw, 2, 3)
	if err != nil {
		return err
	}
	arg := obstacleArg{cell: gridpath.Cell{X: values[0], Y: values[1]}, kind: gridpath.Obstacle1}
	if len(values) == 3 {
		arg.kind = gridpath.CellState(values[2])
	}
	*f = append(*f, arg)
	return nil
}

func parseInts(raw string, least, most int) ([]int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < least || len(parts) > most {
		return nil, fmt.Errorf("expected %d to %d comma-separated integers, got %q", least, most, raw)
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		out[i] = v
	}
	return out, nil
}

type options struct {
	size        int
	obstacles   obstacleFlag
	start       cellFlag
	end         cellFlag
	pngPath     string
	labels      bool
	interactive bool
	verbose     bool
}

// Run executes the command with args (without the program name).
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.size, "size", 5, "grid edge length")
	fs.Var(&opts.obstacles, "obstacle", "obstacle as x,y[,kind] with kind 1-3 (repeatable)")
	fs.Var(&opts.start, "start", "start cell as x,y")
	fs.Var(&opts.end, "end", "end cell as x,y")
	fs.StringVar(&opts.pngPath, "png", "", "also write the map as a PNG image to this path")
	fs.BoolVar(&opts.labels, "labels", false, "draw row and column labels in the PNG")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for obstacles and endpoints")
	fs.BoolVar(&opts.verbose, "v", false, "log search statistics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	grid, err := gridpath.NewGrid(opts.size)
	if err != nil {
		return err
	}
	for _, o := range opts.obstacles {
		if err := grid.SetObstacle(o.cell.X, o.cell.Y, o.kind); err != nil {
			return fmt.Errorf("obstacle flag: %w", err)
		}
	}

	if opts.interactive {
		if err := newSession(stdin, stdout).configure(grid); err != nil {
			return err
		}
	} else {
		if !opts.start.set || !opts.end.set {
			return errors.New("both -start and -end are required unless -interactive is set")
		}
		if err := grid.SetStart(opts.start.cell.X, opts.start.cell.Y); err != nil {
			return err
		}
		if err := grid.SetEnd(opts.end.cell.X, opts.end.cell.Y); err != nil {
			return err
		}
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(stderr, "gridpath: ", log.LstdFlags)
	}
	result, err := gridpath.NewPathFinder(grid, gridpath.WithLogger(logger)).FindPath()
	if err != nil {
		return err
	}

	if result.Found {
		fmt.Fprintln(stdout, "\nPath found:")
		fmt.Fprint(stdout, render.Text(grid, result.Path))
		fmt.Fprintf(stdout, "Steps: %d\n", result.Cost)
	} else {
		fmt.Fprintln(stdout, "No path found.")
	}

	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, grid, result.Path, opts.labels); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Image written to %s\n", opts.pngPath)
	}
	return nil
}

func writePNG(path string, grid *gridpath.Grid, route []gridpath.Cell, labels bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := render.PNG(f, grid, route, render.PNGOptions{Labels: labels}); err != nil {
		f.Close()
		return fmt.Errorf("render image: %w", err)
	}
	return f.Close()
}
