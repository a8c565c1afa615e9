package cli

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdrpinto/gridpath"
)

func run(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), err
}

func TestRunFlagsFindsPath(t *testing.T) {
	out, err := run(t, []string{
		"-obstacle", "1,1", "-obstacle", "1,2,2", "-obstacle", "1,3,3",
		"-start", "0,0", "-end", "4,4",
	}, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Path found:") || !strings.Contains(out, "Steps: 8") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Count(out, "*") != 9 {
		t.Fatalf("expected 9 path cells:\n%s", out)
	}
}

func TestRunFlagsNoPath(t *testing.T) {
	args := []string{"-start", "0,0", "-end", "4,0"}
	for y := 0; y < 5; y++ {
		args = append(args, "-obstacle", "2,"+string(rune('0'+y)))
	}
	out, err := run(t, args, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(out) != "No path found." {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunFlagErrors(t *testing.T) {
	cases := map[string][]string{
		"missing endpoints": {"-size", "3"},
		"bad start":         {"-start", "0", "-end", "1,1"},
		"obstacle outside":  {"-obstacle", "9,9", "-start", "0,0", "-end", "1,1"},
		"invalid kind":      {"-obstacle", "1,1,5", "-start", "0,0", "-end", "2,2"},
		"end outside":       {"-start", "0,0", "-end", "5,5"},
		"non-positive size": {"-size", "0", "-start", "0,0", "-end", "0,0"},
		"unknown flag":      {"-bogus"},
	}
	for name, args := range cases {
		if _, err := run(t, args, ""); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
	_, err := run(t, []string{"-obstacle", "0,0,7", "-start", "1,1", "-end", "2,2"}, "")
	if !errors.Is(err, gridpath.ErrInvalidObstacle) {
		t.Fatalf("err = %v, want ErrInvalidObstacle", err)
	}
}

func TestRunWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	out, err := run(t, []string{"-size", "4", "-start", "0,0", "-end", "3,3", "-png", path, "-labels"}, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Image written to") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open image: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("decode image: %v", err)
	}
}

func TestInteractiveSession(t *testing.T) {
	input := strings.Join([]string{
		"y", "1", "1", "1", // obstacle at (1,1)
		"y", "1", "2", "2", // obstacle at (1,2)
		"y", "9", "9", "1", // out of bounds, reported
		"y", "1", "3", "3",
		"n",
		"y", "0", "4", // nothing to remove, reported
		"y", "abc", "1", "3", // invalid number, then remove (1,3)
		"n",
		"7", "7", // start out of bounds, asked again
		"0", "0",
		"4", "4",
	}, "\n") + "\n"

	out, err := run(t, []string{"-interactive"}, input)
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Initial map:",
		"Map after adding an obstacle at (1, 1):",
		"coordinates out of grid bounds",
		"no obstacle at the given coordinates",
		`Invalid number "abc".`,
		"Map after removing the obstacle at (1, 3):",
		"Path found:",
		"Steps: 8",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	final := out[strings.Index(out, "Path found:"):]
	if strings.Count(final, "X") != 2 {
		t.Fatalf("expected two obstacles in final map:\n%s", final)
	}
}

func TestInteractiveSessionEOF(t *testing.T) {
	_, err := run(t, []string{"-interactive"}, "y\n1\n")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want io.ErrUnexpectedEOF", err)
	}
}
