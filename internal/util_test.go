package internal

import (
	"reflect"
	"testing"
)

func TestManhattan(t *testing.T) {
	cases := []struct {
		ax, ay, bx, by int
		want           int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 4, 4, 8},
		{4, 4, 0, 0, 8},
		{2, -3, -1, 5, 11},
	}
	for _, c := range cases {
		if got := Manhattan(c.ax, c.ay, c.bx, c.by); got != c.want {
			t.Fatalf("Manhattan(%d,%d,%d,%d) = %d, want %d", c.ax, c.ay, c.bx, c.by, got, c.want)
		}
	}
}

func TestReconstructPathFollowsParents(t *testing.T) {
	parents := []int{-1, 0, 1, 1, 3}
	names := []string{"a", "b", "c", "d", "e"}
	got := ReconstructPath(4,
		func(i int) int { return parents[i] },
		func(i int) string { return names[i] },
	)
	want := []string{"a", "b", "d", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReconstructPath = %v, want %v", got, want)
	}
}

func TestReconstructPathSingleRoot(t *testing.T) {
	got := ReconstructPath(0, func(int) int { return -1 }, func(int) int { return 7 })
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected single-element path, got %v", got)
	}
}
