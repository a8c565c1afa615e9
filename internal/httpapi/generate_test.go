package httpapi

import (
	"math/rand"
	"testing"
)

func TestRandomGridKeepsEndpointsFree(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		grid, err := randomGrid(rand.New(rand.NewSource(seed)), randomParams{Size: 6, Clusters: 4, Steps: 40, Density: 0.9})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		start, okS := grid.Start()
		goal, okE := grid.End()
		if !okS || !okE {
			t.Fatalf("seed %d: endpoints not set", seed)
		}
		if start == goal {
			t.Fatalf("seed %d: start equals goal %s", seed, start)
		}
		if !grid.IsPassable(start.X, start.Y) || !grid.IsPassable(goal.X, goal.Y) {
			t.Fatalf("seed %d: endpoint is an obstacle", seed)
		}
	}
}

func TestRandomGridIsDeterministicPerSeed(t *testing.T) {
	p := randomParams{Size: 10, Clusters: 3, Steps: 30, Density: 0.5}
	a, err := randomGrid(rand.New(rand.NewSource(42)), p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := randomGrid(rand.New(rand.NewSource(42)), p)
	if err != nil {
		t.Fatal(err)
	}
	wa, wb := a.Obstacles(), b.Obstacles()
	if len(wa) != len(wb) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(wa), len(wb))
	}
	for i := range wa {
		if wa[i] != wb[i] {
			t.Fatalf("obstacle %d differs: %s vs %s", i, wa[i], wb[i])
		}
	}
}

func TestRandomGridRejectsTinySize(t *testing.T) {
	if _, err := randomGrid(rand.New(rand.NewSource(1)), randomParams{Size: 1}); err == nil {
		t.Fatal("expected an error for size 1")
	}
	if _, err := randomGrid(rand.New(rand.NewSource(1)), randomParams{Size: 0}); err == nil {
		t.Fatal("expected an error for size 0")
	}
}
