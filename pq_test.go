package gridpath

import (
	"container/heap"
	"testing"
)

func TestOpenQueueOrdering(t *testing.T) {
	q := openQueue{}
	heap.Init(&q)
	items := []*openItem{
		{Cell: Cell{0, 0}, FCost: 8, HCost: 8, Seq: 0},
		{Cell: Cell{0, 1}, FCost: 8, HCost: 7, Seq: 1},
		{Cell: Cell{1, 0}, FCost: 8, HCost: 7, Seq: 2},
		{Cell: Cell{2, 2}, FCost: 6, HCost: 6, Seq: 3},
		{Cell: Cell{3, 3}, FCost: 10, HCost: 0, Seq: 4},
	}
	for _, it := range items {
		heap.Push(&q, it)
	}
	want := []Cell{{2, 2}, {0, 1}, {1, 0}, {0, 0}, {3, 3}}
	for i, w := range want {
		got := heap.Pop(&q).(*openItem)
		if got.Cell != w {
			t.Fatalf("pop %d: got %s, want %s", i, got.Cell, w)
		}
		if got.IndexInQueue != -1 {
			t.Fatalf("pop %d: popped item keeps index %d", i, got.IndexInQueue)
		}
	}
}

func TestOpenQueueFixAfterDecrease(t *testing.T) {
	q := openQueue{}
	a := &openItem{Cell: Cell{0, 0}, FCost: 5, Seq: 0}
	b := &openItem{Cell: Cell{1, 1}, FCost: 9, Seq: 1}
	heap.Push(&q, a)
	heap.Push(&q, b)
	b.FCost = 3
	heap.Fix(&q, b.IndexInQueue)
	if got := heap.Pop(&q).(*openItem); got != b {
		t.Fatalf("expected decreased item first, got %s", got.Cell)
	}
}
