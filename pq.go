package gridpath

// openItem is an open-set entry. It points at the arena node currently
// holding the best known cost for its cell.
type openItem struct {
	Cell         Cell
	Node         int
	FCost        int
	HCost        int
	Seq          int
	IndexInQueue int
}

// openQueue orders by f, then h, then insertion sequence.
type openQueue []*openItem

func (queue openQueue) Len() int { return len(queue) }
func (queue openQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	if a.HCost != b.HCost {
		return a.HCost < b.HCost
	}
	return a.Seq < b.Seq
}
func (queue openQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *openQueue) Push(x any) {
	item := x.(*openItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *openQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
