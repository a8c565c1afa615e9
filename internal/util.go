package internal

// Abs returns the absolute value of v.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Manhattan returns |ax-bx| + |ay-by|.
func Manhattan(ax, ay, bx, by int) int {
	return Abs(ax-bx) + Abs(ay-by)
}

// ReconstructPath walks parent indices from leaf back to the root (parent < 0)
// and returns the visited values ordered root first.
func ReconstructPath[T any](leaf int, parent func(int) int, value func(int) T) []T {
	path := make([]T, 0)
	for at := leaf; at >= 0; at = parent(at) {
		path = append(path, value(at))
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
