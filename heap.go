package taskq

// taskHeap — min-heap on (Priority, seq)
type taskHeap[T any] []Task[T]

func (h taskHeap[T]) Len() int { return len(h) }
func (h taskHeap[T]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority // lower value is more urgent
	}
	return h[i].seq < h[j].seq // stable for equal priorities
}
func (h taskHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *taskHeap[T]) Push(x any) {
	*h = append(*h, x.(Task[T]))
}

func (h *taskHeap[T]) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = Task[T]{}
	*h = old[:n-1]
	return t
}
