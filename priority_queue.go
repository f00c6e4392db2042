package taskq

import (
	"container/heap"
)

const (
	initialPrioCapacity = 64
)

// prioStore is a binary min-heap task store ordered by Task.Priority.
// The task with the lowest priority value is popped first. Tasks with
// equal priority are ordered by their queue sequence number, so
// ordering stays stable across pushes.
//
// It satisfies the store[T] interface used by WorkQueue.
type prioStore[T any] struct {
	h taskHeap[T]
}

func newPrioStore[T any]() *prioStore[T] {
	s := &prioStore[T]{}
	s.h = make(taskHeap[T], 0, initialPrioCapacity) // preallocate
	heap.Init(&s.h)
	return s
}

// push inserts a task into the heap.
func (s *prioStore[T]) push(t Task[T]) {
	heap.Push(&s.h, t)
}

// pop removes and returns the most urgent task (lowest priority value,
// oldest first among equals). If the store is empty, pop returns a
// zero Task[T] and false.
func (s *prioStore[T]) pop() (Task[T], bool) {
	if s.h.Len() == 0 {
		return Task[T]{}, false
	}
	return heap.Pop(&s.h).(Task[T]), true
}

// len returns the number of tasks currently stored in the heap.
func (s *prioStore[T]) len() int {
	return s.h.Len()
}
