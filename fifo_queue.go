// fifo_queue.go
package taskq

const (
	initialFifoCapacity = 64
)

// fifoStore is a circular-buffer first-in-first-out task store.
//
// It satisfies the store[T] interface used by WorkQueue. Tasks are
// handed out strictly in the order they were pushed. No priorities,
// no reordering. The buffer doubles in size when full, so pushes
// never drop or block.
type fifoStore[T any] struct {
	buf        []Task[T] // circular buffer
	head, tail int       // read/write indices
	size       int       // number of tasks currently buffered
}

func newFifoStore[T any]() *fifoStore[T] {
	return &fifoStore[T]{
		buf: make([]Task[T], initialFifoCapacity),
	}
}

// len returns the number of tasks currently waiting in the store.
func (q *fifoStore[T]) len() int { return q.size }

// push inserts a task at the tail, growing the buffer when full.
func (q *fifoStore[T]) push(t Task[T]) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = t
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.size++
}

// pop removes and returns the oldest task.
//
// If the store is empty, returns zero-value Task[T] and false.
func (q *fifoStore[T]) pop() (Task[T], bool) {
	if q.size == 0 {
		return Task[T]{}, false
	}
	t := q.buf[q.head]
	q.buf[q.head] = Task[T]{} // release payload reference
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.size--
	return t, true
}

// grow doubles the buffer, unrolling the ring so head starts at zero.
func (q *fifoStore[T]) grow() {
	next := make([]Task[T], 2*len(q.buf))
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
	q.tail = q.size
}
