// Package queue contains FIFO containers used for breadth-first walks over
// token graphs and rule graphs.
package queue

const minSize = 3

// Queue is a ring-buffer FIFO. Its capacity is always 2^n, size holds capacity - 1.
type Queue[T any] struct {
	items      []T
	size       int
	head, tail int
	zero       T
}

func New[T any](items ...T) *Queue[T] {
	result := &Queue[T]{}
	l := len(items)
	result.tail = l
	result.size = computeSize(l)
	result.items = make([]T, result.size+1)
	copy(result.items, items)
	return result
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == q.tail
}

func (q *Queue[T]) Append(item T) *Queue[T] {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) & q.size
	if q.tail == q.head {
		q.grow()
	}
	return q
}

// First removes and returns the oldest item, false if the queue is empty.
func (q *Queue[T]) First() (T, bool) {
	if q.head == q.tail {
		return q.zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = q.zero
	q.head = (q.head + 1) & q.size

	if q.head == 0 && q.size > minSize && (q.tail<<2) <= q.size {
		q.size = computeSize(q.tail << 1)
		items := make([]T, q.size+1)
		copy(items, q.items[:q.tail])
		q.items = items
	}

	return result, true
}

func computeSize(length int) (size int) {
	if length <= minSize {
		size = minSize
	} else {
		length |= length >> 1
		length |= length >> 2
		length |= length >> 4
		length |= length >> 8
		size = length | length>>16
	}
	return
}

func (q *Queue[T]) grow() {
	items := make([]T, (q.size+1)<<1)
	copy(items, q.items[q.head:])
	if q.head > 0 {
		copy(items[q.size+1-q.head:], q.items[0:q.head])
	}
	q.head = 0
	q.tail = q.size + 1
	q.size = q.size + q.tail
	q.items = items
}

// Unique is a FIFO that accepts every distinct item once during its lifetime,
// so a graph walk visits each vertex exactly once even if the graph has cycles.
type Unique[T comparable] struct {
	queue *Queue[T]
	seen  map[T]bool
}

func NewUnique[T comparable](items ...T) *Unique[T] {
	result := &Unique[T]{queue: New[T](), seen: make(map[T]bool, len(items))}
	for _, item := range items {
		result.Append(item)
	}
	return result
}

// Append queues item unless it has ever been queued before. Returns true if queued.
func (u *Unique[T]) Append(item T) bool {
	if u.seen[item] {
		return false
	}

	u.seen[item] = true
	u.queue.Append(item)
	return true
}

func (u *Unique[T]) First() (T, bool) {
	return u.queue.First()
}

func (u *Unique[T]) IsEmpty() bool {
	return u.queue.IsEmpty()
}
