package queuecoll

import (
	"github.com/inoxlang/seqds/collcommon"
)

// BoundedQueue is a FIFO container backed by a circular buffer of fixed
// capacity: additions fail with collcommon.ErrFull when the queue is full.
type BoundedQueue[T any] struct {
	elements []T
	front    int
	size     int
}

// NewBoundedQueue creates a queue that can hold up to capacity elements,
// it panics with collcommon.ErrInvalidCapacity if capacity < 1.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 1 {
		panic(collcommon.ErrInvalidCapacity)
	}
	return &BoundedQueue[T]{
		elements: make([]T, capacity),
	}
}

// Enqueue adds a value to the back of the queue,
// it returns collcommon.ErrFull if the queue is full.
func (q *BoundedQueue[T]) Enqueue(value T) error {
	if q.IsFull() {
		return collcommon.ErrFull
	}

	avail := (q.front + q.size) % len(q.elements)
	q.elements[avail] = value
	q.size++
	return nil
}

// Dequeue removes the value at the front of the queue and returns it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *BoundedQueue[T]) Dequeue() (T, error) {
	var zero T

	if q.size == 0 {
		return zero, collcommon.ErrEmpty
	}

	value := q.elements[q.front]
	q.elements[q.front] = zero //release the reference
	q.front = (q.front + 1) % len(q.elements)
	q.size--
	return value, nil
}

// First returns the value at the front of the queue without removing it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *BoundedQueue[T]) First() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return q.elements[q.front], nil
}

// Len returns the number of elements within the queue.
func (q *BoundedQueue[T]) Len() int {
	return q.size
}

// Capacity returns the fixed capacity of the queue.
func (q *BoundedQueue[T]) Capacity() int {
	return len(q.elements)
}

// IsEmpty returns true if the queue does not contain any elements.
func (q *BoundedQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// IsFull returns true if the queue holds as many elements as its capacity.
func (q *BoundedQueue[T]) IsFull() bool {
	return q.size == len(q.elements)
}

// Elements returns the elements in FIFO order.
func (q *BoundedQueue[T]) Elements() []T {
	elements := make([]T, 0, q.size)
	for i := 0; i < q.size; i++ {
		elements = append(elements, q.elements[(q.front+i)%len(q.elements)])
	}
	return elements
}

func (q *BoundedQueue[T]) String() string {
	return formatQueue("BoundedQueue", q.Elements())
}
