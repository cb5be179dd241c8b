// Package queuecoll implements FIFO containers: a growable ring buffer
// (ArrayQueue), a fixed-capacity ring buffer (BoundedQueue), a singly linked
// queue (LinkedQueue) and a circularly linked queue supporting constant-time
// rotation (CircularQueue).
package queuecoll

import (
	"fmt"
	"strings"

	"github.com/inoxlang/seqds/collcommon"
	"github.com/inoxlang/seqds/internal/utils"
)

// DEFAULT_CAPACITY is the initial capacity of queues created by NewArrayQueue.
const DEFAULT_CAPACITY = 10

var _ collcommon.Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is a FIFO container backed by a circular buffer that doubles its
// capacity when full. Dequeued slots are zeroed so that the buffer does not
// keep removed elements alive.
type ArrayQueue[T any] struct {
	elements []T //len(elements) is the capacity
	front    int
	size     int
}

func NewArrayQueue[T any]() *ArrayQueue[T] {
	return NewArrayQueueWithCapacity[T](DEFAULT_CAPACITY)
}

func NewArrayQueueWithCapacity[T any](capacity int) *ArrayQueue[T] {
	return &ArrayQueue[T]{
		elements: make([]T, utils.Max(capacity, 1)),
	}
}

// Enqueue adds a value to the back of the queue, growing the buffer if it is
// full.
func (q *ArrayQueue[T]) Enqueue(value T) {
	if q.size == len(q.elements) {
		q.resize(2 * len(q.elements))
	}

	avail := (q.front + q.size) % len(q.elements)
	q.elements[avail] = value
	q.size++
}

// Dequeue removes the value at the front of the queue and returns it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *ArrayQueue[T]) Dequeue() (T, error) {
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
func (q *ArrayQueue[T]) First() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return q.elements[q.front], nil
}

// Len returns the number of elements within the queue.
func (q *ArrayQueue[T]) Len() int {
	return q.size
}

// IsEmpty returns true if the queue does not contain any elements.
func (q *ArrayQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Capacity returns the current capacity of the underlying buffer.
func (q *ArrayQueue[T]) Capacity() int {
	return len(q.elements)
}

// Clear removes all elements from the queue; the capacity is kept.
func (q *ArrayQueue[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.elements[(q.front+i)%len(q.elements)] = zero
	}
	q.front = 0
	q.size = 0
}

// resize reallocates the buffer with the given capacity and realigns the
// front of the queue to index 0.
func (q *ArrayQueue[T]) resize(capacity int) {
	resized := make([]T, capacity)

	walk := q.front
	for i := 0; i < q.size; i++ {
		resized[i] = q.elements[walk]
		walk = (walk + 1) % len(q.elements)
	}

	q.elements = resized
	q.front = 0
}

// Elements returns the elements in FIFO order.
func (q *ArrayQueue[T]) Elements() []T {
	elements := make([]T, 0, q.size)
	for i := 0; i < q.size; i++ {
		elements = append(elements, q.elements[(q.front+i)%len(q.elements)])
	}
	return elements
}

// ForEachElem calls fn on each element in FIFO order and stops at the first
// error, which is returned.
func (q *ArrayQueue[T]) ForEachElem(fn func(i int, e T) error) error {
	for i := 0; i < q.size; i++ {
		if err := fn(i, q.elements[(q.front+i)%len(q.elements)]); err != nil {
			return err
		}
	}
	return nil
}

func (q *ArrayQueue[T]) String() string {
	return formatQueue("ArrayQueue", q.Elements())
}

func formatQueue[T any](name string, elements []T) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('[')
	for i, e := range elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}
