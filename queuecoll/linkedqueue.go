package queuecoll

import (
	"errors"
	"fmt"

	"github.com/inoxlang/seqds/collcommon"
	"github.com/inoxlang/seqds/internal/utils"
)

// ErrOutOfRangeDequeueCount is returned by DequeueN when the requested count
// is negative or exceeds the size of the queue.
var ErrOutOfRangeDequeueCount = errors.New("out of range dequeue count")

var _ collcommon.Queue[int] = (*LinkedQueue[int])(nil)

// LinkedQueue is a singly linked FIFO container with head and tail pointers:
// values are enqueued at the tail and dequeued at the head. The zero value is
// an empty queue ready to use.
type LinkedQueue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

type node[T any] struct {
	element T
	next    *node[T]
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue adds a value to the back of the queue.
func (q *LinkedQueue[T]) Enqueue(value T) {
	newest := &node[T]{element: value}

	if q.tail == nil {
		q.head = newest
	} else {
		q.tail.next = newest
	}
	q.tail = newest
	q.size++
}

// EnqueueAll adds zero or more values to the back of the queue.
func (q *LinkedQueue[T]) EnqueueAll(values ...T) {
	for _, value := range values {
		q.Enqueue(value)
	}
}

// Dequeue removes the value at the front of the queue and returns it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	var zero T

	if q.head == nil {
		return zero, collcommon.ErrEmpty
	}

	front := q.head
	q.head = front.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	element := front.element
	front.element = zero //release the reference
	front.next = nil

	return element, nil
}

// DequeueN removes the n front values of the queue and returns them in
// removal order.
func (q *LinkedQueue[T]) DequeueN(n int) ([]T, error) {
	if n < 0 || n > q.size {
		return nil, fmt.Errorf("%w: %d (size is %d)", ErrOutOfRangeDequeueCount, n, q.size)
	}

	dequeued := make([]T, 0, n)
	for i := 0; i < n; i++ {
		dequeued = append(dequeued, utils.Must(q.Dequeue()))
	}
	return dequeued, nil
}

// First returns the value at the front of the queue without removing it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *LinkedQueue[T]) First() (T, error) {
	if q.head == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return q.head.element, nil
}

// Last returns the value at the back of the queue without removing it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *LinkedQueue[T]) Last() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return q.tail.element, nil
}

// Len returns the number of elements within the queue.
func (q *LinkedQueue[T]) Len() int {
	return q.size
}

// IsEmpty returns true if the queue does not contain any elements.
func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Clear removes all elements from the queue.
func (q *LinkedQueue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.size = 0
}

// Copy returns an independent queue holding the same elements.
func (q *LinkedQueue[T]) Copy() *LinkedQueue[T] {
	queueCopy := NewLinkedQueue[T]()
	for n := q.head; n != nil; n = n.next {
		queueCopy.Enqueue(n.element)
	}
	return queueCopy
}

// Reverse inverts the order of the elements in place: the front element
// becomes the back one. No element is copied, only links change.
func (q *LinkedQueue[T]) Reverse() {
	var prev *node[T]

	curr := q.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	q.head, q.tail = q.tail, q.head
}

// ForEachElem calls fn on each element in FIFO order and stops at the first
// error, which is returned.
func (q *LinkedQueue[T]) ForEachElem(fn func(i int, e T) error) error {
	i := 0
	for n := q.head; n != nil; n = n.next {
		if err := fn(i, n.element); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Elements returns the elements in FIFO order.
func (q *LinkedQueue[T]) Elements() []T {
	elements := make([]T, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		elements = append(elements, n.element)
	}
	return elements
}

func (q *LinkedQueue[T]) String() string {
	return formatQueue("LinkedQueue", q.Elements())
}
