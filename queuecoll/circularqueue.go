package queuecoll

import (
	"github.com/inoxlang/seqds/collcommon"
)

var _ collcommon.Queue[int] = (*CircularQueue[int])(nil)

// CircularQueue is a FIFO container backed by a circularly linked chain of
// nodes: the single retained pointer references the back node and the back
// node links to the front node. The circular structure makes Rotate a
// constant-time, allocation-free operation. The zero value is an empty queue
// ready to use.
type CircularQueue[T any] struct {
	tail *node[T]
	size int
}

func NewCircularQueue[T any]() *CircularQueue[T] {
	return &CircularQueue[T]{}
}

// Enqueue adds a value to the back of the queue.
func (q *CircularQueue[T]) Enqueue(value T) {
	newest := &node[T]{element: value}

	if q.tail == nil {
		newest.next = newest //single node: the circle is itself
	} else {
		newest.next = q.tail.next
		q.tail.next = newest
	}
	q.tail = newest
	q.size++
}

// Dequeue removes the value at the front of the queue and returns it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *CircularQueue[T]) Dequeue() (T, error) {
	var zero T

	if q.tail == nil {
		return zero, collcommon.ErrEmpty
	}

	front := q.tail.next
	if q.size == 1 {
		q.tail = nil
	} else {
		q.tail.next = front.next
	}
	q.size--

	element := front.element
	front.element = zero //release the reference
	front.next = nil

	return element, nil
}

// First returns the value at the front of the queue without removing it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *CircularQueue[T]) First() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return q.tail.next.element, nil
}

// Last returns the value at the back of the queue without removing it,
// it returns collcommon.ErrEmpty if the queue is empty.
func (q *CircularQueue[T]) Last() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return q.tail.element, nil
}

// Len returns the number of elements within the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// IsEmpty returns true if the queue does not contain any elements.
func (q *CircularQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Rotate moves the front element to the back of the queue without any
// allocation: only the tail pointer moves. Rotating a queue with less than
// two elements is a no-op.
func (q *CircularQueue[T]) Rotate() {
	if q.size > 1 {
		q.tail = q.tail.next
	}
}

// Reverse inverts the order of the elements in place: the front element
// becomes the back one. No element is copied, only links change.
func (q *CircularQueue[T]) Reverse() {
	if q.size < 2 {
		return
	}

	head := q.tail.next

	prev := q.tail
	curr := head
	for i := 0; i < q.size; i++ {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	q.tail = head //the old front is the new back
}

// Clear removes all elements from the queue.
func (q *CircularQueue[T]) Clear() {
	q.tail = nil
	q.size = 0
}

// Copy returns an independent queue holding the same elements.
func (q *CircularQueue[T]) Copy() *CircularQueue[T] {
	queueCopy := NewCircularQueue[T]()
	q.forEachNode(func(n *node[T]) {
		queueCopy.Enqueue(n.element)
	})
	return queueCopy
}

// Elements returns the elements in FIFO order.
func (q *CircularQueue[T]) Elements() []T {
	elements := make([]T, 0, q.size)
	q.forEachNode(func(n *node[T]) {
		elements = append(elements, n.element)
	})
	return elements
}

func (q *CircularQueue[T]) forEachNode(fn func(n *node[T])) {
	if q.tail == nil {
		return
	}

	curr := q.tail.next
	for {
		fn(curr)
		if curr == q.tail {
			return
		}
		curr = curr.next
	}
}

func (q *CircularQueue[T]) String() string {
	return formatQueue("CircularQueue", q.Elements())
}

// EqualQueues returns true if a and b hold equal elements in the same order.
func EqualQueues[T comparable](a, b *CircularQueue[T]) bool {
	if a.size != b.size {
		return false
	}
	if a.size == 0 {
		return true
	}

	nodeA := a.tail.next
	nodeB := b.tail.next
	for i := 0; i < a.size; i++ {
		if nodeA.element != nodeB.element {
			return false
		}
		nodeA = nodeA.next
		nodeB = nodeB.next
	}
	return true
}
