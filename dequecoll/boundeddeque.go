package dequecoll

import (
	"github.com/inoxlang/seqds/collcommon"
)

// BoundedDeque is a double-ended queue backed by a ring buffer of fixed
// capacity: additions fail with collcommon.ErrFull when the deque is full.
type BoundedDeque[T any] struct {
	elements []T //len(elements) is the capacity
	front    int
	size     int
}

// NewBoundedDeque creates a deque that can store up to capacity elements,
// it panics with collcommon.ErrInvalidCapacity if capacity is smaller than one.
func NewBoundedDeque[T any](capacity int) *BoundedDeque[T] {
	if capacity < 1 {
		panic(collcommon.ErrInvalidCapacity)
	}
	return &BoundedDeque[T]{
		elements: make([]T, capacity),
	}
}

// AddFirst adds a value to the front of the deque, it returns
// collcommon.ErrFull if the deque is full.
func (d *BoundedDeque[T]) AddFirst(value T) error {
	if d.size == len(d.elements) {
		return collcommon.ErrFull
	}

	d.front = (d.front - 1 + len(d.elements)) % len(d.elements)
	d.elements[d.front] = value
	d.size++
	return nil
}

// AddLast adds a value to the back of the deque, it returns
// collcommon.ErrFull if the deque is full.
func (d *BoundedDeque[T]) AddLast(value T) error {
	if d.size == len(d.elements) {
		return collcommon.ErrFull
	}

	avail := (d.front + d.size) % len(d.elements)
	d.elements[avail] = value
	d.size++
	return nil
}

// DeleteFirst removes the value at the front of the deque and returns it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *BoundedDeque[T]) DeleteFirst() (T, error) {
	var zero T

	if d.size == 0 {
		return zero, collcommon.ErrEmpty
	}

	value := d.elements[d.front]
	d.elements[d.front] = zero //release the reference
	d.front = (d.front + 1) % len(d.elements)
	d.size--
	return value, nil
}

// DeleteLast removes the value at the back of the deque and returns it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *BoundedDeque[T]) DeleteLast() (T, error) {
	var zero T

	if d.size == 0 {
		return zero, collcommon.ErrEmpty
	}

	back := (d.front + d.size - 1) % len(d.elements)
	value := d.elements[back]
	d.elements[back] = zero //release the reference
	d.size--
	return value, nil
}

// First returns the value at the front of the deque without removing it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *BoundedDeque[T]) First() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return d.elements[d.front], nil
}

// Last returns the value at the back of the deque without removing it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *BoundedDeque[T]) Last() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return d.elements[(d.front+d.size-1)%len(d.elements)], nil
}

// Len returns the number of elements within the deque.
func (d *BoundedDeque[T]) Len() int {
	return d.size
}

// Capacity returns the maximum number of elements the deque can store.
func (d *BoundedDeque[T]) Capacity() int {
	return len(d.elements)
}

// IsEmpty returns true if the deque does not contain any elements.
func (d *BoundedDeque[T]) IsEmpty() bool {
	return d.size == 0
}

// IsFull returns true if the deque cannot accept additional elements.
func (d *BoundedDeque[T]) IsFull() bool {
	return d.size == len(d.elements)
}

// Elements returns the elements in front-to-back order.
func (d *BoundedDeque[T]) Elements() []T {
	elements := make([]T, 0, d.size)
	for i := 0; i < d.size; i++ {
		elements = append(elements, d.elements[(d.front+i)%len(d.elements)])
	}
	return elements
}

func (d *BoundedDeque[T]) String() string {
	return formatDeque("BoundedDeque", d.Elements())
}
