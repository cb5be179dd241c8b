// Package dequecoll implements double-ended queues: a growable ring buffer
// (ArrayDeque), a fixed-capacity ring buffer (BoundedDeque) and a positional
// list based deque (LinkedDeque).
package dequecoll

import (
	"fmt"
	"strings"

	"github.com/inoxlang/seqds/collcommon"
	"github.com/inoxlang/seqds/internal/utils"
)

// DEFAULT_CAPACITY is the initial capacity of deques created by NewArrayDeque.
const DEFAULT_CAPACITY = 10

var _ collcommon.Deque[int] = (*ArrayDeque[int])(nil)

// ArrayDeque is a double-ended queue backed by a circular buffer that doubles
// its capacity when full. Deleted slots are zeroed so that the buffer does not
// keep removed elements alive.
type ArrayDeque[T any] struct {
	elements []T //len(elements) is the capacity
	front    int
	size     int
}

func NewArrayDeque[T any]() *ArrayDeque[T] {
	return NewArrayDequeWithCapacity[T](DEFAULT_CAPACITY)
}

func NewArrayDequeWithCapacity[T any](capacity int) *ArrayDeque[T] {
	return &ArrayDeque[T]{
		elements: make([]T, utils.Max(capacity, 1)),
	}
}

// AddFirst adds a value to the front of the deque, growing the buffer if it
// is full.
func (d *ArrayDeque[T]) AddFirst(value T) {
	if d.size == len(d.elements) {
		d.resize(2 * len(d.elements))
	}

	d.front = (d.front - 1 + len(d.elements)) % len(d.elements)
	d.elements[d.front] = value
	d.size++
}

// AddLast adds a value to the back of the deque, growing the buffer if it is
// full.
func (d *ArrayDeque[T]) AddLast(value T) {
	if d.size == len(d.elements) {
		d.resize(2 * len(d.elements))
	}

	avail := (d.front + d.size) % len(d.elements)
	d.elements[avail] = value
	d.size++
}

// DeleteFirst removes the value at the front of the deque and returns it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *ArrayDeque[T]) DeleteFirst() (T, error) {
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
func (d *ArrayDeque[T]) DeleteLast() (T, error) {
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
func (d *ArrayDeque[T]) First() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return d.elements[d.front], nil
}

// Last returns the value at the back of the deque without removing it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *ArrayDeque[T]) Last() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return d.elements[(d.front+d.size-1)%len(d.elements)], nil
}

// Len returns the number of elements within the deque.
func (d *ArrayDeque[T]) Len() int {
	return d.size
}

// IsEmpty returns true if the deque does not contain any elements.
func (d *ArrayDeque[T]) IsEmpty() bool {
	return d.size == 0
}

// Capacity returns the current capacity of the underlying buffer.
func (d *ArrayDeque[T]) Capacity() int {
	return len(d.elements)
}

// Clear removes all elements from the deque; the capacity is kept.
func (d *ArrayDeque[T]) Clear() {
	var zero T
	for i := 0; i < d.size; i++ {
		d.elements[(d.front+i)%len(d.elements)] = zero
	}
	d.front = 0
	d.size = 0
}

// resize reallocates the buffer with the given capacity and realigns the
// front of the deque to index 0.
func (d *ArrayDeque[T]) resize(capacity int) {
	resized := make([]T, capacity)

	walk := d.front
	for i := 0; i < d.size; i++ {
		resized[i] = d.elements[walk]
		walk = (walk + 1) % len(d.elements)
	}

	d.elements = resized
	d.front = 0
}

// Elements returns the elements in front-to-back order.
func (d *ArrayDeque[T]) Elements() []T {
	elements := make([]T, 0, d.size)
	for i := 0; i < d.size; i++ {
		elements = append(elements, d.elements[(d.front+i)%len(d.elements)])
	}
	return elements
}

// ForEachElem calls fn on each element in front-to-back order and stops at
// the first error, which is returned.
func (d *ArrayDeque[T]) ForEachElem(fn func(i int, e T) error) error {
	for i := 0; i < d.size; i++ {
		if err := fn(i, d.elements[(d.front+i)%len(d.elements)]); err != nil {
			return err
		}
	}
	return nil
}

func (d *ArrayDeque[T]) String() string {
	return formatDeque("ArrayDeque", d.Elements())
}

func formatDeque[T any](name string, elements []T) string {
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
