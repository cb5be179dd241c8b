package dequecoll

import (
	"github.com/inoxlang/seqds/collcommon"
	"github.com/inoxlang/seqds/listcoll"
)

var _ collcommon.Deque[int] = (*LinkedDeque[int])(nil)

// LinkedDeque is a double-ended queue stored in a listcoll.PositionalList:
// all operations are position lookups and insertions at the ends of the list,
// so additions and deletions are O(1) and never move elements.
type LinkedDeque[T any] struct {
	list *listcoll.PositionalList[T]
}

func NewLinkedDeque[T any]() *LinkedDeque[T] {
	return &LinkedDeque[T]{
		list: listcoll.NewPositionalList[T](),
	}
}

// AddFirst adds a value to the front of the deque.
func (d *LinkedDeque[T]) AddFirst(value T) {
	d.list.AddFirst(value)
}

// AddLast adds a value to the back of the deque.
func (d *LinkedDeque[T]) AddLast(value T) {
	d.list.AddLast(value)
}

// DeleteFirst removes the value at the front of the deque and returns it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *LinkedDeque[T]) DeleteFirst() (T, error) {
	first := d.list.First()
	if first == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return d.list.Delete(first)
}

// DeleteLast removes the value at the back of the deque and returns it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *LinkedDeque[T]) DeleteLast() (T, error) {
	last := d.list.Last()
	if last == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return d.list.Delete(last)
}

// First returns the value at the front of the deque without removing it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *LinkedDeque[T]) First() (T, error) {
	first := d.list.First()
	if first == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return first.Element(), nil
}

// Last returns the value at the back of the deque without removing it,
// it returns collcommon.ErrEmpty if the deque is empty.
func (d *LinkedDeque[T]) Last() (T, error) {
	last := d.list.Last()
	if last == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return last.Element(), nil
}

// Len returns the number of elements within the deque.
func (d *LinkedDeque[T]) Len() int {
	return d.list.Len()
}

// IsEmpty returns true if the deque does not contain any elements.
func (d *LinkedDeque[T]) IsEmpty() bool {
	return d.list.IsEmpty()
}

// Elements returns the elements in front-to-back order.
func (d *LinkedDeque[T]) Elements() []T {
	return d.list.Elements()
}

// ForEachElem calls fn on each element in front-to-back order and stops at
// the first error, which is returned.
func (d *LinkedDeque[T]) ForEachElem(fn func(i int, e T) error) error {
	return d.list.ForEachElem(fn)
}

func (d *LinkedDeque[T]) String() string {
	return formatDeque("LinkedDeque", d.Elements())
}
