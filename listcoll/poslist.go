// Package listcoll implements a positional list: an unbounded sequence whose
// elements are designated by long-lived Position values instead of indices.
// The underlying structure is a doubly linked chain bounded by two sentinel
// nodes, so every operation at a known position runs in O(1).
package listcoll

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrInvalidPositionType is returned when a nil or zero Position is passed
	// to a position-relative operation.
	ErrInvalidPositionType = errors.New("invalid position: not a proper position value")

	// ErrInvalidPosition is returned when a Position of another list is passed
	// to a position-relative operation; the message carries both list IDs.
	ErrInvalidPosition = errors.New("invalid position: the position belongs to another list")

	// ErrStalePosition is returned when the element designated by a Position
	// has been deleted.
	ErrStalePosition = errors.New("stale position: the element was deleted")
)

// A PositionalList is an unbounded sequence of elements with position-based
// access. Insertion and deletion before/after a known Position, at the front
// and at the back are all O(1).
//
// The zero value is not usable, use NewPositionalList. A PositionalList is
// not safe for concurrent use.
type PositionalList[T any] struct {
	chain *chain[T]
	id    ulid.ULID
}

func NewPositionalList[T any]() *PositionalList[T] {
	return &PositionalList[T]{
		chain: newChain[T](),
		id:    ulid.Make(),
	}
}

// ID returns the identity of the list; it only serves to tell lists apart in
// error messages and logs.
func (l *PositionalList[T]) ID() string {
	return l.id.String()
}

// Len returns the number of elements in the list.
func (l *PositionalList[T]) Len() int {
	return l.chain.size()
}

func (l *PositionalList[T]) IsEmpty() bool {
	return l.chain.empty()
}

// validate is the sole gate before every position-relative operation: it
// returns the node designated by p if p is a live position of l, and fails
// before any structural change otherwise.
func (l *PositionalList[T]) validate(p *Position[T]) (*node[T], error) {
	if p == nil || p.node == nil {
		return nil, ErrInvalidPositionType
	}
	if p.list != l {
		return nil, fmt.Errorf("%w (list %s, not %s)", ErrInvalidPosition, p.list.ID(), l.ID())
	}
	if p.node.next == nil { //convention for deleted nodes
		return nil, ErrStalePosition
	}
	return p.node, nil
}

// makePosition wraps n in a Position, or returns nil if n is a sentinel:
// there is no position before the first element or after the last one.
func (l *PositionalList[T]) makePosition(n *node[T]) *Position[T] {
	if n == l.chain.header || n == l.chain.trailer {
		return nil
	}
	return &Position[T]{list: l, node: n}
}

// First returns the position of the first element, or nil if the list is empty.
func (l *PositionalList[T]) First() *Position[T] {
	return l.makePosition(l.chain.firstNode())
}

// Last returns the position of the last element, or nil if the list is empty.
func (l *PositionalList[T]) Last() *Position[T] {
	return l.makePosition(l.chain.lastNode())
}

// Before returns the position immediately before p, or nil if p is the first
// position.
func (l *PositionalList[T]) Before(p *Position[T]) (*Position[T], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	return l.makePosition(n.prev), nil
}

// After returns the position immediately after p, or nil if p is the last
// position.
func (l *PositionalList[T]) After(p *Position[T]) (*Position[T], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	return l.makePosition(n.next), nil
}

// AddFirst inserts element at the front of the list and returns its position.
func (l *PositionalList[T]) AddFirst(element T) *Position[T] {
	return l.makePosition(l.chain.insertBetween(element, l.chain.header, l.chain.header.next))
}

// AddLast inserts element at the back of the list and returns its position.
func (l *PositionalList[T]) AddLast(element T) *Position[T] {
	return l.makePosition(l.chain.insertBetween(element, l.chain.trailer.prev, l.chain.trailer))
}

// AddBefore inserts element just before p and returns the position of the new
// element.
func (l *PositionalList[T]) AddBefore(p *Position[T], element T) (*Position[T], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	return l.makePosition(l.chain.insertBetween(element, n.prev, n)), nil
}

// AddAfter inserts element just after p and returns the position of the new
// element.
func (l *PositionalList[T]) AddAfter(p *Position[T], element T) (*Position[T], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	return l.makePosition(l.chain.insertBetween(element, n, n.next)), nil
}

// Delete removes the element at p and returns it. p and every other Position
// designating the same element become stale; all other positions stay valid.
func (l *PositionalList[T]) Delete(p *Position[T]) (T, error) {
	n, err := l.validate(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.chain.deleteNode(n)
}

// Replace stores element at p and returns the replaced element. p remains
// valid.
func (l *PositionalList[T]) Replace(p *Position[T], element T) (T, error) {
	n, err := l.validate(p)
	if err != nil {
		var zero T
		return zero, err
	}
	previous := n.element
	n.element = element
	return previous, nil
}

// Elements returns the elements in list order.
func (l *PositionalList[T]) Elements() []T {
	elements := make([]T, 0, l.chain.size())
	l.chain.forEachElement(func(e T) error {
		elements = append(elements, e)
		return nil
	})
	return elements
}

// ForEachElem calls fn on each element in list order and stops at the first
// error, which is returned. The list should not be mutated during the
// iteration.
func (l *PositionalList[T]) ForEachElem(fn func(i int, e T) error) error {
	i := 0
	return l.chain.forEachElement(func(e T) error {
		err := fn(i, e)
		i++
		return err
	})
}

// String returns an ordered dump of the list for debugging purposes; the
// format is not stable.
func (l *PositionalList[T]) String() string {
	var b strings.Builder
	b.WriteString("PositionalList[")

	first := true
	l.chain.forEachElement(func(e T) error {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", e)
		return nil
	})

	b.WriteByte(']')
	return b.String()
}
