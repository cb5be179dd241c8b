// Package stackcoll implements LIFO containers: a slice-backed ArrayStack and
// a singly linked LinkedStack.
package stackcoll

import (
	"fmt"
	"slices"
	"strings"

	"github.com/inoxlang/seqds/collcommon"
)

var _ collcommon.Stack[int] = (*ArrayStack[int])(nil)

// ArrayStack is a slice-backed LIFO container. The zero value is an empty
// stack ready to use.
type ArrayStack[T any] struct {
	elements []T
}

func NewArrayStack[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{}
}

// Push adds a value on top of the stack.
func (s *ArrayStack[T]) Push(value T) {
	s.elements = append(s.elements, value)
}

// Pop removes the value on top of the stack and returns it,
// it returns collcommon.ErrEmpty if the stack is empty.
func (s *ArrayStack[T]) Pop() (T, error) {
	var zero T

	if len(s.elements) == 0 {
		return zero, collcommon.ErrEmpty
	}

	top := s.elements[len(s.elements)-1]
	s.elements[len(s.elements)-1] = zero //release the reference
	s.elements = s.elements[:len(s.elements)-1]
	return top, nil
}

// Top returns the value on top of the stack without removing it,
// it returns collcommon.ErrEmpty if the stack is empty.
func (s *ArrayStack[T]) Top() (T, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return s.elements[len(s.elements)-1], nil
}

// Len returns the number of elements within the stack.
func (s *ArrayStack[T]) Len() int {
	return len(s.elements)
}

// IsEmpty returns true if the stack does not contain any elements.
func (s *ArrayStack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Clear removes all elements from the stack.
func (s *ArrayStack[T]) Clear() {
	var zero T
	for i := range s.elements {
		s.elements[i] = zero
	}
	s.elements = s.elements[:0]
}

// Elements returns the elements from the bottom to the top of the stack.
func (s *ArrayStack[T]) Elements() []T {
	return slices.Clone(s.elements)
}

func (s *ArrayStack[T]) String() string {
	var b strings.Builder
	b.WriteString("ArrayStack[")
	for i, e := range s.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}
