package stackcoll

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inoxlang/seqds/collcommon"
	"github.com/inoxlang/seqds/internal/utils"
)

// ErrOutOfRangePopCount is returned by PopN when the requested count is
// negative or exceeds the size of the stack.
var ErrOutOfRangePopCount = errors.New("out of range pop count")

var _ collcommon.Stack[int] = (*LinkedStack[int])(nil)

// LinkedStack is a singly linked LIFO container: the head of the links is the
// top of the stack, so Push and Pop never move elements around. The zero
// value is an empty stack ready to use.
type LinkedStack[T any] struct {
	head *node[T]
	size int
}

type node[T any] struct {
	element T
	next    *node[T]
}

func NewLinkedStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Push adds a value on top of the stack.
func (s *LinkedStack[T]) Push(value T) {
	s.head = &node[T]{element: value, next: s.head}
	s.size++
}

// PushAll pushes the values in order: the last value ends up on top.
func (s *LinkedStack[T]) PushAll(values ...T) {
	for _, value := range values {
		s.Push(value)
	}
}

// Pop removes the value on top of the stack and returns it,
// it returns collcommon.ErrEmpty if the stack is empty.
func (s *LinkedStack[T]) Pop() (T, error) {
	var zero T

	if s.head == nil {
		return zero, collcommon.ErrEmpty
	}

	top := s.head
	s.head = top.next
	s.size--

	element := top.element
	top.element = zero //release the reference
	top.next = nil

	return element, nil
}

// PopN removes the n values on top of the stack and returns them in removal
// order: the previous top of the stack comes first.
func (s *LinkedStack[T]) PopN(n int) ([]T, error) {
	if n < 0 || n > s.size {
		return nil, fmt.Errorf("%w: %d (size is %d)", ErrOutOfRangePopCount, n, s.size)
	}

	popped := make([]T, 0, n)
	for i := 0; i < n; i++ {
		popped = append(popped, utils.Must(s.Pop()))
	}
	return popped, nil
}

// Top returns the value on top of the stack without removing it,
// it returns collcommon.ErrEmpty if the stack is empty.
func (s *LinkedStack[T]) Top() (T, error) {
	if s.head == nil {
		var zero T
		return zero, collcommon.ErrEmpty
	}
	return s.head.element, nil
}

// Len returns the number of elements within the stack.
func (s *LinkedStack[T]) Len() int {
	return s.size
}

// IsEmpty returns true if the stack does not contain any elements.
func (s *LinkedStack[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear removes all elements from the stack.
func (s *LinkedStack[T]) Clear() {
	s.head = nil
	s.size = 0
}

// Copy returns an independent stack holding the same elements.
func (s *LinkedStack[T]) Copy() *LinkedStack[T] {
	stackCopy := &LinkedStack[T]{size: s.size}

	var last *node[T]
	for n := s.head; n != nil; n = n.next {
		nodeCopy := &node[T]{element: n.element}
		if last == nil {
			stackCopy.head = nodeCopy
		} else {
			last.next = nodeCopy
		}
		last = nodeCopy
	}

	return stackCopy
}

// Reverse inverts the order of the elements in place: the bottom element
// becomes the top one. No element is copied, only links change.
func (s *LinkedStack[T]) Reverse() {
	var prev *node[T]

	curr := s.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	s.head = prev
}

// ForEachElem calls fn on each element in pop order (top first) and stops at
// the first error, which is returned.
func (s *LinkedStack[T]) ForEachElem(fn func(i int, e T) error) error {
	i := 0
	for n := s.head; n != nil; n = n.next {
		if err := fn(i, n.element); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Elements returns the elements from the bottom to the top of the stack.
func (s *LinkedStack[T]) Elements() []T {
	elements := make([]T, 0, s.size)
	for n := s.head; n != nil; n = n.next {
		elements = append(elements, n.element)
	}
	utils.Reverse(elements)
	return elements
}

func (s *LinkedStack[T]) String() string {
	var b strings.Builder
	b.WriteString("LinkedStack[")
	for i, e := range s.Elements() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}
