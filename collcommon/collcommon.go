// Package collcommon defines the error kinds and the contracts shared by the
// containers of this module.
package collcommon

import "errors"

var (
	// ErrEmpty is returned by read and remove operations performed on a container
	// that holds zero elements. The error is always detected before any mutation.
	ErrEmpty = errors.New("empty container")

	// ErrFull is returned by fixed-capacity containers when an addition would
	// exceed the capacity.
	ErrFull = errors.New("full container")

	// ErrInvalidCapacity is the panic value of constructors that are given a
	// capacity smaller than one.
	ErrInvalidCapacity = errors.New("invalid capacity: at least one element should be storable")
)

// Stack is a last-in first-out container. Pop and Top return ErrEmpty if the
// stack is empty.
type Stack[T any] interface {
	Push(value T)
	Pop() (T, error)
	Top() (T, error)
	Len() int
	IsEmpty() bool
}

// Queue is a first-in first-out container. Dequeue and First return ErrEmpty
// if the queue is empty. Fixed-capacity queues do not implement Queue because
// their additions can fail.
type Queue[T any] interface {
	Enqueue(value T)
	Dequeue() (T, error)
	First() (T, error)
	Len() int
	IsEmpty() bool
}

// Deque is a double-ended queue. Deletions and reads return ErrEmpty if the
// deque is empty.
type Deque[T any] interface {
	AddFirst(value T)
	AddLast(value T)
	DeleteFirst() (T, error)
	DeleteLast() (T, error)
	First() (T, error)
	Last() (T, error)
	Len() int
	IsEmpty() bool
}
