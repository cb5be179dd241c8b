package stackcoll

import (
	"testing"

	"github.com/inoxlang/seqds/collcommon"
	"github.com/stretchr/testify/assert"
)

func TestArrayStack(t *testing.T) {

	t.Run("a new stack is empty", func(t *testing.T) {
		s := NewArrayStack[int]()

		assert.Zero(t, s.Len())
		assert.True(t, s.IsEmpty())

		_, err := s.Pop()
		assert.ErrorIs(t, err, collcommon.ErrEmpty)

		_, err = s.Top()
		assert.ErrorIs(t, err, collcommon.ErrEmpty)
	})

	t.Run("Push and Pop are LIFO", func(t *testing.T) {
		s := NewArrayStack[int]()
		s.Push(1)
		s.Push(2)
		s.Push(3)

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []int{1, 2, 3}, s.Elements())

		top, err := s.Top()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 3, top)
		assert.Equal(t, 3, s.Len()) //Top does not remove

		popped, err := s.Pop()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 3, popped)

		popped, err = s.Pop()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 2, popped)

		popped, err = s.Pop()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 1, popped)

		assert.True(t, s.IsEmpty())
		_, err = s.Pop()
		assert.ErrorIs(t, err, collcommon.ErrEmpty)
	})

	t.Run("Clear", func(t *testing.T) {
		s := NewArrayStack[string]()
		s.Push("a")
		s.Push("b")

		s.Clear()

		assert.Zero(t, s.Len())
		assert.True(t, s.IsEmpty())
		assert.Empty(t, s.Elements())

		//the stack is still usable
		s.Push("c")
		assert.Equal(t, []string{"c"}, s.Elements())
	})

	t.Run("Elements is a snapshot", func(t *testing.T) {
		s := NewArrayStack[int]()
		s.Push(1)

		elements := s.Elements()
		s.Push(2)

		assert.Equal(t, []int{1}, elements)
	})

	t.Run("String", func(t *testing.T) {
		s := NewArrayStack[int]()
		assert.Equal(t, "ArrayStack[]", s.String())

		s.Push(1)
		s.Push(2)
		assert.Equal(t, "ArrayStack[1 2]", s.String())
	})
}
