package stackcoll

import (
	"testing"

	"github.com/inoxlang/seqds/collcommon"
	"github.com/inoxlang/seqds/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestLinkedStack(t *testing.T) {

	t.Run("a new stack is empty", func(t *testing.T) {
		s := NewLinkedStack[int]()

		assert.Zero(t, s.Len())
		assert.True(t, s.IsEmpty())

		_, err := s.Pop()
		assert.ErrorIs(t, err, collcommon.ErrEmpty)

		_, err = s.Top()
		assert.ErrorIs(t, err, collcommon.ErrEmpty)
	})

	t.Run("Push and Pop are LIFO", func(t *testing.T) {
		s := NewLinkedStack[int]()
		s.Push(1)
		s.Push(2)

		assert.Equal(t, 2, s.Len())
		assert.Equal(t, 2, utils.Must(s.Top()))

		assert.Equal(t, 2, utils.Must(s.Pop()))
		assert.Equal(t, 1, utils.Must(s.Pop()))
		assert.True(t, s.IsEmpty())
	})

	t.Run("PushAll puts the last value on top", func(t *testing.T) {
		s := NewLinkedStack[int]()
		s.PushAll(1, 2, 3)

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 3, utils.Must(s.Top()))
		assert.Equal(t, []int{1, 2, 3}, s.Elements())
	})

	t.Run("PopN", func(t *testing.T) {
		t.Run("returns the values in removal order", func(t *testing.T) {
			s := NewLinkedStack[int]()
			s.PushAll(1, 2, 3, 4)

			popped, err := s.PopN(3)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, []int{4, 3, 2}, popped)
			assert.Equal(t, 1, s.Len())
		})

		t.Run("zero", func(t *testing.T) {
			s := NewLinkedStack[int]()
			s.Push(1)

			popped, err := s.PopN(0)
			if !assert.NoError(t, err) {
				return
			}
			assert.Empty(t, popped)
			assert.Equal(t, 1, s.Len())
		})

		t.Run("negative count", func(t *testing.T) {
			s := NewLinkedStack[int]()
			s.Push(1)

			_, err := s.PopN(-1)
			assert.ErrorIs(t, err, ErrOutOfRangePopCount)
			assert.Equal(t, 1, s.Len())
		})

		t.Run("count greater than the size", func(t *testing.T) {
			s := NewLinkedStack[int]()
			s.Push(1)

			_, err := s.PopN(2)
			assert.ErrorIs(t, err, ErrOutOfRangePopCount)
			assert.Equal(t, 1, s.Len())
		})
	})

	t.Run("Copy returns an independent stack", func(t *testing.T) {
		s := NewLinkedStack[int]()
		s.PushAll(1, 2, 3)

		stackCopy := s.Copy()
		assert.Equal(t, s.Elements(), stackCopy.Elements())

		utils.Must(stackCopy.Pop())
		stackCopy.Push(9)

		assert.Equal(t, []int{1, 2, 3}, s.Elements())
		assert.Equal(t, []int{1, 2, 9}, stackCopy.Elements())
	})

	t.Run("Reverse inverts the element order in place", func(t *testing.T) {
		s := NewLinkedStack[int]()
		s.PushAll(1, 2, 3)
		elements := s.Elements()

		s.Reverse()

		assert.Equal(t, utils.ReversedSlice(elements), s.Elements())
		assert.Equal(t, 1, utils.Must(s.Top()))
		assert.Equal(t, 3, s.Len())

		//reversing an empty stack is a no-op
		empty := NewLinkedStack[int]()
		empty.Reverse()
		assert.True(t, empty.IsEmpty())
	})

	t.Run("ForEachElem iterates in pop order", func(t *testing.T) {
		s := NewLinkedStack[string]()
		s.PushAll("bottom", "middle", "top")

		var elements []string
		err := s.ForEachElem(func(i int, e string) error {
			elements = append(elements, e)
			return nil
		})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, []string{"top", "middle", "bottom"}, elements)
	})

	t.Run("Clear", func(t *testing.T) {
		s := NewLinkedStack[int]()
		s.PushAll(1, 2)

		s.Clear()

		assert.Zero(t, s.Len())
		assert.True(t, s.IsEmpty())

		s.Push(3)
		assert.Equal(t, []int{3}, s.Elements())
	})

	t.Run("String", func(t *testing.T) {
		s := NewLinkedStack[int]()
		s.PushAll(1, 2)
		assert.Equal(t, "LinkedStack[1 2]", s.String())
	})
}
