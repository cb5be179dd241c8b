package listcoll

import (
	"runtime"
	"testing"

	"github.com/inoxlang/seqds/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestPositionalList(t *testing.T) {

	t.Run("a new list is empty", func(t *testing.T) {
		list := NewPositionalList[int]()

		assert.Zero(t, list.Len())
		assert.True(t, list.IsEmpty())
		assert.Nil(t, list.First())
		assert.Nil(t, list.Last())
		assert.Empty(t, list.Elements())
		assert.NotEmpty(t, list.ID())
	})

	t.Run("AddFirst", func(t *testing.T) {
		list := NewPositionalList[int]()

		p := list.AddFirst(3)
		if !assert.NotNil(t, p) {
			return
		}
		assert.Equal(t, 3, p.Element())
		assert.Equal(t, 1, list.Len())
		assert.True(t, list.First().Equal(p))
		assert.True(t, list.Last().Equal(p))

		//a second front insertion shifts p to the second place but does not invalidate it
		front := list.AddFirst(4)
		assert.True(t, list.First().Equal(front))
		assert.True(t, list.Last().Equal(p))
		assert.Equal(t, 3, p.Element())
		assert.Equal(t, []int{4, 3}, list.Elements())
	})

	t.Run("AddLast", func(t *testing.T) {
		list := NewPositionalList[int]()

		p := list.AddLast(3)
		if !assert.NotNil(t, p) {
			return
		}
		assert.Equal(t, 3, p.Element())
		assert.True(t, list.First().Equal(p))
		assert.True(t, list.Last().Equal(p))

		back := list.AddLast(4)
		assert.True(t, list.First().Equal(p))
		assert.True(t, list.Last().Equal(back))
		assert.Equal(t, []int{3, 4}, list.Elements())
	})

	t.Run("Len is the number of additions minus the number of deletions", func(t *testing.T) {
		list := NewPositionalList[int]()

		first := list.AddFirst(0)
		list.AddLast(1)
		second := list.AddFirst(2)
		list.AddLast(3)
		assert.Equal(t, 4, list.Len())

		utils.Must(list.Delete(first))
		assert.Equal(t, 3, list.Len())

		list.AddLast(4)
		utils.Must(list.Delete(second))
		assert.Equal(t, 3, list.Len())
	})

	t.Run("Before and After", func(t *testing.T) {
		list := NewPositionalList[string]()
		a := list.AddLast("a")
		b := list.AddLast("b")
		c := list.AddLast("c")

		before, err := list.Before(b)
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, before.Equal(a))

		after, err := list.After(b)
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, after.Equal(c))

		//there is no position before the first element
		before, err = list.Before(a)
		if !assert.NoError(t, err) {
			return
		}
		assert.Nil(t, before)

		//there is no position after the last element
		after, err = list.After(c)
		if !assert.NoError(t, err) {
			return
		}
		assert.Nil(t, after)
	})

	t.Run("AddBefore and AddAfter", func(t *testing.T) {
		list := NewPositionalList[string]()
		a := list.AddLast("a")
		c := list.AddLast("c")

		b, err := list.AddBefore(c, "b")
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "b", b.Element())
		assert.Equal(t, []string{"a", "b", "c"}, list.Elements())

		d, err := list.AddAfter(c, "d")
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "d", d.Element())
		assert.Equal(t, []string{"a", "b", "c", "d"}, list.Elements())

		//neighbors of b are a and c
		assert.True(t, utils.Must(list.Before(b)).Equal(a))
		assert.True(t, utils.Must(list.After(b)).Equal(c))
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("returns the deleted element", func(t *testing.T) {
			list := NewPositionalList[int]()
			list.AddLast(1)
			p := list.AddLast(2)
			list.AddLast(3)

			element, err := list.Delete(p)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, 2, element)
			assert.Equal(t, []int{1, 3}, list.Elements())
		})

		t.Run("deleting the first element promotes the second", func(t *testing.T) {
			list := NewPositionalList[int]()
			list.AddLast(1)
			second := list.AddLast(2)

			element, err := list.Delete(list.First())
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, 1, element)
			assert.True(t, list.First().Equal(second))
			assert.Equal(t, 2, list.First().Element())
		})

		t.Run("every position-relative operation fails on a deleted position", func(t *testing.T) {
			list := NewPositionalList[int]()
			list.AddLast(1)
			p := list.AddLast(2)
			list.AddLast(3)

			utils.Must(list.Delete(p))

			_, err := list.Replace(p, 9)
			assert.ErrorIs(t, err, ErrStalePosition)

			_, err = list.Before(p)
			assert.ErrorIs(t, err, ErrStalePosition)

			_, err = list.After(p)
			assert.ErrorIs(t, err, ErrStalePosition)

			_, err = list.AddBefore(p, 9)
			assert.ErrorIs(t, err, ErrStalePosition)

			_, err = list.AddAfter(p, 9)
			assert.ErrorIs(t, err, ErrStalePosition)

			_, err = list.Delete(p)
			assert.ErrorIs(t, err, ErrStalePosition)

			//the failures left the list untouched
			assert.Equal(t, []int{1, 3}, list.Elements())
			assert.Equal(t, 2, list.Len())
		})

		t.Run("deletion only invalidates positions of the deleted element", func(t *testing.T) {
			list := NewPositionalList[int]()
			a := list.AddLast(1)
			b := list.AddLast(2)

			//second position referencing the same element as b
			bDuplicate, err := list.After(a)
			if !assert.NoError(t, err) {
				return
			}
			assert.True(t, bDuplicate.Equal(b))

			utils.Must(list.Delete(b))

			//the duplicate references the same deleted node
			_, err = list.Replace(bDuplicate, 9)
			assert.ErrorIs(t, err, ErrStalePosition)

			//a is still valid
			previous, err := list.Replace(a, 10)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, 1, previous)
		})
	})

	t.Run("Replace", func(t *testing.T) {
		list := NewPositionalList[int]()
		list.AddLast(1)
		p := list.AddLast(2)
		list.AddLast(3)

		previous, err := list.Replace(p, 20)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 2, previous)
		assert.Equal(t, 20, p.Element())
		assert.Equal(t, 3, list.Len())
		assert.Equal(t, []int{1, 20, 3}, list.Elements())

		//p stayed valid
		previous, err = list.Replace(p, 200)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 20, previous)
	})

	t.Run("positions are rejected by other lists", func(t *testing.T) {
		listA := NewPositionalList[int]()
		listB := NewPositionalList[int]()
		a := listA.AddLast(1)
		listB.AddLast(2)

		_, err := listB.Delete(a)
		if !assert.ErrorIs(t, err, ErrInvalidPosition) {
			return
		}

		//the message identifies both lists
		assert.ErrorContains(t, err, listA.ID())
		assert.ErrorContains(t, err, listB.ID())

		//neither list was mutated and a is still valid
		assert.Equal(t, []int{1}, listA.Elements())
		assert.Equal(t, []int{2}, listB.Elements())
		assert.Equal(t, 1, a.Element())
	})

	t.Run("nil and zero positions are rejected", func(t *testing.T) {
		list := NewPositionalList[int]()
		list.AddLast(1)

		_, err := list.Delete(nil)
		assert.ErrorIs(t, err, ErrInvalidPositionType)

		_, err = list.Replace(nil, 2)
		assert.ErrorIs(t, err, ErrInvalidPositionType)

		_, err = list.After(nil)
		assert.ErrorIs(t, err, ErrInvalidPositionType)

		_, err = list.AddBefore(nil, 2)
		assert.ErrorIs(t, err, ErrInvalidPositionType)

		_, err = list.Delete(&Position[int]{})
		assert.ErrorIs(t, err, ErrInvalidPositionType)

		assert.Equal(t, []int{1}, list.Elements())
	})

	t.Run("position equality ignores element equality", func(t *testing.T) {
		list := NewPositionalList[int]()
		p := list.AddLast(1)
		q := list.AddLast(1)

		assert.True(t, p.Equal(list.First()))
		assert.False(t, p.Equal(q))
		assert.False(t, p.Equal(nil))

		var nilPosition *Position[int]
		assert.True(t, nilPosition.Equal(nil))
	})

	t.Run("scenario", func(t *testing.T) {
		list := NewPositionalList[int]()
		list.AddLast(10)
		list.AddLast(20)
		list.AddFirst(5)

		assert.Equal(t, []int{5, 10, 20}, list.Elements())
		assert.Equal(t, 3, list.Len())

		deleted, err := list.Delete(list.Last())
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 20, deleted)
		assert.Equal(t, []int{5, 10}, list.Elements())
	})

	t.Run("ForEachElem", func(t *testing.T) {
		list := NewPositionalList[string]()
		list.AddLast("a")
		list.AddLast("b")

		var indexes []int
		var elements []string

		err := list.ForEachElem(func(i int, e string) error {
			indexes = append(indexes, i)
			elements = append(elements, e)
			return nil
		})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, []int{0, 1}, indexes)
		assert.Equal(t, []string{"a", "b"}, elements)
	})

	t.Run("String", func(t *testing.T) {
		list := NewPositionalList[int]()
		assert.Equal(t, "PositionalList[]", list.String())

		list.AddLast(1)
		list.AddLast(2)
		list.AddLast(3)
		assert.Equal(t, "PositionalList[1 2 3]", list.String())
	})

	t.Run("deleted elements are not kept alive by retained positions", func(t *testing.T) {
		startStats := new(runtime.MemStats)
		runtime.ReadMemStats(startStats)

		list := NewPositionalList[[]byte]()
		positions := make([]*Position[[]byte], 0, 10)

		for i := 0; i < 10; i++ {
			positions = append(positions, list.AddLast(make([]byte, 1_000_000)))
		}
		for _, p := range positions {
			utils.Must(list.Delete(p))
		}

		//the stale positions still reference the nodes: only the elements
		//should have been released.
		utils.AssertNoMemoryLeak(t, startStats, 500_000)
		runtime.KeepAlive(positions)
		runtime.KeepAlive(list)
	})
}
