package listcoll

import (
	"errors"
	"testing"

	"github.com/inoxlang/seqds/collcommon"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {

	t.Run("a new chain only contains the sentinels", func(t *testing.T) {
		c := newChain[int]()

		assert.Zero(t, c.size())
		assert.True(t, c.empty())
		assert.Same(t, c.trailer, c.header.next)
		assert.Same(t, c.header, c.trailer.prev)
	})

	t.Run("insertBetween", func(t *testing.T) {
		c := newChain[int]()

		n := c.insertBetween(3, c.header, c.trailer)
		assert.Equal(t, 3, n.element)
		assert.Equal(t, 1, c.size())
		assert.False(t, c.empty())

		//the node is linked to both sentinels
		assert.Same(t, n, c.header.next)
		assert.Same(t, n, c.trailer.prev)
		assert.Same(t, c.header, n.prev)
		assert.Same(t, c.trailer, n.next)

		//insert before the existing node
		first := c.insertBetween(2, c.header, n)
		assert.Equal(t, 2, c.size())
		assert.Same(t, first, c.header.next)
		assert.Same(t, first, n.prev)
		assert.Same(t, n, first.next)
	})

	t.Run("deleteNode", func(t *testing.T) {
		c := newChain[int]()
		first := c.insertBetween(1, c.header, c.trailer)
		second := c.insertBetween(2, first, c.trailer)

		element, err := c.deleteNode(first)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 1, element)
		assert.Equal(t, 1, c.size())

		//the chain is still consistent in both directions
		assert.Same(t, second, c.header.next)
		assert.Same(t, c.header, second.prev)

		//the removed node is fully zeroed
		assert.Nil(t, first.prev)
		assert.Nil(t, first.next)
		assert.Zero(t, first.element)
	})

	t.Run("deleteNode on an empty chain", func(t *testing.T) {
		c := newChain[int]()
		n := c.insertBetween(1, c.header, c.trailer)
		_, err := c.deleteNode(n)
		if !assert.NoError(t, err) {
			return
		}

		_, err = c.deleteNode(n)
		assert.ErrorIs(t, err, collcommon.ErrEmpty)
		assert.Zero(t, c.size())
	})

	t.Run("forEachElement", func(t *testing.T) {
		c := newChain[string]()
		a := c.insertBetween("a", c.header, c.trailer)
		b := c.insertBetween("b", a, c.trailer)
		c.insertBetween("c", b, c.trailer)

		var elements []string
		err := c.forEachElement(func(e string) error {
			elements = append(elements, e)
			return nil
		})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, []string{"a", "b", "c"}, elements)

		//the first error stops the iteration
		stop := errors.New("stop")
		elements = nil
		err = c.forEachElement(func(e string) error {
			elements = append(elements, e)
			if e == "b" {
				return stop
			}
			return nil
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, []string{"a", "b"}, elements)
	})
}
