package listcoll

import (
	"github.com/inoxlang/seqds/collcommon"
)

// A node belongs to exactly one chain. The sentinels are the only nodes of a
// live chain with a zero prev or next pointer; a fully zeroed node is a node
// that has been deleted.
type node[T any] struct {
	element T
	prev    *node[T]
	next    *node[T]
}

// chain is a doubly linked sequence of nodes bounded by two permanent
// sentinel nodes. The sentinels never hold an element and are never exposed;
// they remove all edge cases from splicing: every live node always has both
// neighbors.
type chain[T any] struct {
	header  *node[T]
	trailer *node[T]
	count   int
}

func newChain[T any]() *chain[T] {
	c := &chain[T]{
		header:  &node[T]{},
		trailer: &node[T]{},
	}
	c.header.next = c.trailer
	c.trailer.prev = c.header
	return c
}

func (c *chain[T]) size() int {
	return c.count
}

func (c *chain[T]) empty() bool {
	return c.count == 0
}

func (c *chain[T]) firstNode() *node[T] {
	return c.header.next
}

func (c *chain[T]) lastNode() *node[T] {
	return c.trailer.prev
}

// insertBetween splices a new node holding element between predecessor and
// successor and returns it. The caller guarantees that successor immediately
// follows predecessor.
func (c *chain[T]) insertBetween(element T, predecessor, successor *node[T]) *node[T] {
	newest := &node[T]{
		element: element,
		prev:    predecessor,
		next:    successor,
	}
	predecessor.next = newest
	successor.prev = newest
	c.count++
	return newest
}

// deleteNode splices n out of the chain and returns its element.
// The links and the element of the removed node are zeroed: the zeroed links
// mark the node as deleted and the zeroed element releases what it referenced.
func (c *chain[T]) deleteNode(n *node[T]) (T, error) {
	var zero T

	if c.empty() {
		return zero, collcommon.ErrEmpty
	}

	n.prev.next = n.next
	n.next.prev = n.prev
	c.count--

	element := n.element
	n.element = zero
	n.prev = nil
	n.next = nil

	return element, nil
}

// forEachElement calls fn on each element from first to last and stops at the
// first error, which is returned. Mutating the chain during the iteration is
// not supported.
func (c *chain[T]) forEachElement(fn func(e T) error) error {
	for n := c.header.next; n != c.trailer; n = n.next {
		if err := fn(n.element); err != nil {
			return err
		}
	}
	return nil
}
