package listcoll

// A Position designates a single element of a PositionalList independently of
// the elements around it: it stays valid while unrelated parts of the list
// change and becomes stale exactly when Delete removes its element.
// Replacing the element with PositionalList.Replace does not invalidate it.
//
// A Position does not own the node it designates, it only references it.
// Positions are created by PositionalList methods and should not be
// constructed directly.
type Position[T any] struct {
	list *PositionalList[T]
	node *node[T]
}

// Element returns the element at the position. This is the primary accessor;
// it performs no validation, reading through a stale Position returns the
// zero value of T.
func (p *Position[T]) Element() T {
	return p.node.element
}

// Equal returns true if other designates the same node as p. Element equality
// is irrelevant: two positions holding equal elements at different places are
// not equal.
func (p *Position[T]) Equal(other *Position[T]) bool {
	if p == nil || other == nil {
		return p == nil && other == nil
	}
	return p.node == other.node
}
