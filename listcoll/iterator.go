package listcoll

// Iterator is a lazy forward iterator over the elements of a PositionalList,
// built on First and After. Deleting the element under the cursor ends the
// iteration and is reported by Err as ErrStalePosition; other mutations of
// the list during the iteration are not supported.
type Iterator[T any] struct {
	list    *PositionalList[T]
	pos     *Position[T]
	err     error
	started bool
}

func (l *PositionalList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// Next advances the iterator and returns false when there is no next element
// or the cursor became stale.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	if !it.started {
		it.started = true
		it.pos = it.list.First()
		return it.pos != nil
	}

	if it.pos == nil {
		return false
	}

	next, err := it.list.After(it.pos)
	if err != nil {
		it.pos = nil
		it.err = err
		return false
	}
	it.pos = next
	return it.pos != nil
}

// Value returns the element under the cursor; Next should have returned true.
func (it *Iterator[T]) Value() T {
	return it.pos.Element()
}

// Position returns the position under the cursor; Next should have returned
// true.
func (it *Iterator[T]) Position() *Position[T] {
	return it.pos
}

// Err returns the error that ended the iteration early, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Restart makes the iterator reusable from the start of the list.
func (it *Iterator[T]) Restart() {
	it.pos = nil
	it.err = nil
	it.started = false
}
