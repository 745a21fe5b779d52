package slist

// Iterator is a position in the sequence. Iterators are small comparable
// values; traversal terminates when the iterator equals the End sentinel.
// Dereferencing a sentinel panics.
//
// Splice operations preserve element addresses: a Value reference taken
// before a splice stays valid after the nodes move. Traversal state does
// not survive a splice; an iterator held across one walks the chain the
// element now belongs to and must be re-acquired. Removal of the
// referenced element invalidates references and iterators alike.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns the front position, or the End sentinel when empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

// End returns the forward sentinel. It must never be dereferenced.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// Next advances toward the back, returning the End sentinel past the last
// element.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{n: it.n.next}
}

// Value returns a reference to the element at the iterator's position.
func (it Iterator[T]) Value() *T { return &it.n.val }
