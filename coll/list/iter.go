package list

// Iterator is a position in the sequence. Iterators are small comparable
// values; traversal terminates when the iterator equals the End (or
// ReverseEnd) sentinel. Dereferencing a sentinel panics.
//
// Splicing preserves element addresses: a Value reference taken before a
// splice stays valid after the nodes move. Traversal state does not
// survive a splice; an iterator held across one no longer terminates
// against its list's sentinel and must be re-acquired from the list that
// now owns the element. Removal of the referenced element invalidates
// references and iterators alike.
type Iterator[T any] struct {
	l *List[T]
	n *node[T]
}

// Begin returns the front position, or the End sentinel when empty.
func (l *List[T]) Begin() Iterator[T] {
	if l.count == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{l: l, n: l.root.next}
}

// End returns the forward sentinel. It must never be dereferenced.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// ReverseBegin returns the back position, or the ReverseEnd sentinel when
// empty.
func (l *List[T]) ReverseBegin() Iterator[T] {
	if l.count == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{l: l, n: l.root.prev}
}

// ReverseEnd returns the reverse sentinel. It must never be dereferenced.
func (l *List[T]) ReverseEnd() Iterator[T] { return Iterator[T]{} }

// Next advances toward the back, returning the End sentinel past the last
// element.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil || it.n.next == &it.l.root {
		return Iterator[T]{}
	}
	return Iterator[T]{l: it.l, n: it.n.next}
}

// Prev steps toward the front, returning the ReverseEnd sentinel before
// the first element.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.n == nil || it.n.prev == &it.l.root {
		return Iterator[T]{}
	}
	return Iterator[T]{l: it.l, n: it.n.prev}
}

// Value returns a reference to the element at the iterator's position.
func (it Iterator[T]) Value() *T { return &it.n.val }
