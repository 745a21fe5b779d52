package buffer

import "github.com/joshuapare/collkit/pkg/types"

// Iterator is a position in a traversal of the buffer's dense order.
// Iterators are small comparable values; traversal terminates when the
// iterator equals the container's End (or ReverseEnd) sentinel.
// Dereferencing a sentinel panics.
//
// Any removal invalidates open iterators: compaction may move an element
// into or out of the position an iterator denotes.
type Iterator[T any] struct {
	b   *Buffer[T]
	idx int
}

// Begin returns the first position of a traversal, or the End sentinel
// when the buffer is empty.
func (b *Buffer[T]) Begin() Iterator[T] {
	if len(b.elems) == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{b: b}
}

// End returns the forward sentinel. It must never be dereferenced.
func (b *Buffer[T]) End() Iterator[T] { return Iterator[T]{} }

// ReverseBegin returns the first position of a reverse traversal, or the
// ReverseEnd sentinel when the buffer is empty.
func (b *Buffer[T]) ReverseBegin() Iterator[T] {
	if len(b.elems) == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{b: b, idx: len(b.elems) - 1}
}

// ReverseEnd returns the reverse sentinel. It must never be dereferenced.
func (b *Buffer[T]) ReverseEnd() Iterator[T] { return Iterator[T]{} }

// Next advances the iterator, returning the End sentinel past the last
// element.
func (it Iterator[T]) Next() Iterator[T] {
	if it.b == nil || it.idx+1 >= len(it.b.elems) {
		return Iterator[T]{}
	}
	return Iterator[T]{b: it.b, idx: it.idx + 1}
}

// Prev steps the iterator backward, returning the ReverseEnd sentinel
// before the first element.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.b == nil || it.idx == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{b: it.b, idx: it.idx - 1}
}

// ID returns the stable token of the element at the iterator's position.
func (it Iterator[T]) ID() types.ID { return it.b.ids[it.idx] }

// Value returns a reference to the element at the iterator's position.
func (it Iterator[T]) Value() *T { return &it.b.elems[it.idx] }
