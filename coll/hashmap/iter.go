package hashmap

// Iterator is a position in a traversal of the map. Iterators are small
// comparable values; traversal terminates when the iterator equals the
// container's End (or ReverseEnd) sentinel. Dereferencing a sentinel
// panics.
//
// Any mutation of the map invalidates open iterators.
type Iterator[K comparable, V any] struct {
	m   *Map[K, V]
	idx int
}

// Begin returns the first position of a traversal, or the End sentinel
// when the map is empty. Order is unspecified.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	if len(m.vals) == 0 {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{m: m}
}

// End returns the forward sentinel. It must never be dereferenced.
func (m *Map[K, V]) End() Iterator[K, V] { return Iterator[K, V]{} }

// ReverseBegin returns the first position of a reverse traversal, or the
// ReverseEnd sentinel when the map is empty.
func (m *Map[K, V]) ReverseBegin() Iterator[K, V] {
	if len(m.vals) == 0 {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{m: m, idx: len(m.vals) - 1}
}

// ReverseEnd returns the reverse sentinel. It must never be dereferenced.
func (m *Map[K, V]) ReverseEnd() Iterator[K, V] { return Iterator[K, V]{} }

// Next advances the iterator, returning the End sentinel past the last
// element.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.m == nil || it.idx+1 >= len(it.m.vals) {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{m: it.m, idx: it.idx + 1}
}

// Prev steps the iterator backward, returning the ReverseEnd sentinel
// before the first element.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.m == nil || it.idx == 0 {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{m: it.m, idx: it.idx - 1}
}

// Key returns the key at the iterator's position.
func (it Iterator[K, V]) Key() K { return it.m.keys[it.idx] }

// Value returns a reference to the element at the iterator's position.
func (it Iterator[K, V]) Value() *V { return &it.m.vals[it.idx] }
