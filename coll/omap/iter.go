package omap

// Iterator is a position in a key-ordered traversal. Iterators are small
// comparable values; traversal terminates when the iterator equals the
// End (or ReverseEnd) sentinel. Dereferencing a sentinel panics. Any
// mutation of the map invalidates open iterators.
type Iterator[K, V any] struct {
	m   *Map[K, V]
	idx int
}

// Range is a half-open [Begin, End) pair of forward iterators. End is a
// bound for equality comparison only.
type Range[K, V any] struct {
	Begin Iterator[K, V]
	End   Iterator[K, V]
}

// IsEmpty reports whether the range bounds no elements.
func (r Range[K, V]) IsEmpty() bool { return r.Begin == r.End }

// ReverseRange is the descending analogue of Range, traversed with Prev.
type ReverseRange[K, V any] struct {
	Begin Iterator[K, V]
	End   Iterator[K, V]
}

// IsEmpty reports whether the reverse range bounds no elements.
func (r ReverseRange[K, V]) IsEmpty() bool { return r.Begin == r.End }

// Begin returns the position of the smallest key, or the End sentinel
// when the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] { return m.iterAt(0) }

// End returns the forward sentinel. It must never be dereferenced.
func (m *Map[K, V]) End() Iterator[K, V] { return Iterator[K, V]{} }

// ReverseBegin returns the position of the largest key, or the ReverseEnd
// sentinel when the map is empty.
func (m *Map[K, V]) ReverseBegin() Iterator[K, V] { return m.iterAt(len(m.slots) - 1) }

// ReverseEnd returns the reverse sentinel. It must never be dereferenced.
func (m *Map[K, V]) ReverseEnd() Iterator[K, V] { return Iterator[K, V]{} }

// Next advances toward larger keys, returning the End sentinel past the
// last element.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.m == nil {
		return Iterator[K, V]{}
	}
	return it.m.iterAt(it.idx + 1)
}

// Prev steps toward smaller keys, returning the ReverseEnd sentinel
// before the first element.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.m == nil {
		return Iterator[K, V]{}
	}
	return it.m.iterAt(it.idx - 1)
}

// Key returns the key at the iterator's position.
func (it Iterator[K, V]) Key() K { return it.m.slots[it.idx].key }

// Value returns a reference to the element at the iterator's position.
func (it Iterator[K, V]) Value() *V { return &it.m.slots[it.idx].val }

// EqualRange returns the range of elements with keys in [begin, end),
// ascending. The range is empty iff no key satisfies the bound.
func (m *Map[K, V]) EqualRange(begin, end K) Range[K, V] {
	lo, _ := m.search(begin)
	hi, _ := m.search(end)
	if lo >= hi {
		return Range[K, V]{}
	}
	return Range[K, V]{Begin: m.iterAt(lo), End: m.iterAt(hi)}
}

// EqualRangeReverse returns the range of elements with keys in
// (end, begin], descending from begin. Traverse with Prev until the
// iterator equals the range's End.
func (m *Map[K, V]) EqualRangeReverse(begin, end K) ReverseRange[K, V] {
	hi := m.upperBound(begin) - 1
	lo := m.upperBound(end) - 1
	if hi <= lo {
		return ReverseRange[K, V]{}
	}
	return ReverseRange[K, V]{Begin: m.iterAt(hi), End: m.iterAt(lo)}
}

// iterAt clamps idx into an iterator, yielding the sentinel outside
// [0, count).
func (m *Map[K, V]) iterAt(idx int) Iterator[K, V] {
	if idx < 0 || idx >= len(m.slots) {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{m: m, idx: idx}
}
