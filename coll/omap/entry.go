package omap

import "github.com/joshuapare/collkit/pkg/types"

// Entry is the fluent form of the Entry protocol over one binary search.
// A Vacant entry remembers the insertion position, so OrInsert and
// InsertEntry complete without a second search.
//
// An Entry is ephemeral: any mutation of the map other than through the
// Entry itself invalidates it.
type Entry[K, V any] struct {
	m     *Map[K, V]
	key   K
	idx   int
	found bool
	err   error
}

// Entry performs one search and returns its tagged result without
// mutating the map.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	idx, found := m.search(key)
	return Entry[K, V]{m: m, key: key, idx: idx, found: found}
}

// Occupied reports whether the entry references a live element.
func (e Entry[K, V]) Occupied() bool { return e.found }

// Unwrap returns the referenced element, or nil if the entry is Vacant.
func (e Entry[K, V]) Unwrap() *V {
	if !e.found {
		return nil
	}
	return &e.m.slots[e.idx].val
}

// InsertError reports whether an insert through this entry failed.
func (e Entry[K, V]) InsertError() bool { return e.err != nil }

// Err returns the error behind the insert-error bit, or nil.
func (e Entry[K, V]) Err() error { return e.err }

// AndModify applies fn to the contained element iff Occupied.
func (e Entry[K, V]) AndModify(fn func(*V)) Entry[K, V] {
	if e.found && fn != nil {
		fn(&e.m.slots[e.idx].val)
	}
	return e
}

// AndModifyCtx is AndModify with a caller context argument.
func (e Entry[K, V]) AndModifyCtx(fn func(*V, any), ctx any) Entry[K, V] {
	if e.found && fn != nil {
		fn(&e.m.slots[e.idx].val, ctx)
	}
	return e
}

// OrInsert inserts value at the remembered position iff the entry is
// Vacant. Returns nil when growth was denied.
func (e Entry[K, V]) OrInsert(value V) *V {
	if e.found {
		return &e.m.slots[e.idx].val
	}
	ref, err := e.m.insertAt(e.idx, e.key, value)
	if err != nil {
		return nil
	}
	return ref
}

// OrInsertWith is OrInsert with a default-producing function, called only
// when the entry is Vacant.
func (e Entry[K, V]) OrInsertWith(fn func() V) *V {
	if e.found {
		return &e.m.slots[e.idx].val
	}
	if fn == nil {
		return nil
	}
	ref, err := e.m.insertAt(e.idx, e.key, fn())
	if err != nil {
		return nil
	}
	return ref
}

// InsertEntry unconditionally installs value into the slot this entry
// denotes, without a fresh search.
func (e Entry[K, V]) InsertEntry(value V) *V {
	if e.found {
		e.m.slots[e.idx].val = value
		return &e.m.slots[e.idx].val
	}
	ref, err := e.m.insertAt(e.idx, e.key, value)
	if err != nil {
		return nil
	}
	return ref
}

// Remove transitions an Occupied entry to Vacant and hands back the
// removed value; a Vacant entry is a no-op returning Vacant.
func (e Entry[K, V]) Remove() types.Entry[V] {
	if !e.found {
		return types.Vacant[V]()
	}
	old := e.m.removeAt(e.idx)
	return types.Occupied(&old)
}
