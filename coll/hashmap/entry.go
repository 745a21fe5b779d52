package hashmap

import "github.com/joshuapare/collkit/pkg/types"

// Entry is the fluent form of the Entry protocol. It captures the result
// of a single directory search so chained operations (AndModify, OrInsert,
// InsertEntry, Remove) reuse that search instead of repeating it.
//
// An Entry is ephemeral: it is valid only until the next mutating call on
// the map, other than through the Entry itself.
type Entry[K comparable, V any] struct {
	m   *Map[K, V]
	key K
	ref *V
	idx int32 // dense position, valid only when ref != nil
	err error
}

// Entry performs one lookup and returns its tagged result without
// mutating the map.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	e := Entry[K, V]{m: m, key: key}
	if idx, ok := m.lookup[key]; ok {
		e.ref = &m.vals[idx]
		e.idx = idx
	}
	return e
}

// Occupied reports whether the entry references a live element.
func (e Entry[K, V]) Occupied() bool { return e.ref != nil }

// Unwrap returns the referenced element, or nil if the entry is Vacant.
func (e Entry[K, V]) Unwrap() *V { return e.ref }

// InsertError reports whether an insert through this entry failed.
func (e Entry[K, V]) InsertError() bool { return e.err != nil }

// Err returns the error behind the insert-error bit, or nil.
func (e Entry[K, V]) Err() error { return e.err }

// AndModify applies fn to the contained element iff Occupied. A Vacant
// entry is returned unchanged.
func (e Entry[K, V]) AndModify(fn func(*V)) Entry[K, V] {
	if e.ref != nil && fn != nil {
		fn(e.ref)
	}
	return e
}

// AndModifyCtx is AndModify with a caller context argument for
// modification functions that need external state.
func (e Entry[K, V]) AndModifyCtx(fn func(*V, any), ctx any) Entry[K, V] {
	if e.ref != nil && fn != nil {
		fn(e.ref, ctx)
	}
	return e
}

// OrInsert inserts value iff the entry is Vacant and returns a reference
// to the element now in the map. Returns nil when growth was denied.
func (e Entry[K, V]) OrInsert(value V) *V {
	if e.ref != nil {
		return e.ref
	}
	ref, err := e.m.insert(e.key, value)
	if err != nil {
		return nil
	}
	return ref
}

// OrInsertWith is OrInsert with a default-producing function, called only
// when the entry is Vacant.
func (e Entry[K, V]) OrInsertWith(fn func() V) *V {
	if e.ref != nil {
		return e.ref
	}
	if fn == nil {
		return nil
	}
	ref, err := e.m.insert(e.key, fn())
	if err != nil {
		return nil
	}
	return ref
}

// InsertEntry unconditionally installs value into the slot this entry
// denotes, without a fresh lookup. Returns nil when an insert into a
// Vacant slot was denied growth.
func (e Entry[K, V]) InsertEntry(value V) *V {
	if e.ref != nil {
		*e.ref = value
		return e.ref
	}
	ref, err := e.m.insert(e.key, value)
	if err != nil {
		return nil
	}
	return ref
}

// Remove transitions an Occupied entry to Vacant and hands back the
// removed value. On a Vacant entry it is a no-op returning Vacant.
func (e Entry[K, V]) Remove() types.Entry[V] {
	if e.ref == nil {
		return types.Vacant[V]()
	}
	old := e.m.removeAt(e.key, e.idx)
	return types.Occupied(&old)
}
