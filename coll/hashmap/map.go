package hashmap

import (
	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/types"
)

// directoryOverhead is the rough per-entry memory overhead of the hash
// directory, used for Stats estimates only.
const directoryOverhead = 40

// Map is a hash-table container with dense element storage.
//
// The zero value is not usable; construct with New. A Map constructed with
// a nil hook is fixed-capacity: inserts beyond the construction capacity
// fail rather than allocate.
type Map[K comparable, V any] struct {
	lookup map[K]int32
	keys   []K
	vals   []V
	hook   mem.Hook
}

// Compile-time conformance with the shared contracts.
var _ types.Map[string, int] = (*Map[string, int])(nil)

// New creates a Map with room for capacity elements. hook is the growth
// authority for the element storage; nil makes the map fixed-capacity.
// The construction-time reservation itself is authorized through hook when
// one is supplied.
func New[K comparable, V any](capacity int, hook mem.Hook) (*Map[K, V], error) {
	if capacity < 0 {
		capacity = 0
	}
	m := &Map[K, V]{
		lookup: make(map[K]int32, capacity),
		hook:   hook,
	}
	if capacity > 0 {
		if hook != nil {
			if _, err := hook.Grow(0, capacity, mem.SizeOf[K]()); err != nil {
				return nil, err
			}
			if _, err := hook.Grow(0, capacity, mem.SizeOf[V]()); err != nil {
				return nil, err
			}
		}
		m.keys = make([]K, 0, capacity)
		m.vals = make([]V, 0, capacity)
	}
	return m, nil
}

// -----------------------------------------------------------------------------
// Entry protocol (container level)
// -----------------------------------------------------------------------------

// SwapEntry inserts value at key and returns the prior value as an
// Occupied entry. When the key was absent the result is Vacant: the
// element was inserted and there is no prior value to hand back.
func (m *Map[K, V]) SwapEntry(key K, value V) types.Entry[V] {
	if idx, ok := m.lookup[key]; ok {
		old := m.vals[idx]
		m.vals[idx] = value
		return types.Occupied(&old)
	}
	if _, err := m.insert(key, value); err != nil {
		return types.Fail[V](err)
	}
	return types.Vacant[V]()
}

// TryInsert inserts only if key is absent. The returned entry is Occupied
// with the element now in the map: the new one on insert, the untouched
// existing one otherwise.
func (m *Map[K, V]) TryInsert(key K, value V) types.Entry[V] {
	if idx, ok := m.lookup[key]; ok {
		return types.Occupied(&m.vals[idx])
	}
	ref, err := m.insert(key, value)
	if err != nil {
		return types.Fail[V](err)
	}
	return types.Occupied(ref)
}

// InsertOrAssign inserts or overwrites, ending Occupied either way.
func (m *Map[K, V]) InsertOrAssign(key K, value V) types.Entry[V] {
	if idx, ok := m.lookup[key]; ok {
		m.vals[idx] = value
		return types.Occupied(&m.vals[idx])
	}
	ref, err := m.insert(key, value)
	if err != nil {
		return types.Fail[V](err)
	}
	return types.Occupied(ref)
}

// RemoveKeyValue removes key and hands back the removed value, or Vacant
// when the key was absent.
func (m *Map[K, V]) RemoveKeyValue(key K) types.Entry[V] {
	idx, ok := m.lookup[key]
	if !ok {
		return types.Vacant[V]()
	}
	old := m.removeAt(key, idx)
	return types.Occupied(&old)
}

// GetKeyValue returns a reference to the element stored at key, or nil.
// The reference is valid until the next mutating call.
func (m *Map[K, V]) GetKeyValue(key K) *V {
	if idx, ok := m.lookup[key]; ok {
		return &m.vals[idx]
	}
	return nil
}

// Contains reports key membership.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.lookup[key]
	return ok
}

// growPair grows both dense arrays to hold need elements. If the second
// growth is denied the first is refunded, so a failed operation leaves
// both the map and the hook's accounting unchanged.
func (m *Map[K, V]) growPair(hook mem.Hook, need int) ([]K, []V, error) {
	keys, err := mem.GrowSlice(hook, m.keys, need)
	if err != nil {
		return nil, nil, err
	}
	vals, err := mem.GrowSlice(hook, m.vals, need)
	if err != nil {
		if cap(keys) != cap(m.keys) {
			mem.Shrink(hook, cap(keys), cap(m.keys), mem.SizeOf[K]())
		}
		return nil, nil, err
	}
	return keys, vals, nil
}

// insert grows storage if needed and appends the element. The directory
// and dense arrays are only touched after growth succeeded, so a denied
// insert leaves the map exactly as it was.
func (m *Map[K, V]) insert(key K, value V) (*V, error) {
	need := len(m.vals) + 1
	if need > cap(m.vals) {
		if m.hook == nil {
			if cap(m.vals) > 0 {
				return nil, types.ErrCapacity
			}
			return nil, types.ErrNoAllocator
		}
		keys, vals, err := m.growPair(m.hook, need)
		if err != nil {
			return nil, err
		}
		m.keys, m.vals = keys, vals
	}
	idx := int32(len(m.vals))
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
	m.lookup[key] = idx
	return &m.vals[idx], nil
}

// removeAt deletes the element at dense position idx, compacting by
// swapping the last element into its place. Returns the removed value.
func (m *Map[K, V]) removeAt(key K, idx int32) V {
	old := m.vals[idx]
	last := int32(len(m.vals) - 1)
	if idx != last {
		m.keys[idx] = m.keys[last]
		m.vals[idx] = m.vals[last]
		m.lookup[m.keys[idx]] = idx
	}
	var zeroK K
	var zeroV V
	m.keys[last] = zeroK
	m.vals[last] = zeroV
	m.keys = m.keys[:last]
	m.vals = m.vals[:last]
	delete(m.lookup, key)
	return old
}

// -----------------------------------------------------------------------------
// Memory management protocol
// -----------------------------------------------------------------------------

// Reserve pre-grows capacity for n additional elements through hook so
// future inserts need no further growth. Advisory: failure leaves the map
// untouched and usable.
func (m *Map[K, V]) Reserve(n int, hook mem.Hook) error {
	if n <= 0 {
		return nil
	}
	keys, vals, err := m.growPair(hook, len(m.vals)+n)
	if err != nil {
		return err
	}
	m.keys, m.vals = keys, vals
	return nil
}

// Clear removes every element, invoking dtor exactly once per live element
// when supplied. The backing storage keeps its capacity.
func (m *Map[K, V]) Clear(dtor func(*V)) {
	if dtor != nil {
		for i := range m.vals {
			dtor(&m.vals[i])
		}
	}
	var zeroK K
	var zeroV V
	for i := range m.vals {
		m.keys[i] = zeroK
		m.vals[i] = zeroV
	}
	m.keys = m.keys[:0]
	m.vals = m.vals[:0]
	clear(m.lookup)
}

// ClearAndFree removes every element like Clear and additionally releases
// the backing storage through the map's recorded hook.
func (m *Map[K, V]) ClearAndFree(dtor func(*V)) {
	if dtor != nil {
		for i := range m.vals {
			dtor(&m.vals[i])
		}
	}
	mem.FreeSlice(m.hook, m.keys)
	mem.FreeSlice(m.hook, m.vals)
	m.keys = nil
	m.vals = nil
	m.lookup = make(map[K]int32)
}

// Copy deep-copies all live elements of src into dst, growing dst through
// hook when its capacity is insufficient. On allocation denial dst's
// visible state is untouched. Element payloads are copied by assignment.
func Copy[K comparable, V any](dst, src *Map[K, V], hook mem.Hook) error {
	if dst == nil || src == nil {
		return types.ErrNilArgument
	}
	n := len(src.vals)
	keys, vals, err := dst.growPair(hook, n)
	if err != nil {
		return err
	}
	dst.keys = append(keys[:0], src.keys...)
	dst.vals = append(vals[:0], src.vals...)
	dst.lookup = make(map[K]int32, n)
	for i, k := range dst.keys {
		dst.lookup[k] = int32(i)
	}
	return nil
}

// -----------------------------------------------------------------------------
// State/validation protocol
// -----------------------------------------------------------------------------

// Count returns the number of live elements.
func (m *Map[K, V]) Count() int { return len(m.vals) }

// Capacity returns the number of element slots allocated.
func (m *Map[K, V]) Capacity() int { return cap(m.vals) }

// IsEmpty reports whether the map holds no elements.
func (m *Map[K, V]) IsEmpty() bool { return len(m.vals) == 0 }

// Validate audits directory/dense-array consistency. Never mutates.
func (m *Map[K, V]) Validate() bool {
	if len(m.keys) != len(m.vals) || len(m.lookup) != len(m.vals) {
		return false
	}
	for key, idx := range m.lookup {
		if idx < 0 || int(idx) >= len(m.keys) {
			return false
		}
		if m.keys[idx] != key {
			return false
		}
	}
	return true
}

// Stats implements the uniform statistics surface.
func (m *Map[K, V]) Stats() types.Stats {
	bytes := cap(m.keys)*mem.SizeOf[K]() +
		cap(m.vals)*mem.SizeOf[V]() +
		len(m.lookup)*directoryOverhead
	return types.Stats{
		Count:       len(m.vals),
		Capacity:    cap(m.vals),
		BytesApprox: bytes,
		Impl:        "hashmap",
	}
}
