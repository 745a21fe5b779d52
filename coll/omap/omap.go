package omap

import (
	"cmp"

	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/types"
)

// slot is one key/value element of the sorted array.
type slot[K, V any] struct {
	key K
	val V
}

// Map is a flat ordered map: a sorted array of key/value slots located by
// binary search.
//
// The zero value is not usable; construct with New, NewOrdered or
// NewReserved. A Map constructed with a nil hook is fixed-capacity.
type Map[K, V any] struct {
	slots    []slot[K, V]
	cmp      func(K, K) int
	hook     mem.Hook
	reserved bool
}

// Compile-time conformance with the shared contracts.
var _ types.Map[int, int] = (*Map[int, int])(nil)

// New creates a Map ordered by cmpFn (negative/zero/positive three-way
// comparison) with room for capacity elements. hook is the growth
// authority; nil makes the map fixed-capacity.
func New[K, V any](cmpFn func(K, K) int, capacity int, hook mem.Hook) (*Map[K, V], error) {
	if cmpFn == nil {
		return nil, types.ErrNilArgument
	}
	if capacity < 0 {
		capacity = 0
	}
	m := &Map[K, V]{cmp: cmpFn, hook: hook}
	if capacity > 0 {
		if hook != nil {
			if _, err := hook.Grow(0, capacity, mem.SizeOf[slot[K, V]]()); err != nil {
				return nil, err
			}
		}
		m.slots = make([]slot[K, V], 0, capacity)
	}
	return m, nil
}

// NewOrdered creates a Map for naturally ordered key types.
func NewOrdered[K cmp.Ordered, V any](capacity int, hook mem.Hook) (*Map[K, V], error) {
	return New[K, V](cmp.Compare[K], capacity, hook)
}

// NewReserved creates a Map over a one-time reservation of capacity slots
// authorized through hook. The map records no allocation authority of its
// own: it can never grow, and releasing it requires ClearAndFreeReserve
// with the original hook supplied explicitly.
func NewReserved[K, V any](cmpFn func(K, K) int, capacity int, hook mem.Hook) (*Map[K, V], error) {
	if cmpFn == nil {
		return nil, types.ErrNilArgument
	}
	if hook == nil {
		return nil, types.ErrNoAllocator
	}
	if capacity <= 0 {
		return nil, types.ErrCapacity
	}
	granted, err := hook.Grow(0, capacity, mem.SizeOf[slot[K, V]]())
	if err != nil {
		return nil, err
	}
	if granted < capacity {
		return nil, types.ErrAllocDenied
	}
	return &Map[K, V]{
		slots:    make([]slot[K, V], 0, granted),
		cmp:      cmpFn,
		reserved: true,
	}, nil
}

// search locates key, returning its index and whether it is present. When
// absent, the index is the position an insert would take.
func (m *Map[K, V]) search(key K) (int, bool) {
	lo, hi := 0, len(m.slots)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.cmp(m.slots[mid].key, key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(m.slots) && m.cmp(m.slots[lo].key, key) == 0
}

// upperBound returns the first index whose key compares greater than key.
func (m *Map[K, V]) upperBound(key K) int {
	lo, hi := 0, len(m.slots)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.cmp(m.slots[mid].key, key) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// -----------------------------------------------------------------------------
// Entry protocol (container level)
// -----------------------------------------------------------------------------

// SwapEntry inserts value at key and returns the prior value as an
// Occupied entry, or Vacant when the key was absent and the element was
// inserted fresh.
func (m *Map[K, V]) SwapEntry(key K, value V) types.Entry[V] {
	idx, found := m.search(key)
	if found {
		old := m.slots[idx].val
		m.slots[idx].val = value
		return types.Occupied(&old)
	}
	if _, err := m.insertAt(idx, key, value); err != nil {
		return types.Fail[V](err)
	}
	return types.Vacant[V]()
}

// TryInsert inserts only if key is absent. The returned entry references
// the element now in the map.
func (m *Map[K, V]) TryInsert(key K, value V) types.Entry[V] {
	idx, found := m.search(key)
	if found {
		return types.Occupied(&m.slots[idx].val)
	}
	ref, err := m.insertAt(idx, key, value)
	if err != nil {
		return types.Fail[V](err)
	}
	return types.Occupied(ref)
}

// InsertOrAssign inserts or overwrites, ending Occupied either way.
func (m *Map[K, V]) InsertOrAssign(key K, value V) types.Entry[V] {
	idx, found := m.search(key)
	if found {
		m.slots[idx].val = value
		return types.Occupied(&m.slots[idx].val)
	}
	ref, err := m.insertAt(idx, key, value)
	if err != nil {
		return types.Fail[V](err)
	}
	return types.Occupied(ref)
}

// RemoveKeyValue removes key and hands back the removed value, or Vacant
// when the key was absent.
func (m *Map[K, V]) RemoveKeyValue(key K) types.Entry[V] {
	idx, found := m.search(key)
	if !found {
		return types.Vacant[V]()
	}
	old := m.removeAt(idx)
	return types.Occupied(&old)
}

// GetKeyValue returns a reference to the element stored at key, or nil.
func (m *Map[K, V]) GetKeyValue(key K) *V {
	if idx, found := m.search(key); found {
		return &m.slots[idx].val
	}
	return nil
}

// Contains reports key membership.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.search(key)
	return found
}

// insertAt grows storage if needed and splices the element in at idx,
// shifting trailing slots. A denied insert leaves the map untouched.
func (m *Map[K, V]) insertAt(idx int, key K, value V) (*V, error) {
	need := len(m.slots) + 1
	if need > cap(m.slots) {
		if m.reserved {
			return nil, types.ErrCapacity
		}
		if m.hook == nil {
			if cap(m.slots) > 0 {
				return nil, types.ErrCapacity
			}
			return nil, types.ErrNoAllocator
		}
		slots, err := mem.GrowSlice(m.hook, m.slots, need)
		if err != nil {
			return nil, err
		}
		m.slots = slots
	}
	var zero slot[K, V]
	m.slots = append(m.slots, zero)
	copy(m.slots[idx+1:], m.slots[idx:])
	m.slots[idx] = slot[K, V]{key: key, val: value}
	return &m.slots[idx].val, nil
}

// removeAt deletes the slot at idx, shifting trailing slots down.
func (m *Map[K, V]) removeAt(idx int) V {
	old := m.slots[idx].val
	last := len(m.slots) - 1
	copy(m.slots[idx:], m.slots[idx+1:])
	var zero slot[K, V]
	m.slots[last] = zero
	m.slots = m.slots[:last]
	return old
}

// -----------------------------------------------------------------------------
// Ordered removal (erase/extract)
// -----------------------------------------------------------------------------

// Erase removes the element it denotes, invoking dtor on it when
// supplied, and returns the iterator now at that position (the former
// successor), or the End sentinel.
func (m *Map[K, V]) Erase(it Iterator[K, V], dtor func(*V)) Iterator[K, V] {
	if it.m != m {
		return Iterator[K, V]{}
	}
	if dtor != nil {
		dtor(&m.slots[it.idx].val)
	}
	m.removeAt(it.idx)
	if it.idx < len(m.slots) {
		return Iterator[K, V]{m: m, idx: it.idx}
	}
	return Iterator[K, V]{}
}

// Extract removes the element it denotes without invoking any destructor,
// transferring ownership of the value to the caller.
func (m *Map[K, V]) Extract(it Iterator[K, V]) types.Entry[V] {
	if it.m != m {
		return types.Vacant[V]()
	}
	old := m.removeAt(it.idx)
	return types.Occupied(&old)
}

// EraseRange removes every element in r, invoking dtor once per element
// when supplied. Returns the number of elements removed.
func (m *Map[K, V]) EraseRange(r Range[K, V], dtor func(*V)) int {
	begin, end := m.rangeBounds(r)
	if begin >= end {
		return 0
	}
	if dtor != nil {
		for i := begin; i < end; i++ {
			dtor(&m.slots[i].val)
		}
	}
	m.removeSpan(begin, end)
	return end - begin
}

// ExtractRange removes every element in r without invoking destructors
// and returns the extracted values in key order. The returned slice is
// caller-owned ordinary Go memory, not container storage.
func (m *Map[K, V]) ExtractRange(r Range[K, V]) []V {
	begin, end := m.rangeBounds(r)
	if begin >= end {
		return nil
	}
	out := make([]V, end-begin)
	for i := begin; i < end; i++ {
		out[i-begin] = m.slots[i].val
	}
	m.removeSpan(begin, end)
	return out
}

// rangeBounds resolves a Range against the current array, clamping
// sentinels to the element count.
func (m *Map[K, V]) rangeBounds(r Range[K, V]) (int, int) {
	begin, end := len(m.slots), len(m.slots)
	if r.Begin.m == m {
		begin = r.Begin.idx
	}
	if r.End.m == m {
		end = r.End.idx
	}
	if begin < 0 || begin > len(m.slots) || end > len(m.slots) {
		return 0, 0
	}
	return begin, end
}

// removeSpan deletes slots [begin, end), shifting trailing slots down.
func (m *Map[K, V]) removeSpan(begin, end int) {
	n := end - begin
	copy(m.slots[begin:], m.slots[end:])
	var zero slot[K, V]
	for i := len(m.slots) - n; i < len(m.slots); i++ {
		m.slots[i] = zero
	}
	m.slots = m.slots[:len(m.slots)-n]
}

// -----------------------------------------------------------------------------
// Memory management protocol
// -----------------------------------------------------------------------------

// Reserve pre-grows capacity for n additional elements through hook.
// Reserved maps cannot grow and report ErrCapacity.
func (m *Map[K, V]) Reserve(n int, hook mem.Hook) error {
	if n <= 0 {
		return nil
	}
	if m.reserved {
		return types.ErrCapacity
	}
	slots, err := mem.GrowSlice(hook, m.slots, len(m.slots)+n)
	if err != nil {
		return err
	}
	m.slots = slots
	return nil
}

// Clear removes every element, invoking dtor exactly once per live
// element when supplied. The backing array keeps its capacity.
func (m *Map[K, V]) Clear(dtor func(*V)) {
	var zero slot[K, V]
	for i := range m.slots {
		if dtor != nil {
			dtor(&m.slots[i].val)
		}
		m.slots[i] = zero
	}
	m.slots = m.slots[:0]
}

// ClearAndFree removes every element like Clear and additionally releases
// the backing array through the map's recorded hook. Maps built over a
// one-time reservation have no recorded hook; use ClearAndFreeReserve.
func (m *Map[K, V]) ClearAndFree(dtor func(*V)) {
	if dtor != nil {
		for i := range m.slots {
			dtor(&m.slots[i].val)
		}
	}
	mem.FreeSlice(m.hook, m.slots)
	m.slots = nil
}

// ClearAndFreeReserve releases a reserved map's storage through hook,
// which must be the authority the reservation was made with. The map
// cannot infer an authority it was never given.
func (m *Map[K, V]) ClearAndFreeReserve(dtor func(*V), hook mem.Hook) error {
	if hook == nil {
		return types.ErrNilArgument
	}
	if dtor != nil {
		for i := range m.slots {
			dtor(&m.slots[i].val)
		}
	}
	if _, err := hook.Grow(cap(m.slots), 0, mem.SizeOf[slot[K, V]]()); err != nil {
		return err
	}
	m.slots = nil
	m.reserved = false
	return nil
}

// Copy deep-copies all live elements of src into dst, growing dst through
// hook when its capacity is insufficient. On allocation denial dst's
// visible state is untouched. dst must order keys the same way src does.
// A reserved dst cannot grow: copies beyond its reservation fail with
// ErrCapacity.
func Copy[K, V any](dst, src *Map[K, V], hook mem.Hook) error {
	if dst == nil || src == nil {
		return types.ErrNilArgument
	}
	if dst.reserved && len(src.slots) > cap(dst.slots) {
		return types.ErrCapacity
	}
	slots, err := mem.GrowSlice(hook, dst.slots, len(src.slots))
	if err != nil {
		return err
	}
	dst.slots = append(slots[:0], src.slots...)
	return nil
}

// -----------------------------------------------------------------------------
// State/validation protocol
// -----------------------------------------------------------------------------

// Count returns the number of live elements.
func (m *Map[K, V]) Count() int { return len(m.slots) }

// Capacity returns the number of element slots allocated.
func (m *Map[K, V]) Capacity() int { return cap(m.slots) }

// IsEmpty reports whether the map holds no elements.
func (m *Map[K, V]) IsEmpty() bool { return len(m.slots) == 0 }

// Validate audits the ordering invariant: keys strictly ascending under
// the map's comparison. Never mutates.
func (m *Map[K, V]) Validate() bool {
	if m.cmp == nil {
		return false
	}
	for i := 1; i < len(m.slots); i++ {
		if m.cmp(m.slots[i-1].key, m.slots[i].key) >= 0 {
			return false
		}
	}
	return true
}

// Stats implements the uniform statistics surface.
func (m *Map[K, V]) Stats() types.Stats {
	return types.Stats{
		Count:       len(m.slots),
		Capacity:    cap(m.slots),
		BytesApprox: cap(m.slots) * mem.SizeOf[slot[K, V]](),
		Impl:        "omap",
	}
}
