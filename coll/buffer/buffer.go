package buffer

import (
	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/types"
)

// freeSlot marks a sparse table entry on the free list.
const freeSlot int32 = -1

// slotRef maps a stable token to its current dense position.
type slotRef struct {
	dense    int32    // index into the dense array, freeSlot when free
	freeNext types.ID // next free slot, meaningful only when dense == freeSlot
}

// Buffer is a flat dense container with slot-stable handles.
//
// The zero value is not usable; construct with New or NewReserved. A
// Buffer constructed with a nil hook is fixed-capacity: inserts beyond the
// construction capacity fail rather than allocate.
type Buffer[T any] struct {
	elems    []T          // dense payload, insertion-compacted order
	ids      []types.ID   // dense index -> sparse slot, parallel to elems
	sparse   []slotRef
	free     types.ID
	hook     mem.Hook
	reserved bool
}

// Compile-time conformance with the shared state contract.
var _ types.Container = (*Buffer[int])(nil)

// New creates a Buffer with room for capacity elements. hook is the growth
// authority; nil makes the buffer fixed-capacity. The construction-time
// reservation itself is authorized through hook when one is supplied.
func New[T any](capacity int, hook mem.Hook) (*Buffer[T], error) {
	if capacity < 0 {
		capacity = 0
	}
	b := &Buffer[T]{free: types.NilID, hook: hook}
	if capacity > 0 {
		if hook != nil {
			if _, err := hook.Grow(0, capacity, mem.SizeOf[T]()); err != nil {
				return nil, err
			}
			if _, err := hook.Grow(0, capacity, mem.SizeOf[types.ID]()); err != nil {
				return nil, err
			}
			if _, err := hook.Grow(0, capacity, mem.SizeOf[slotRef]()); err != nil {
				return nil, err
			}
		}
		b.elems = make([]T, 0, capacity)
		b.ids = make([]types.ID, 0, capacity)
		b.sparse = make([]slotRef, 0, capacity)
	}
	return b, nil
}

// NewReserved creates a Buffer over a one-time reservation of capacity
// slots authorized through hook. The buffer records no allocation
// authority of its own: it can never grow, and releasing it requires
// ClearAndFreeReserve with the original hook supplied explicitly.
func NewReserved[T any](capacity int, hook mem.Hook) (*Buffer[T], error) {
	if hook == nil {
		return nil, types.ErrNoAllocator
	}
	if capacity <= 0 {
		return nil, types.ErrCapacity
	}
	for _, elem := range []int{mem.SizeOf[T](), mem.SizeOf[types.ID](), mem.SizeOf[slotRef]()} {
		granted, err := hook.Grow(0, capacity, elem)
		if err != nil {
			return nil, err
		}
		if granted < capacity {
			return nil, types.ErrAllocDenied
		}
	}
	return &Buffer[T]{
		elems:    make([]T, 0, capacity),
		ids:      make([]types.ID, 0, capacity),
		sparse:   make([]slotRef, 0, capacity),
		free:     types.NilID,
		reserved: true,
	}, nil
}

// -----------------------------------------------------------------------------
// Push/Pop protocol
// -----------------------------------------------------------------------------

// PushBack appends value and returns a reference to the new element, or an
// error when growth was denied. The reference is positional and may be
// invalidated by later removals; use InsertHandle when a stable token is
// needed.
func (b *Buffer[T]) PushBack(value T) (*T, error) {
	id, err := b.insert(value)
	if err != nil {
		return nil, err
	}
	return &b.elems[b.sparse[id].dense], nil
}

// PopBack removes the last element. Returns ErrEmpty when empty.
func (b *Buffer[T]) PopBack() error {
	if len(b.elems) == 0 {
		return types.ErrEmpty
	}
	b.removeAt(b.ids[len(b.elems)-1])
	return nil
}

// Front returns a reference to the first element in dense order, or nil
// when empty.
func (b *Buffer[T]) Front() *T {
	if len(b.elems) == 0 {
		return nil
	}
	return &b.elems[0]
}

// Back returns a reference to the last element in dense order, or nil when
// empty.
func (b *Buffer[T]) Back() *T {
	if len(b.elems) == 0 {
		return nil
	}
	return &b.elems[len(b.elems)-1]
}

// At returns a reference to the element at dense position i, or nil when i
// is out of range. Positions shift on removal; tokens do not.
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.elems) {
		return nil
	}
	return &b.elems[i]
}

// -----------------------------------------------------------------------------
// Handle protocol
// -----------------------------------------------------------------------------

// InsertHandle appends value and returns an Occupied Handle whose ID stays
// valid across compaction until the element is removed. On growth denial
// the Handle is Vacant with the insert-error bit set and the buffer is
// untouched.
func (b *Buffer[T]) InsertHandle(value T) types.Handle[T] {
	id, err := b.insert(value)
	if err != nil {
		return types.FailHandle[T](err)
	}
	return types.OccupiedHandle(id, &b.elems[b.sparse[id].dense])
}

// Handle resolves id to its current element as an Occupied Handle, or a
// Vacant Handle when id does not denote a live element.
func (b *Buffer[T]) Handle(id types.ID) types.Handle[T] {
	pos, ok := b.live(id)
	if !ok {
		return types.VacantHandle[T]()
	}
	return types.OccupiedHandle(id, &b.elems[pos])
}

// SwapHandle replaces the element id denotes with value and hands back the
// prior value as an Occupied Entry, or a Vacant Entry for a stale id.
func (b *Buffer[T]) SwapHandle(id types.ID, value T) types.Entry[T] {
	pos, ok := b.live(id)
	if !ok {
		return types.Vacant[T]()
	}
	old := b.elems[pos]
	b.elems[pos] = value
	return types.Occupied(&old)
}

// RemoveHandle removes the element id denotes and hands back the removed
// value as an Occupied Entry, or a Vacant Entry for a stale id. The last
// dense element moves into the vacated position; its token is unaffected.
func (b *Buffer[T]) RemoveHandle(id types.ID) types.Entry[T] {
	if _, ok := b.live(id); !ok {
		return types.Vacant[T]()
	}
	old := b.removeAt(id)
	return types.Occupied(&old)
}

// -----------------------------------------------------------------------------
// Mechanics
// -----------------------------------------------------------------------------

// live resolves id to its dense position, rejecting stale or out-of-range
// ids.
func (b *Buffer[T]) live(id types.ID) (int32, bool) {
	if int(id) >= len(b.sparse) || b.sparse[id].dense == freeSlot {
		return 0, false
	}
	return b.sparse[id].dense, true
}

// growAll grows the three parallel arrays to hold need elements. A denial
// partway through refunds the grants already made, so a failed insert
// leaves both the buffer and the hook's accounting unchanged.
func (b *Buffer[T]) growAll(hook mem.Hook, need int) error {
	elems, err := mem.GrowSlice(hook, b.elems, need)
	if err != nil {
		return err
	}
	ids, err := mem.GrowSlice(hook, b.ids, need)
	if err != nil {
		if cap(elems) != cap(b.elems) {
			mem.Shrink(hook, cap(elems), cap(b.elems), mem.SizeOf[T]())
		}
		return err
	}
	sparse, err := mem.GrowSlice(hook, b.sparse, need)
	if err != nil {
		if cap(elems) != cap(b.elems) {
			mem.Shrink(hook, cap(elems), cap(b.elems), mem.SizeOf[T]())
		}
		if cap(ids) != cap(b.ids) {
			mem.Shrink(hook, cap(ids), cap(b.ids), mem.SizeOf[types.ID]())
		}
		return err
	}
	b.elems, b.ids, b.sparse = elems, ids, sparse
	return nil
}

// insert appends value, reusing a freed slot token before minting a new
// one. Storage is only touched after growth succeeded.
func (b *Buffer[T]) insert(value T) (types.ID, error) {
	var id types.ID
	if b.free != types.NilID {
		id = b.free
		b.free = b.sparse[id].freeNext
	} else {
		need := len(b.sparse) + 1
		if need > cap(b.sparse) {
			if b.hook == nil || b.reserved {
				if cap(b.sparse) > 0 {
					return types.NilID, types.ErrCapacity
				}
				return types.NilID, types.ErrNoAllocator
			}
			if err := b.growAll(b.hook, need); err != nil {
				return types.NilID, err
			}
		}
		b.sparse = append(b.sparse, slotRef{})
		id = types.ID(len(b.sparse) - 1)
	}
	pos := int32(len(b.elems))
	b.elems = append(b.elems, value)
	b.ids = append(b.ids, id)
	b.sparse[id] = slotRef{dense: pos, freeNext: types.NilID}
	return id, nil
}

// removeAt deletes the element id denotes, compacting the dense array by
// moving the last element into the hole, and returns the removed value.
// The slot token goes on the free list.
func (b *Buffer[T]) removeAt(id types.ID) T {
	pos := b.sparse[id].dense
	last := int32(len(b.elems) - 1)
	old := b.elems[pos]
	if pos != last {
		b.elems[pos] = b.elems[last]
		b.ids[pos] = b.ids[last]
		b.sparse[b.ids[pos]].dense = pos
	}
	var zero T
	b.elems[last] = zero
	b.elems = b.elems[:last]
	b.ids = b.ids[:last]
	b.sparse[id] = slotRef{dense: freeSlot, freeNext: b.free}
	b.free = id
	return old
}

// -----------------------------------------------------------------------------
// Memory management protocol
// -----------------------------------------------------------------------------

// Reserve pre-grows capacity for n additional elements through hook so
// future inserts need no further growth. Reserved buffers cannot grow.
// Advisory: failure leaves the buffer untouched and usable.
func (b *Buffer[T]) Reserve(n int, hook mem.Hook) error {
	if n <= 0 {
		return nil
	}
	if b.reserved {
		return types.ErrCapacity
	}
	return b.growAll(hook, len(b.sparse)+n)
}

// Clear removes every element, invoking dtor exactly once per live element
// when supplied. The backing storage keeps its capacity.
func (b *Buffer[T]) Clear(dtor func(*T)) {
	if dtor != nil {
		for i := range b.elems {
			dtor(&b.elems[i])
		}
	}
	clear(b.elems)
	b.elems = b.elems[:0]
	b.ids = b.ids[:0]
	b.sparse = b.sparse[:0]
	b.free = types.NilID
}

// ClearAndFree removes every element like Clear and additionally releases
// the backing storage through the buffer's recorded hook. Buffers built
// over a one-time reservation have no recorded hook; use
// ClearAndFreeReserve.
func (b *Buffer[T]) ClearAndFree(dtor func(*T)) {
	b.Clear(dtor)
	mem.FreeSlice(b.hook, b.elems)
	mem.FreeSlice(b.hook, b.ids)
	mem.FreeSlice(b.hook, b.sparse)
	b.elems = nil
	b.ids = nil
	b.sparse = nil
}

// ClearAndFreeReserve releases a reserved buffer's storage through hook,
// which must be the authority the reservation was made with. The buffer
// cannot infer an authority it was never given.
func (b *Buffer[T]) ClearAndFreeReserve(dtor func(*T), hook mem.Hook) error {
	if hook == nil {
		return types.ErrNilArgument
	}
	b.Clear(dtor)
	if _, err := hook.Grow(cap(b.elems), 0, mem.SizeOf[T]()); err != nil {
		return err
	}
	if _, err := hook.Grow(cap(b.ids), 0, mem.SizeOf[types.ID]()); err != nil {
		return err
	}
	if _, err := hook.Grow(cap(b.sparse), 0, mem.SizeOf[slotRef]()); err != nil {
		return err
	}
	b.elems = nil
	b.ids = nil
	b.sparse = nil
	b.reserved = false
	return nil
}

// Copy deep-copies all live elements of src into dst, growing dst through
// hook when its capacity is insufficient. The slot layout is copied
// verbatim, so handles issued by src denote the corresponding elements of
// dst. On allocation denial dst's visible state is untouched. A reserved
// dst cannot grow: copies beyond its reservation fail with ErrCapacity.
func Copy[T any](dst, src *Buffer[T], hook mem.Hook) error {
	if dst == nil || src == nil {
		return types.ErrNilArgument
	}
	if dst.reserved && len(src.sparse) > cap(dst.sparse) {
		return types.ErrCapacity
	}
	if err := dst.growAll(hook, len(src.sparse)); err != nil {
		return err
	}
	dst.elems = append(dst.elems[:0], src.elems...)
	dst.ids = append(dst.ids[:0], src.ids...)
	dst.sparse = append(dst.sparse[:0], src.sparse...)
	dst.free = src.free
	return nil
}

// -----------------------------------------------------------------------------
// State/validation protocol
// -----------------------------------------------------------------------------

// Count returns the number of live elements.
func (b *Buffer[T]) Count() int { return len(b.elems) }

// Capacity returns the number of element slots allocated.
func (b *Buffer[T]) Capacity() int { return cap(b.elems) }

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool { return len(b.elems) == 0 }

// Validate audits the dense/sparse cross-links and the free-list
// bookkeeping. Never mutates.
func (b *Buffer[T]) Validate() bool {
	if len(b.elems) != len(b.ids) {
		return false
	}
	for i, id := range b.ids {
		if int(id) >= len(b.sparse) || b.sparse[id].dense != int32(i) {
			return false
		}
	}
	freeCount := 0
	for id := b.free; id != types.NilID; id = b.sparse[id].freeNext {
		if int(id) >= len(b.sparse) || b.sparse[id].dense != freeSlot {
			return false
		}
		freeCount++
		if freeCount > len(b.sparse) {
			return false
		}
	}
	return len(b.elems)+freeCount == len(b.sparse)
}

// Stats implements the uniform statistics surface.
func (b *Buffer[T]) Stats() types.Stats {
	bytes := cap(b.elems)*mem.SizeOf[T]() +
		cap(b.ids)*mem.SizeOf[types.ID]() +
		cap(b.sparse)*mem.SizeOf[slotRef]()
	return types.Stats{
		Count:       len(b.elems),
		Capacity:    cap(b.elems),
		BytesApprox: bytes,
		Impl:        "buffer",
	}
}
