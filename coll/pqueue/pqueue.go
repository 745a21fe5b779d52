package pqueue

import (
	"cmp"

	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/types"
)

// freePos marks an arena slot on the free list.
const freePos int32 = -1

// qnode is one arena slot: the element plus its current heap position.
type qnode[T any] struct {
	val      T
	pos      int32    // index into the heap array, freePos when free
	freeNext types.ID // next free slot, meaningful only when pos == freePos
}

// Queue is a handle-stable binary heap.
//
// The zero value is not usable; construct with New or NewOrdered. A Queue
// constructed with a nil hook is fixed-capacity: pushes beyond the
// construction capacity fail rather than allocate.
type Queue[T any] struct {
	nodes []qnode[T]
	heap  []types.ID
	free  types.ID
	cmp   func(a, b T) int
	dtor  func(*T)
	hook  mem.Hook
}

// Compile-time conformance with the shared contracts.
var _ types.Heap[int] = (*Queue[int])(nil)

// New creates a Queue ordered by compare, with room for capacity elements.
// compare(a, b) < 0 places a closer to the front. dtor, which may be nil,
// runs on elements removed by Pop, Erase and Clear. hook is the growth
// authority; nil makes the queue fixed-capacity.
func New[T any](capacity int, compare func(a, b T) int, dtor func(*T), hook mem.Hook) (*Queue[T], error) {
	if compare == nil {
		return nil, types.ErrNilArgument
	}
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T]{
		free: types.NilID,
		cmp:  compare,
		dtor: dtor,
		hook: hook,
	}
	if capacity > 0 {
		if hook != nil {
			if _, err := hook.Grow(0, capacity, mem.SizeOf[qnode[T]]()); err != nil {
				return nil, err
			}
			if _, err := hook.Grow(0, capacity, mem.SizeOf[types.ID]()); err != nil {
				return nil, err
			}
		}
		q.nodes = make([]qnode[T], 0, capacity)
		q.heap = make([]types.ID, 0, capacity)
	}
	return q, nil
}

// NewOrdered creates a min-queue over the natural order of T.
func NewOrdered[T cmp.Ordered](capacity int, dtor func(*T), hook mem.Hook) (*Queue[T], error) {
	return New[T](capacity, cmp.Compare, dtor, hook)
}

// -----------------------------------------------------------------------------
// Push/Pop protocol
// -----------------------------------------------------------------------------

// Push inserts value and returns an Occupied Handle whose ID stays valid
// until the element is removed. On growth denial the Handle is Vacant with
// the insert-error bit set and the queue is untouched.
func (q *Queue[T]) Push(value T) types.Handle[T] {
	id, err := q.alloc()
	if err != nil {
		return types.FailHandle[T](err)
	}
	n := &q.nodes[id]
	n.val = value
	n.pos = int32(len(q.heap))
	q.heap = append(q.heap, id)
	q.siftUp(len(q.heap) - 1)
	return types.OccupiedHandle(id, &q.nodes[id].val)
}

// Pop removes the front element and runs the registered destructor on it.
// Returns ErrEmpty when empty.
func (q *Queue[T]) Pop() error {
	if len(q.heap) == 0 {
		return types.ErrEmpty
	}
	q.release(q.removeAt(0), true)
	return nil
}

// Front returns a reference to the front element, or nil when empty. The
// reference is valid until the next mutating call.
func (q *Queue[T]) Front() *T {
	if len(q.heap) == 0 {
		return nil
	}
	return &q.nodes[q.heap[0]].val
}

// -----------------------------------------------------------------------------
// Priority adjustment protocol
// -----------------------------------------------------------------------------

// Update applies fn to the element id denotes, then restores the ordering
// invariant in both directions. Returns ErrInvalidHandle when id does not
// denote a live element.
func (q *Queue[T]) Update(id types.ID, fn func(*T)) error {
	n, err := q.live(id)
	if err != nil {
		return err
	}
	if fn != nil {
		fn(&n.val)
	}
	q.fix(int(n.pos))
	return nil
}

// Increase is Update for modifications known to move the element away from
// the front, permitting a one-directional fixup.
func (q *Queue[T]) Increase(id types.ID, fn func(*T)) error {
	n, err := q.live(id)
	if err != nil {
		return err
	}
	if fn != nil {
		fn(&n.val)
	}
	q.siftDown(int(n.pos))
	return nil
}

// Decrease is Update for modifications known to move the element toward
// the front.
func (q *Queue[T]) Decrease(id types.ID, fn func(*T)) error {
	n, err := q.live(id)
	if err != nil {
		return err
	}
	if fn != nil {
		fn(&n.val)
	}
	q.siftUp(int(n.pos))
	return nil
}

// Erase removes the element id denotes from any position and runs the
// registered destructor on it.
func (q *Queue[T]) Erase(id types.ID) error {
	n, err := q.live(id)
	if err != nil {
		return err
	}
	q.release(q.removeAt(int(n.pos)), true)
	return nil
}

// Extract removes the element id denotes without running the destructor
// and hands the value back as an Occupied Entry. A dead or out-of-range id
// yields a Vacant Entry.
func (q *Queue[T]) Extract(id types.ID) types.Entry[T] {
	n, err := q.live(id)
	if err != nil {
		return types.Vacant[T]()
	}
	old := n.val
	q.release(q.removeAt(int(n.pos)), false)
	return types.Occupied(&old)
}

// -----------------------------------------------------------------------------
// Heap mechanics
// -----------------------------------------------------------------------------

// live resolves id to its arena slot, rejecting stale or out-of-range ids.
func (q *Queue[T]) live(id types.ID) (*qnode[T], error) {
	if int(id) >= len(q.nodes) || q.nodes[id].pos == freePos {
		return nil, types.ErrInvalidHandle
	}
	return &q.nodes[id], nil
}

// alloc produces an arena slot for a new element, reusing the free list
// before growing. Growth of the arena and heap arrays is authorized
// together; a denied grow leaves both untouched.
func (q *Queue[T]) alloc() (types.ID, error) {
	if q.free != types.NilID {
		id := q.free
		q.free = q.nodes[id].freeNext
		return id, nil
	}
	need := len(q.nodes) + 1
	if need > cap(q.nodes) {
		if q.hook == nil {
			if cap(q.nodes) > 0 {
				return types.NilID, types.ErrCapacity
			}
			return types.NilID, types.ErrNoAllocator
		}
		nodes, err := mem.GrowSlice(q.hook, q.nodes, need)
		if err != nil {
			return types.NilID, err
		}
		heap, err := mem.GrowSlice(q.hook, q.heap, need)
		if err != nil {
			if cap(nodes) != cap(q.nodes) {
				mem.Shrink(q.hook, cap(nodes), cap(q.nodes), mem.SizeOf[qnode[T]]())
			}
			return types.NilID, err
		}
		q.nodes, q.heap = nodes, heap
	}
	q.nodes = append(q.nodes, qnode[T]{pos: freePos, freeNext: types.NilID})
	return types.ID(len(q.nodes) - 1), nil
}

// removeAt detaches the heap entry at index i and restores ordering.
// Returns the detached slot's id; the slot itself is still live.
func (q *Queue[T]) removeAt(i int) types.ID {
	id := q.heap[i]
	last := len(q.heap) - 1
	if i != last {
		q.heap[i] = q.heap[last]
		q.nodes[q.heap[i]].pos = int32(i)
	}
	q.heap = q.heap[:last]
	if i < last {
		q.fix(i)
	}
	return id
}

// release returns an arena slot to the free list, optionally running the
// registered destructor first.
func (q *Queue[T]) release(id types.ID, runDtor bool) {
	n := &q.nodes[id]
	if runDtor && q.dtor != nil {
		q.dtor(&n.val)
	}
	var zero T
	n.val = zero
	n.pos = freePos
	n.freeNext = q.free
	q.free = id
}

func (q *Queue[T]) less(i, j int) bool {
	return q.cmp(q.nodes[q.heap[i]].val, q.nodes[q.heap[j]].val) < 0
}

func (q *Queue[T]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.nodes[q.heap[i]].pos = int32(i)
	q.nodes[q.heap[j]].pos = int32(j)
}

func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue[T]) siftDown(i int) {
	n := len(q.heap)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if right := child + 1; right < n && q.less(right, child) {
			child = right
		}
		if !q.less(child, i) {
			return
		}
		q.swap(i, child)
		i = child
	}
}

// fix restores ordering at i after an arbitrary priority change.
func (q *Queue[T]) fix(i int) {
	q.siftUp(i)
	q.siftDown(i)
}

// -----------------------------------------------------------------------------
// Memory management protocol
// -----------------------------------------------------------------------------

// Reserve pre-grows capacity for n additional elements through hook so
// future pushes need no further growth. Advisory: failure leaves the queue
// untouched and usable.
func (q *Queue[T]) Reserve(n int, hook mem.Hook) error {
	if n <= 0 {
		return nil
	}
	need := len(q.nodes) + n
	nodes, err := mem.GrowSlice(hook, q.nodes, need)
	if err != nil {
		return err
	}
	heap, err := mem.GrowSlice(hook, q.heap, need)
	if err != nil {
		if cap(nodes) != cap(q.nodes) {
			mem.Shrink(hook, cap(nodes), cap(q.nodes), mem.SizeOf[qnode[T]]())
		}
		return err
	}
	q.nodes, q.heap = nodes, heap
	return nil
}

// Clear removes every element, running the registered destructor on each.
// The backing storage keeps its capacity.
func (q *Queue[T]) Clear() {
	if q.dtor != nil {
		for i := range q.heap {
			q.dtor(&q.nodes[q.heap[i]].val)
		}
	}
	clear(q.nodes)
	q.nodes = q.nodes[:0]
	q.heap = q.heap[:0]
	q.free = types.NilID
}

// ClearAndFree removes every element like Clear and additionally releases
// the backing storage through the queue's recorded hook.
func (q *Queue[T]) ClearAndFree() {
	q.Clear()
	mem.FreeSlice(q.hook, q.nodes)
	mem.FreeSlice(q.hook, q.heap)
	q.nodes = nil
	q.heap = nil
}

// Copy deep-copies all live elements of src into dst, growing dst through
// hook when its capacity is insufficient. The arena layout is copied
// verbatim, so handles issued by src denote the corresponding elements of
// dst. dst keeps its own comparison function, destructor and hook; the
// copy assumes dst orders elements the way src does.
func Copy[T any](dst, src *Queue[T], hook mem.Hook) error {
	if dst == nil || src == nil {
		return types.ErrNilArgument
	}
	nodes, err := mem.GrowSlice(hook, dst.nodes, len(src.nodes))
	if err != nil {
		return err
	}
	heap, err := mem.GrowSlice(hook, dst.heap, len(src.heap))
	if err != nil {
		if cap(nodes) != cap(dst.nodes) {
			mem.Shrink(hook, cap(nodes), cap(dst.nodes), mem.SizeOf[qnode[T]]())
		}
		return err
	}
	dst.nodes = append(nodes[:0], src.nodes...)
	dst.heap = append(heap[:0], src.heap...)
	dst.free = src.free
	return nil
}

// -----------------------------------------------------------------------------
// State/validation protocol
// -----------------------------------------------------------------------------

// Count returns the number of live elements.
func (q *Queue[T]) Count() int { return len(q.heap) }

// Capacity returns the number of element slots allocated.
func (q *Queue[T]) Capacity() int { return cap(q.nodes) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Validate audits the heap ordering, the position backlinks and the
// free-list bookkeeping. Never mutates.
func (q *Queue[T]) Validate() bool {
	for i := range q.heap {
		id := q.heap[i]
		if int(id) >= len(q.nodes) || q.nodes[id].pos != int32(i) {
			return false
		}
		if i > 0 && q.less(i, (i-1)/2) {
			return false
		}
	}
	freeCount := 0
	for id := q.free; id != types.NilID; id = q.nodes[id].freeNext {
		if int(id) >= len(q.nodes) || q.nodes[id].pos != freePos {
			return false
		}
		freeCount++
		if freeCount > len(q.nodes) {
			return false
		}
	}
	return len(q.heap)+freeCount == len(q.nodes)
}

// Stats implements the uniform statistics surface.
func (q *Queue[T]) Stats() types.Stats {
	bytes := cap(q.nodes)*mem.SizeOf[qnode[T]]() +
		cap(q.heap)*mem.SizeOf[types.ID]()
	return types.Stats{
		Count:       len(q.heap),
		Capacity:    cap(q.nodes),
		BytesApprox: bytes,
		Impl:        "pqueue",
	}
}
