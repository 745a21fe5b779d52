package list

import (
	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/types"
)

// node is one element of the sequence. Nodes never move in memory once
// linked; splicing relinks them in place.
type node[T any] struct {
	next, prev *node[T]
	val        T
}

// List is a sentinel-rooted doubly linked sequence.
//
// The zero value is not usable; construct with New.
type List[T any] struct {
	root  node[T] // sentinel: root.next is front, root.prev is back
	count int
	hook  mem.Hook
}

// Compile-time conformance with the shared contracts.
var _ types.Deque[int] = (*List[int])(nil)

// New creates an empty list. hook is the per-node growth authority; a nil
// hook makes every push fail, since the list never allocates implicitly.
func New[T any](hook mem.Hook) *List[T] {
	l := &List[T]{hook: hook}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// authorize requests one node of growth from the recorded hook.
func (l *List[T]) authorize() error {
	if l.hook == nil {
		return types.ErrNoAllocator
	}
	granted, err := l.hook.Grow(l.count, l.count+1, mem.SizeOf[node[T]]())
	if err != nil {
		return err
	}
	if granted < l.count+1 {
		return types.ErrAllocDenied
	}
	return nil
}

// link inserts n between at and at.next.
func (l *List[T]) link(n, at *node[T]) {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	l.count++
}

// unlink removes n from the sequence without touching its value.
func (l *List[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	l.count--
}

// -----------------------------------------------------------------------------
// Push/Pop protocol
// -----------------------------------------------------------------------------

// PushBack appends value and returns a reference to the new element, or
// an error when growth was denied.
func (l *List[T]) PushBack(value T) (*T, error) {
	if err := l.authorize(); err != nil {
		return nil, err
	}
	n := &node[T]{val: value}
	l.link(n, l.root.prev)
	return &n.val, nil
}

// PushFront prepends value and returns a reference to the new element,
// or an error when growth was denied.
func (l *List[T]) PushFront(value T) (*T, error) {
	if err := l.authorize(); err != nil {
		return nil, err
	}
	n := &node[T]{val: value}
	l.link(n, &l.root)
	return &n.val, nil
}

// PopFront removes the first element. Returns ErrEmpty when empty. The
// removed value is discarded; use iterators or Entry-class containers
// when the value is needed.
func (l *List[T]) PopFront() error {
	if l.count == 0 {
		return types.ErrEmpty
	}
	l.unlink(l.root.next)
	mem.Shrink(l.hook, l.count+1, l.count, mem.SizeOf[node[T]]())
	return nil
}

// PopBack removes the last element. Returns ErrEmpty when empty.
func (l *List[T]) PopBack() error {
	if l.count == 0 {
		return types.ErrEmpty
	}
	l.unlink(l.root.prev)
	mem.Shrink(l.hook, l.count+1, l.count, mem.SizeOf[node[T]]())
	return nil
}

// Front returns a reference to the first element, or nil when empty.
func (l *List[T]) Front() *T {
	if l.count == 0 {
		return nil
	}
	return &l.root.next.val
}

// Back returns a reference to the last element, or nil when empty.
func (l *List[T]) Back() *T {
	if l.count == 0 {
		return nil
	}
	return &l.root.prev.val
}

// -----------------------------------------------------------------------------
// Splice protocol
// -----------------------------------------------------------------------------

// Splice relocates the element at it (owned by src) to sit before pos in
// l. pos may be the End sentinel to move the element to the back. The
// element's address is preserved and no destructor runs; ownership of the
// node transfers from src to l.
//
// src may be l itself. The result of splicing an element before its own
// position is the identity.
func (l *List[T]) Splice(pos Iterator[T], src *List[T], it Iterator[T]) error {
	if src == nil || it.n == nil {
		return types.ErrNilArgument
	}
	at := l.posNode(pos)
	n := it.n
	if n == at {
		return nil
	}
	src.unlink(n)
	l.link(n, at.prev)
	return nil
}

// SpliceRange relocates the contiguous run [first, last) from src to sit
// before pos in l, preserving the run's relative order. last may be the
// End sentinel to take everything through src's back. Constant-time
// relink; the walk to count the moved nodes is the only linear cost.
//
// pos must not lie inside [first, last).
func (l *List[T]) SpliceRange(pos Iterator[T], src *List[T], first, last Iterator[T]) error {
	if src == nil || first.n == nil {
		return types.ErrNilArgument
	}
	firstN := first.n
	lastN := last.n
	if lastN == nil {
		lastN = &src.root
	}
	// Count the run; [first, last) may be empty.
	n := 0
	for walk := firstN; walk != lastN; walk = walk.next {
		n++
	}
	if n == 0 {
		return nil
	}
	endN := lastN.prev // inclusive end of the run

	// Relinquish from src.
	firstN.prev.next = lastN
	lastN.prev = firstN.prev
	src.count -= n

	// Assume into l before pos.
	at := l.posNode(pos)
	firstN.prev = at.prev
	endN.next = at
	firstN.prev.next = firstN
	at.prev = endN
	l.count += n
	return nil
}

// posNode resolves an insertion position: the End sentinel means the back
// of the list.
func (l *List[T]) posNode(pos Iterator[T]) *node[T] {
	if pos.n == nil {
		return &l.root
	}
	return pos.n
}

// -----------------------------------------------------------------------------
// Memory management protocol
// -----------------------------------------------------------------------------

// Clear removes every element, invoking dtor exactly once per live
// element when supplied, and releases the nodes through the recorded
// hook.
func (l *List[T]) Clear(dtor func(*T)) {
	for n := l.root.next; n != &l.root; {
		next := n.next
		if dtor != nil {
			dtor(&n.val)
		}
		n.next = nil
		n.prev = nil
		n = next
	}
	mem.Shrink(l.hook, l.count, 0, mem.SizeOf[node[T]]())
	l.root.next = &l.root
	l.root.prev = &l.root
	l.count = 0
}

// ClearAndFree is Clear: a linked sequence retains no buffer beyond its
// nodes, so clearing already releases everything.
func (l *List[T]) ClearAndFree(dtor func(*T)) { l.Clear(dtor) }

// Copy makes dst a deep copy of src, authorizing all new nodes through
// hook before any visible mutation of dst. On denial dst is untouched.
// Copying a list onto itself is a no-op.
func Copy[T any](dst, src *List[T], hook mem.Hook) error {
	if dst == nil || src == nil {
		return types.ErrNilArgument
	}
	if dst == src {
		return nil
	}
	if src.count > 0 {
		if hook == nil {
			return types.ErrNoAllocator
		}
		granted, err := hook.Grow(0, src.count, mem.SizeOf[node[T]]())
		if err != nil {
			return err
		}
		if granted < src.count {
			return types.ErrAllocDenied
		}
	}
	dst.Clear(nil)
	for n := src.root.next; n != &src.root; n = n.next {
		fresh := &node[T]{val: n.val}
		dst.link(fresh, dst.root.prev)
	}
	return nil
}

// -----------------------------------------------------------------------------
// State/validation protocol
// -----------------------------------------------------------------------------

// Count returns the number of live elements.
func (l *List[T]) Count() int { return l.count }

// Capacity returns Count: a linked sequence holds no spare slots.
func (l *List[T]) Capacity() int { return l.count }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.count == 0 }

// Validate audits link consistency: the forward walk must visit exactly
// Count nodes, each mutually linked with its neighbors, and return to the
// sentinel. Never mutates.
func (l *List[T]) Validate() bool {
	if l.root.next == nil || l.root.prev == nil {
		return false
	}
	seen := 0
	for n := l.root.next; n != &l.root; n = n.next {
		if seen > l.count {
			return false
		}
		if n.next == nil || n.prev == nil {
			return false
		}
		if n.next.prev != n || n.prev.next != n {
			return false
		}
		seen++
	}
	return seen == l.count
}

// Stats implements the uniform statistics surface.
func (l *List[T]) Stats() types.Stats {
	return types.Stats{
		Count:       l.count,
		Capacity:    l.count,
		BytesApprox: l.count * mem.SizeOf[node[T]](),
		Impl:        "list",
	}
}
