package slist

import (
	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/types"
)

// node is one element of the chain.
type node[T any] struct {
	next *node[T]
	val  T
}

// List is a front-anchored singly linked sequence.
//
// The zero value is not usable; construct with New.
type List[T any] struct {
	head  *node[T]
	count int
	hook  mem.Hook
}

// Compile-time conformance with the shared state contract.
var _ types.Container = (*List[int])(nil)

// New creates an empty list. hook is the per-node growth authority; a nil
// hook makes every push fail.
func New[T any](hook mem.Hook) *List[T] {
	return &List[T]{hook: hook}
}

// PushFront prepends value and returns a reference to the new element, or
// an error when growth was denied.
func (l *List[T]) PushFront(value T) (*T, error) {
	if l.hook == nil {
		return nil, types.ErrNoAllocator
	}
	granted, err := l.hook.Grow(l.count, l.count+1, mem.SizeOf[node[T]]())
	if err != nil {
		return nil, err
	}
	if granted < l.count+1 {
		return nil, types.ErrAllocDenied
	}
	l.head = &node[T]{next: l.head, val: value}
	l.count++
	return &l.head.val, nil
}

// PopFront removes the first element. Returns ErrEmpty when empty.
func (l *List[T]) PopFront() error {
	if l.head == nil {
		return types.ErrEmpty
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.count--
	mem.Shrink(l.hook, l.count+1, l.count, mem.SizeOf[node[T]]())
	return nil
}

// Front returns a reference to the first element, or nil when empty.
func (l *List[T]) Front() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.val
}

// SpliceFront relocates the first n nodes of src to the front of l,
// preserving their relative order. Element addresses are preserved and no
// destructor runs; ownership of the nodes transfers to l. Moving fewer
// than n available nodes moves all of src.
func (l *List[T]) SpliceFront(src *List[T], n int) error {
	if src == nil {
		return types.ErrNilArgument
	}
	if n <= 0 || src.head == nil {
		return nil
	}
	if n > src.count {
		n = src.count
	}
	first := src.head
	last := first
	for i := 1; i < n; i++ {
		last = last.next
	}
	src.head = last.next
	src.count -= n
	last.next = l.head
	l.head = first
	l.count += n
	return nil
}

// SpliceAfter relocates the single node at it in src to follow pos in l.
// A sentinel pos places the node at the front. Element addresses are
// preserved and no destructor runs.
func (l *List[T]) SpliceAfter(pos Iterator[T], src *List[T], it Iterator[T]) error {
	return l.SpliceRangeAfter(pos, src, it, it)
}

// SpliceRangeAfter relocates the inclusive span [first, last] of src to
// follow pos in l, preserving relative order. A sentinel pos places the
// span at the front. pos must not lie inside the moved span. Sentinel
// span bounds make the call a no-op.
func (l *List[T]) SpliceRangeAfter(pos Iterator[T], src *List[T], first, last Iterator[T]) error {
	if src == nil {
		return types.ErrNilArgument
	}
	if first.n == nil || last.n == nil {
		return nil
	}

	// Unlinking needs first's predecessor, which a single link cannot
	// reach; walk src from the head.
	var prev *node[T]
	if src.head != first.n {
		for p := src.head; p != nil; p = p.next {
			if p.next == first.n {
				prev = p
				break
			}
		}
		if prev == nil {
			return types.ErrInvalidHandle
		}
	}

	moved := 1
	for cur := first.n; cur != last.n; cur = cur.next {
		if cur == nil || moved > src.count {
			return types.ErrInvalidHandle
		}
		moved++
	}

	if prev == nil {
		src.head = last.n.next
	} else {
		prev.next = last.n.next
	}
	src.count -= moved

	if pos.n == nil {
		last.n.next = l.head
		l.head = first.n
	} else {
		last.n.next = pos.n.next
		pos.n.next = first.n
	}
	l.count += moved
	return nil
}

// Clear removes every element, invoking dtor exactly once per live
// element when supplied, and releases the nodes through the recorded
// hook.
func (l *List[T]) Clear(dtor func(*T)) {
	for n := l.head; n != nil; {
		next := n.next
		if dtor != nil {
			dtor(&n.val)
		}
		n.next = nil
		n = next
	}
	mem.Shrink(l.hook, l.count, 0, mem.SizeOf[node[T]]())
	l.head = nil
	l.count = 0
}

// ClearAndFree is Clear: the chain retains no buffer beyond its nodes.
func (l *List[T]) ClearAndFree(dtor func(*T)) { l.Clear(dtor) }

// Copy makes dst a deep copy of src, authorizing all new nodes through
// hook before any visible mutation of dst. Copying a list onto itself is
// a no-op.
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
	var tail *node[T]
	for n := src.head; n != nil; n = n.next {
		fresh := &node[T]{val: n.val}
		if tail == nil {
			dst.head = fresh
		} else {
			tail.next = fresh
		}
		tail = fresh
		dst.count++
	}
	return nil
}

// Count returns the number of live elements.
func (l *List[T]) Count() int { return l.count }

// Capacity returns Count: a linked sequence holds no spare slots.
func (l *List[T]) Capacity() int { return l.count }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.count == 0 }

// Validate audits that the chain length matches the recorded count.
// Never mutates.
func (l *List[T]) Validate() bool {
	seen := 0
	for n := l.head; n != nil; n = n.next {
		seen++
		if seen > l.count {
			return false
		}
	}
	return seen == l.count
}

// Stats implements the uniform statistics surface.
func (l *List[T]) Stats() types.Stats {
	return types.Stats{
		Count:       l.count,
		Capacity:    l.count,
		BytesApprox: l.count * mem.SizeOf[node[T]](),
		Impl:        "slist",
	}
}
