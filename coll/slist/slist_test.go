package slist

import (
	"errors"
	"testing"

	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/types"
)

func collect[T any](l *List[T]) []T {
	var out []T
	for it := l.Begin(); it != l.End(); it = it.Next() {
		out = append(out, *it.Value())
	}
	return out
}

func fill(t *testing.T, l *List[int], vals ...int) {
	t.Helper()
	for _, v := range vals {
		if _, err := l.PushFront(v); err != nil {
			t.Fatalf("PushFront(%d): %v", v, err)
		}
	}
}

// Test_SList_PushPop tests stack-order push/pop and empty-pop status.
func Test_SList_PushPop(t *testing.T) {
	l := New[int](mem.NewHeap())

	if err := l.PopFront(); !errors.Is(err, types.ErrEmpty) {
		t.Fatalf("PopFront on empty: %v; want ErrEmpty", err)
	}
	if l.Front() != nil {
		t.Fatalf("Front on empty should be nil")
	}

	fill(t, l, 1, 2, 3)
	if got := collect(l); len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("sequence = %v; want [3 2 1]", got)
	}
	if *l.Front() != 3 {
		t.Fatalf("Front = %d; want 3", *l.Front())
	}

	if err := l.PopFront(); err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if got := collect(l); len(got) != 2 || got[0] != 2 {
		t.Fatalf("after pop = %v; want [2 1]", got)
	}
	if !l.Validate() {
		t.Fatalf("chain invariant violated")
	}
}

// Test_SList_SpliceFront tests moving a run of nodes between lists with
// order and address preservation.
func Test_SList_SpliceFront(t *testing.T) {
	a := New[int](mem.NewHeap())
	b := New[int](mem.NewHeap())
	fill(t, a, 4, 3, 2, 1) // a = [1 2 3 4]
	fill(t, b, 9)

	addr := a.Front()
	if err := b.SpliceFront(a, 2); err != nil {
		t.Fatalf("SpliceFront: %v", err)
	}
	if got := collect(b); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 9 {
		t.Fatalf("B = %v; want [1 2 9]", got)
	}
	if got := collect(a); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("A = %v; want [3 4]", got)
	}
	if b.Front() != addr {
		t.Fatalf("element address changed across splice")
	}
	if !a.Validate() || !b.Validate() {
		t.Fatalf("chain invariants violated after splice")
	}

	// Asking for more nodes than src holds drains src.
	if err := b.SpliceFront(a, 10); err != nil {
		t.Fatalf("SpliceFront overshoot: %v", err)
	}
	if !a.IsEmpty() || b.Count() != 5 {
		t.Fatalf("counts = %d/%d; want 0/5", a.Count(), b.Count())
	}

	if err := b.SpliceFront(nil, 1); !errors.Is(err, types.ErrNilArgument) {
		t.Fatalf("nil src: %v; want ErrNilArgument", err)
	}
}

// Test_SList_SpliceAfter tests positional single-node and range splices.
func Test_SList_SpliceAfter(t *testing.T) {
	a := New[int](mem.NewHeap())
	b := New[int](mem.NewHeap())
	fill(t, a, 5, 4, 3, 2, 1) // a = [1 2 3 4 5]
	fill(t, b, 9, 8)          // b = [8 9]

	// Move a's [2 3 4] after b's first node.
	first := a.Begin().Next()
	last := first.Next().Next()
	if err := b.SpliceRangeAfter(b.Begin(), a, first, last); err != nil {
		t.Fatalf("SpliceRangeAfter: %v", err)
	}
	if got := collect(b); len(got) != 5 || got[0] != 8 || got[1] != 2 || got[3] != 4 || got[4] != 9 {
		t.Fatalf("B = %v; want [8 2 3 4 9]", got)
	}
	if got := collect(a); len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Fatalf("A = %v; want [1 5]", got)
	}
	if !a.Validate() || !b.Validate() {
		t.Fatalf("chain invariants violated after range splice")
	}

	// Single node to the front via the sentinel position.
	if err := a.SpliceAfter(a.End(), b, b.Begin()); err != nil {
		t.Fatalf("SpliceAfter: %v", err)
	}
	if got := collect(a); len(got) != 3 || got[0] != 8 {
		t.Fatalf("A = %v; want [8 1 5]", got)
	}

	// Sentinel span bounds are a no-op; nil src is rejected.
	if err := a.SpliceAfter(a.Begin(), b, b.End()); err != nil || a.Count() != 3 {
		t.Fatalf("sentinel splice: err=%v count=%d", err, a.Count())
	}
	if err := a.SpliceAfter(a.Begin(), nil, Iterator[int]{}); !errors.Is(err, types.ErrNilArgument) {
		t.Fatalf("nil src: %v; want ErrNilArgument", err)
	}

	// A bound that is not part of src is rejected without mutation.
	if err := a.SpliceAfter(a.Begin(), b, a.Begin()); !errors.Is(err, types.ErrInvalidHandle) {
		t.Fatalf("foreign node: %v; want ErrInvalidHandle", err)
	}
}

// Test_SList_GrowthDenial tests hook-denied pushes and per-node budget
// reclaim.
func Test_SList_GrowthDenial(t *testing.T) {
	nodeBytes := mem.SizeOf[int]() * 2 // conservative node size bound
	budget := mem.NewBudget(2 * nodeBytes)
	l := New[int](budget)

	if _, err := l.PushFront(1); err != nil {
		t.Fatalf("push 1: %v", err)
	}
	if _, err := l.PushFront(2); err != nil {
		t.Fatalf("push 2: %v", err)
	}
	if _, err := l.PushFront(3); !errors.Is(err, types.ErrAllocDenied) {
		t.Fatalf("push beyond budget: %v; want ErrAllocDenied", err)
	}
	if l.Count() != 2 {
		t.Fatalf("count = %d after denied push; want 2", l.Count())
	}

	if err := l.PopFront(); err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if _, err := l.PushFront(3); err != nil {
		t.Fatalf("push after reclaim: %v", err)
	}

	noAuth := New[int](nil)
	if _, err := noAuth.PushFront(1); !errors.Is(err, types.ErrNoAllocator) {
		t.Fatalf("push without hook: %v; want ErrNoAllocator", err)
	}
}

// Test_SList_ClearDestructor tests destructor counting on clear.
func Test_SList_ClearDestructor(t *testing.T) {
	budget := mem.NewBudget(1 << 16)
	l := New[int](budget)
	fill(t, l, 1, 2, 3)

	dtors := 0
	l.Clear(func(*int) { dtors++ })
	if dtors != 3 || !l.IsEmpty() || !l.Validate() {
		t.Fatalf("dtors=%d empty=%v validate=%v", dtors, l.IsEmpty(), l.Validate())
	}
	if budget.Used() != 0 {
		t.Fatalf("budget not reclaimed: %d", budget.Used())
	}
}

// Test_SList_Copy tests deep copy with pre-authorized growth.
func Test_SList_Copy(t *testing.T) {
	src := New[int](mem.NewHeap())
	fill(t, src, 3, 2, 1) // src = [1 2 3]
	dst := New[int](mem.NewHeap())
	fill(t, dst, 9)

	if err := Copy(dst, src, mem.NewHeap()); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got := collect(dst); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("dst = %v; want [1 2 3]", got)
	}

	// Denied copy leaves dst visibly untouched.
	if err := Copy(dst, src, mem.NewDeny()); !errors.Is(err, types.ErrAllocDenied) {
		t.Fatalf("Copy under deny: %v", err)
	}
	if got := collect(dst); len(got) != 3 || got[0] != 1 {
		t.Fatalf("denied copy mutated dst: %v", got)
	}

	// Self-copy is a no-op, not a clear.
	if err := Copy(src, src, mem.NewHeap()); err != nil {
		t.Fatalf("self-copy: %v", err)
	}
	if got := collect(src); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("self-copy mutated list: %v", got)
	}
}
