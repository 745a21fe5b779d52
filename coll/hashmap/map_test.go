package hashmap

import (
	"errors"
	"testing"

	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/internal/testutil"
	"github.com/joshuapare/collkit/pkg/types"
)

func newMap(t *testing.T) *Map[int, int] {
	t.Helper()
	m, err := New[int, int](0, mem.NewHeap())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// Test_Map_TryInsert tests first-insert-wins semantics.
func Test_Map_TryInsert(t *testing.T) {
	m := newMap(t)

	e := m.TryInsert(1, 10)
	if !e.Occupied() || *e.Unwrap() != 10 {
		t.Fatalf("TryInsert(1,10) = occupied=%v val=%v; want occupied with 10", e.Occupied(), e.Unwrap())
	}
	if e.InsertError() {
		t.Fatalf("unexpected insert error: %v", e.Err())
	}

	// Second insert must leave the original untouched.
	e = m.TryInsert(1, 99)
	if !e.Occupied() || *e.Unwrap() != 10 {
		t.Fatalf("second TryInsert returned %v; want existing 10", e.Unwrap())
	}
	if got := m.GetKeyValue(1); got == nil || *got != 10 {
		t.Fatalf("GetKeyValue(1) = %v; want 10", got)
	}
}

// Test_Map_SwapEntry tests prior-value handoff on overwrite.
func Test_Map_SwapEntry(t *testing.T) {
	m := newMap(t)

	if e := m.SwapEntry(7, 1); e.Occupied() {
		t.Fatalf("first swap should be Vacant (no prior value)")
	}
	e := m.SwapEntry(7, 2)
	if !e.Occupied() || *e.Unwrap() != 1 {
		t.Fatalf("second swap returned %v; want prior value 1", e.Unwrap())
	}
	if got := m.GetKeyValue(7); *got != 2 {
		t.Fatalf("final value = %d; want 2", *got)
	}
}

// Test_Map_RemoveKeyValue tests removal and Vacant no-op behavior.
func Test_Map_RemoveKeyValue(t *testing.T) {
	m := newMap(t)

	if e := m.RemoveKeyValue(5); e.Occupied() || e.Unwrap() != nil {
		t.Fatalf("remove on absent key should be Vacant with nil unwrap")
	}
	m.TryInsert(5, 50)
	e := m.RemoveKeyValue(5)
	if !e.Occupied() || *e.Unwrap() != 50 {
		t.Fatalf("remove returned %v; want 50", e.Unwrap())
	}
	if m.Contains(5) {
		t.Fatalf("key 5 still present after removal")
	}
}

// Test_Map_EntryChain tests that chained entry operations behave as one
// logical position.
func Test_Map_EntryChain(t *testing.T) {
	m := newMap(t)
	for _, k := range []int{1, 2, 3, 4, 5} {
		m.TryInsert(k, k*10)
	}

	ref := m.Entry(3).AndModify(func(v *int) { *v++ }).OrInsert(0)
	if ref == nil || *ref != 31 {
		t.Fatalf("AndModify/OrInsert on occupied = %v; want 31", ref)
	}

	ref = m.Entry(6).AndModify(func(v *int) { *v++ }).OrInsert(60)
	if ref == nil || *ref != 60 {
		t.Fatalf("OrInsert on vacant = %v; want 60", ref)
	}

	ref = m.Entry(7).OrInsertWith(func() int { return 70 })
	if ref == nil || *ref != 70 {
		t.Fatalf("OrInsertWith = %v; want 70", ref)
	}

	// InsertEntry installs without a fresh lookup.
	if ref := m.Entry(3).InsertEntry(999); *ref != 999 {
		t.Fatalf("InsertEntry = %d; want 999", *ref)
	}
	if got := m.GetKeyValue(3); *got != 999 {
		t.Fatalf("value after InsertEntry = %d; want 999", *got)
	}

	removed := m.Entry(2).Remove()
	if !removed.Occupied() || *removed.Unwrap() != 20 {
		t.Fatalf("Entry.Remove = %v; want 20", removed.Unwrap())
	}
	if m.Entry(2).Occupied() {
		t.Fatalf("entry still occupied after Remove")
	}

	// Removal chains off the entry's captured position: modify-then-remove
	// in one chain hands back the modified value and vacates the key.
	got := m.Entry(1).AndModify(func(v *int) { *v += 5 }).Remove()
	if !got.Occupied() || *got.Unwrap() != 15 {
		t.Fatalf("chained Remove = %v; want 15", got.Unwrap())
	}
	if m.Contains(1) {
		t.Fatalf("key survived chained Remove")
	}
	if !m.Validate() {
		t.Fatalf("map invariant violated after chained Remove")
	}
}

// Test_Map_FixedCapacity tests the nil-hook fixed-capacity mode.
func Test_Map_FixedCapacity(t *testing.T) {
	m, err := New[int, int](2, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.TryInsert(1, 1)
	m.TryInsert(2, 2)

	e := m.TryInsert(3, 3)
	if !e.InsertError() || !errors.Is(e.Err(), types.ErrCapacity) {
		t.Fatalf("insert into full fixed map: err=%v; want ErrCapacity", e.Err())
	}
	if e.Occupied() {
		t.Fatalf("failed insert must not be Occupied")
	}
	if m.Count() != 2 {
		t.Fatalf("count = %d after denied insert; want 2", m.Count())
	}
}

// Test_Map_NoHook tests that a zero-capacity map without a hook refuses
// growth outright.
func Test_Map_NoHook(t *testing.T) {
	m, err := New[int, int](0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e := m.TryInsert(1, 1)
	if !errors.Is(e.Err(), types.ErrNoAllocator) {
		t.Fatalf("err = %v; want ErrNoAllocator", e.Err())
	}
}

// Test_Map_AllocationDenial tests that a denied insert leaves no partial state.
func Test_Map_AllocationDenial(t *testing.T) {
	budget := mem.NewBudget(8 * (mem.SizeOf[int]() * 2))
	m, err := New[int, int](8, budget)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 8; i++ {
		if e := m.TryInsert(i, i); e.InsertError() {
			t.Fatalf("insert %d within budget failed: %v", i, e.Err())
		}
	}
	e := m.TryInsert(8, 8)
	if !errors.Is(e.Err(), types.ErrAllocDenied) {
		t.Fatalf("err = %v; want ErrAllocDenied", e.Err())
	}
	if m.Count() != 8 || !m.Validate() {
		t.Fatalf("map mutated by failed insert: count=%d validate=%v", m.Count(), m.Validate())
	}
}

// Test_Map_ClearRetainsCapacity tests destructor counting and capacity
// retention.
func Test_Map_ClearRetainsCapacity(t *testing.T) {
	m := newMap(t)
	for i := 0; i < 3; i++ {
		m.TryInsert(i, i)
	}
	capBefore := m.Capacity()

	calls := 0
	m.Clear(func(*int) { calls++ })
	if calls != 3 {
		t.Fatalf("destructor ran %d times; want 3", calls)
	}
	if !m.IsEmpty() {
		t.Fatalf("map not empty after Clear")
	}
	if m.Capacity() != capBefore {
		t.Fatalf("capacity changed by Clear: %d -> %d", capBefore, m.Capacity())
	}
}

// Test_Map_ClearAndFree tests full release of backing storage.
func Test_Map_ClearAndFree(t *testing.T) {
	budget := mem.NewBudget(1 << 16)
	m, err := New[int, int](0, budget)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 100; i++ {
		m.TryInsert(i, i)
	}
	m.ClearAndFree(nil)
	if m.Count() != 0 || m.Capacity() != 0 {
		t.Fatalf("count=%d capacity=%d after ClearAndFree; want 0,0", m.Count(), m.Capacity())
	}
	if budget.Used() != 0 {
		t.Fatalf("budget not reclaimed: %d bytes still charged", budget.Used())
	}
	// The map stays usable after release.
	if e := m.TryInsert(1, 1); e.InsertError() {
		t.Fatalf("insert after ClearAndFree: %v", e.Err())
	}
}

// Test_Map_Copy tests deep copy with allocator authorization.
func Test_Map_Copy(t *testing.T) {
	src := newMap(t)
	for i := 0; i < 50; i++ {
		src.TryInsert(i, i*2)
	}
	dst := newMap(t)

	if err := Copy(dst, src, mem.NewHeap()); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if dst.Count() != src.Count() || !dst.Validate() {
		t.Fatalf("copy mismatch: count=%d want=%d validate=%v", dst.Count(), src.Count(), dst.Validate())
	}
	for i := 0; i < 50; i++ {
		if got := dst.GetKeyValue(i); got == nil || *got != i*2 {
			t.Fatalf("dst[%d] = %v; want %d", i, got, i*2)
		}
	}
	// Denied copy leaves dst visibly untouched.
	empty := newMap(t)
	if err := Copy(empty, src, mem.NewDeny()); !errors.Is(err, types.ErrAllocDenied) {
		t.Fatalf("Copy under deny: %v; want ErrAllocDenied", err)
	}
	if empty.Count() != 0 {
		t.Fatalf("denied copy mutated dst: count=%d", empty.Count())
	}
}

// Test_Map_Iteration tests forward/reverse traversal against sentinels.
func Test_Map_Iteration(t *testing.T) {
	m := newMap(t)
	want := map[int]bool{}
	for i := 0; i < 10; i++ {
		m.TryInsert(i, i)
		want[i] = true
	}

	seen := 0
	for it := m.Begin(); it != m.End(); it = it.Next() {
		if !want[it.Key()] {
			t.Fatalf("unexpected key %d", it.Key())
		}
		seen++
	}
	if seen != 10 {
		t.Fatalf("forward traversal saw %d elements; want 10", seen)
	}

	seen = 0
	for it := m.ReverseBegin(); it != m.ReverseEnd(); it = it.Prev() {
		seen++
	}
	if seen != 10 {
		t.Fatalf("reverse traversal saw %d elements; want 10", seen)
	}

	// Empty container: begin equals the sentinel.
	m.Clear(nil)
	if m.Begin() != m.End() || m.ReverseBegin() != m.ReverseEnd() {
		t.Fatalf("empty traversal did not start at sentinel")
	}
}

// Test_Map_RandomWorkload drives a seeded insert/remove mix and audits
// invariants after every step.
func Test_Map_RandomWorkload(t *testing.T) {
	rng := testutil.NewRand(t)
	m := newMap(t)
	shadow := map[int]int{}

	for step := 0; step < 2000; step++ {
		key := rng.Intn(200)
		switch rng.Intn(3) {
		case 0:
			m.InsertOrAssign(key, step)
			shadow[key] = step
		case 1:
			e := m.RemoveKeyValue(key)
			if _, ok := shadow[key]; ok != e.Occupied() {
				t.Fatalf("step %d: remove occupancy mismatch for key %d", step, key)
			}
			delete(shadow, key)
		default:
			got := m.GetKeyValue(key)
			want, ok := shadow[key]
			if ok != (got != nil) || (ok && *got != want) {
				t.Fatalf("step %d: lookup mismatch for key %d", step, key)
			}
		}
		if !m.Validate() {
			t.Fatalf("step %d: validate failed", step)
		}
	}
	if m.Count() != len(shadow) {
		t.Fatalf("final count %d != shadow %d", m.Count(), len(shadow))
	}
}
