package acceptance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/collkit/coll/hashmap"
	"github.com/joshuapare/collkit/coll/list"
	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/coll"
)

// TestKeyedSwapEntry seeds keys 1..5 with value key*10, swaps key 3 to 999
// and checks the prior value comes back while the new one sticks.
func TestKeyedSwapEntry(t *testing.T) {
	m := newIntMap(t, 1, 2, 3, 4, 5)

	e := m.Entry(3)
	require.True(t, e.Occupied())
	require.Equal(t, 30, *e.Unwrap())

	old := m.SwapEntry(3, 999)
	require.True(t, old.Occupied())
	require.Equal(t, 30, *old.Unwrap())

	got := m.GetKeyValue(3)
	require.NotNil(t, got)
	require.Equal(t, 999, *got)
	require.Equal(t, 5, m.Count())
	require.True(t, m.Validate())
}

// TestSpliceBetweenLists moves the first two nodes of A=[1,2,3,4] into an
// empty B.
func TestSpliceBetweenLists(t *testing.T) {
	a := newIntList(t, 1, 2, 3, 4)
	b := coll.NewList[int](nil)

	third := a.Begin().Next().Next()
	require.NoError(t, b.SpliceRange(b.End(), a, a.Begin(), third))

	require.Equal(t, []int{3, 4}, listValues(a))
	require.Equal(t, []int{1, 2}, listValues(b))
	require.True(t, a.Validate())
	require.True(t, b.Validate())
}

// TestPriorityExtractionOrder inserts 5,3,8,1 into a min-queue and expects
// front-ordered extraction 1,3,5,8.
func TestPriorityExtractionOrder(t *testing.T) {
	q, err := coll.NewPQueue[int](nil, nil)
	require.NoError(t, err)

	for _, v := range []int{5, 3, 8, 1} {
		h := q.Push(v)
		require.False(t, h.InsertError())
	}

	var got []int
	for !q.IsEmpty() {
		got = append(got, *q.Front())
		require.NoError(t, q.Pop())
	}
	require.Equal(t, []int{1, 3, 5, 8}, got)
}

// TestFixedCapacityBufferOverflow fills a fixed buffer of capacity 2 and
// checks the third insert reports an observable insert error without
// mutating the container.
func TestFixedCapacityBufferOverflow(t *testing.T) {
	b, err := coll.NewBuffer[int](&coll.Options{Capacity: 2, Fixed: true})
	require.NoError(t, err)

	_, err = b.PushBack(1)
	require.NoError(t, err)
	_, err = b.PushBack(2)
	require.NoError(t, err)

	h := b.InsertHandle(3)
	require.True(t, h.InsertError())
	require.ErrorIs(t, h.Err(), coll.ErrCapacity)
	require.False(t, h.Occupied())
	require.Equal(t, 2, b.Count())
	require.True(t, b.Validate())
}

// TestClearRunsDestructorAndKeepsCapacity clears a 3-element container and
// expects exactly 3 destructor calls with capacity unchanged.
func TestClearRunsDestructorAndKeepsCapacity(t *testing.T) {
	m, err := coll.NewHashMap[int, int](&coll.Options{Capacity: 8})
	require.NoError(t, err)
	for k := 1; k <= 3; k++ {
		require.False(t, m.TryInsert(k, k).InsertError())
	}
	capBefore := m.Capacity()

	dtors := 0
	m.Clear(func(*int) { dtors++ })

	require.Equal(t, 3, dtors)
	require.True(t, m.IsEmpty())
	require.Equal(t, capBefore, m.Capacity())
	require.True(t, m.Validate())
}

// TestClearAndFreeReleasesStorage checks ClearAndFree drops both count and
// capacity and refunds the allocation budget.
func TestClearAndFreeReleasesStorage(t *testing.T) {
	budget := mem.NewBudget(1 << 16)
	m, err := coll.NewHashMap[int, int](&coll.Options{Capacity: 8, Hook: budget})
	require.NoError(t, err)
	for k := 0; k < 8; k++ {
		require.False(t, m.TryInsert(k, k).InsertError())
	}
	require.NotZero(t, budget.Used())

	m.ClearAndFree(nil)
	require.Zero(t, m.Count())
	require.Zero(t, m.Capacity())
	require.Zero(t, budget.Used())
}

// TestCopyProducesEqualContainer checks deep copy yields a valid container
// with element-wise equality.
func TestCopyProducesEqualContainer(t *testing.T) {
	src := newIntMap(t, 1, 2, 3, 4, 5)
	dst, err := coll.NewHashMap[int, int](nil)
	require.NoError(t, err)

	require.NoError(t, hashmap.Copy(dst, src, mem.NewHeap()))
	require.True(t, dst.Validate())
	require.Equal(t, src.Count(), dst.Count())
	for it := src.Begin(); it != src.End(); it = it.Next() {
		got := dst.GetKeyValue(it.Key())
		require.NotNil(t, got)
		require.Equal(t, *it.Value(), *got)
	}

	lsrc := newIntList(t, 7, 8, 9)
	ldst := coll.NewList[int](nil)
	require.NoError(t, list.Copy(ldst, lsrc, mem.NewHeap()))
	require.Equal(t, listValues(lsrc), listValues(ldst))
	require.True(t, ldst.Validate())
}

// TestPopStatusOnly checks pops report ErrEmpty as a status, never as a
// value.
func TestPopStatusOnly(t *testing.T) {
	l := coll.NewList[int](nil)
	require.True(t, errors.Is(l.PopFront(), coll.ErrEmpty))
	require.True(t, errors.Is(l.PopBack(), coll.ErrEmpty))

	q, err := coll.NewPQueue[int](nil, nil)
	require.NoError(t, err)
	require.True(t, errors.Is(q.Pop(), coll.ErrEmpty))
}
