package coll_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/coll"
)

// Example shows basic keyed container usage through the facade.
func Example() {
	m, err := coll.NewHashMap[string, int](nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	m.InsertOrAssign("requests", 1)
	if e := m.TryInsert("requests", 99); e.Occupied() {
		fmt.Println("already tracked:", *e.Unwrap())
	}
	if old := m.SwapEntry("requests", 2); old.Occupied() {
		fmt.Println("previous:", *old.Unwrap())
	}

	// Output:
	// already tracked: 1
	// previous: 1
}

// ExampleNewPQueue demonstrates priority ordering and stable handles.
func ExampleNewPQueue() {
	q, err := coll.NewPQueue[int](nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	h := q.Push(5)
	q.Push(3)
	q.Push(8)
	q.Push(1)

	// Reprioritize the element behind h without searching for it.
	if err := q.Decrease(h.ID(), func(v *int) { *v = 0 }); err != nil {
		fmt.Println(err)
		return
	}

	for !q.IsEmpty() {
		fmt.Print(*q.Front(), " ")
		if err := q.Pop(); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println()

	// Output:
	// 0 1 3 8
}

// ExampleNewList demonstrates splicing between linked sequences.
func ExampleNewList() {
	a := coll.NewList[int](nil)
	b := coll.NewList[int](nil)
	for _, v := range []int{1, 2, 3, 4} {
		if _, err := a.PushBack(v); err != nil {
			fmt.Println(err)
			return
		}
	}

	// Move the first two elements of a into b: no copies, no destructors.
	third := a.Begin().Next().Next()
	if err := b.SpliceRange(b.End(), a, a.Begin(), third); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("a count:", a.Count(), "b count:", b.Count())

	// Output:
	// a count: 2 b count: 2
}

// ExampleOptions_fixed demonstrates fixed-capacity construction.
func ExampleOptions_fixed() {
	b, err := coll.NewBuffer[int](&coll.Options{Capacity: 2, Fixed: true})
	if err != nil {
		fmt.Println(err)
		return
	}

	b.InsertHandle(1)
	b.InsertHandle(2)
	if h := b.InsertHandle(3); h.InsertError() {
		fmt.Println("full:", errors.Is(h.Err(), coll.ErrCapacity))
	}

	// Output:
	// full: true
}

// ExampleOptions_budget demonstrates capping memory with a budget hook.
func ExampleOptions_budget() {
	budget := mem.NewBudget(256)
	m, err := coll.NewHashMap[int, int64](&coll.Options{Hook: budget})
	if err != nil {
		fmt.Println(err)
		return
	}

	inserted := 0
	for k := 0; k < 100; k++ {
		if e := m.TryInsert(k, int64(k)); e.InsertError() {
			break
		}
		inserted++
	}
	fmt.Println("inserted before denial:", inserted > 0 && inserted < 100)

	// Output:
	// inserted before denial: true
}
