// Package omap provides the ordered-map backend of the uniform container
// interface.
//
// # Overview
//
// Map keeps elements in one flat array sorted by key, located by binary
// search. Flat storage keeps the allocator contract simple (one buffer,
// grown only through the hook) and gives ordered iteration for free;
// inserts and removals shift trailing elements, which is the declared
// tradeoff of this backend family.
//
// Supported protocol surfaces:
//
//   - Entry protocol: SwapEntry, TryInsert, InsertOrAssign,
//     RemoveKeyValue, Entry (fluent)
//   - Membership: GetKeyValue, Contains
//   - Iteration: Begin/End, ReverseBegin/ReverseEnd, in key order
//   - Ranges: EqualRange, EqualRangeReverse
//   - Ordered removal: Erase, Extract, EraseRange, ExtractRange
//   - Memory: Reserve, Copy, Clear, ClearAndFree, ClearAndFreeReserve,
//     NewReserved
//   - State: Count, Capacity, IsEmpty, Validate, Stats
//
// # Ordering
//
// New takes a three-way comparison function; NewOrdered derives it from
// cmp.Compare for ordered key types. Keys are unique: the comparison
// returning zero means "same key".
//
// # Usage Example
//
//	m, err := omap.NewOrdered[int, string](0, mem.NewHeap())
//	if err != nil {
//	    return err
//	}
//	m.TryInsert(3, "c")
//	m.TryInsert(1, "a")
//	for it := m.Begin(); it != m.End(); it = it.Next() {
//	    fmt.Println(it.Key(), *it.Value()) // ascending key order
//	}
package omap
