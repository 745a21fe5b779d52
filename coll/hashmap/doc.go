// Package hashmap provides the hash-table backend of the uniform container
// interface.
//
// # Overview
//
// Map stores elements in dense key/value arrays with a hash directory
// mapping keys to dense positions. The dense arrays are the element
// storage and grow only through the allocator hook; the directory is
// internal bookkeeping. Removal compacts by swapping the last element into
// the vacated position, so iteration order is unspecified.
//
// Supported protocol surfaces:
//
//   - Entry protocol: SwapEntry, TryInsert, InsertOrAssign,
//     RemoveKeyValue, Entry (fluent: AndModify, OrInsert, InsertEntry,
//     Remove)
//   - Membership: GetKeyValue, Contains
//   - Iteration: Begin/End, ReverseBegin/ReverseEnd, unordered
//   - Memory: Reserve, Copy, Clear, ClearAndFree
//   - State: Count, Capacity, IsEmpty, Validate, Stats
//
// # Usage Example
//
//	m, err := hashmap.New[string, int](16, mem.NewHeap())
//	if err != nil {
//	    return err
//	}
//	m.TryInsert("a", 1)
//	e := m.Entry("a").AndModify(func(v *int) { *v++ })
//	fmt.Println(*e.Unwrap()) // 2
//
// A Map is owned by one logical execution context at a time; it performs
// no internal locking.
package hashmap
