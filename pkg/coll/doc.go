/*
Package coll is the high-level entry point to the collkit container
backends.

# Quick Start

Construct a container, insert, look up:

	m, err := coll.NewHashMap[string, int](nil)
	if err != nil {
	    log.Fatal(err)
	}
	m.InsertOrAssign("a", 1)
	if v := m.GetKeyValue("a"); v != nil {
	    fmt.Println(*v)
	}

# Backends

Each backend is a concrete generic type with the same protocol surfaces
where they structurally apply:

  - hashmap.Map: unordered keyed lookup, Entry protocol
  - omap.Map: key-ordered lookup, Entry protocol, ranged iteration
  - list.List: doubly linked sequence, constant-time splicing
  - slist.List: singly linked sequence, front operations
  - pqueue.Queue: priority queue, Handle protocol, priority adjustment
  - buffer.Buffer: flat dense storage, slot-stable Handle protocol

The facade constructors accept a single Options value covering capacity,
allocation authority and fixed-capacity mode. Passing nil options yields
an unrestricted heap-backed container.

# Memory

Containers never allocate element storage on their own authority; every
growth request goes through a mem.Hook. The facade defaults to the
unrestricted heap hook. Supply a mem.BudgetHook to cap memory, or set
Options.Fixed to pin the container at its construction capacity.

# Errors

Lookup misses are not errors: they surface as Vacant Entry/Handle
occupancy. Errors report failed insert-class operations
(ErrAllocDenied, ErrCapacity, ErrNoAllocator), invalid arguments
(ErrNilArgument, ErrInvalidHandle) and pops from empty containers
(ErrEmpty). All are matchable with errors.Is.
*/
package coll
