package coll

import "github.com/joshuapare/collkit/coll/mem"

// Options controls facade container construction. The zero value (or a
// nil pointer) selects an unrestricted heap-backed container with no
// pre-reserved capacity.
type Options struct {
	// Capacity pre-reserves room for this many elements. The reservation
	// is authorized through the effective hook at construction.
	Capacity int

	// Hook is the allocation authority for the container's storage.
	// Nil selects the unrestricted heap hook unless Fixed is set.
	Hook mem.Hook

	// Fixed records no allocation authority at all: the container is
	// pinned at Capacity and inserts beyond it fail with ErrCapacity.
	// Meaningful for the flat backends (hashmap, omap, pqueue, buffer);
	// the linked backends hold no slack capacity, so a fixed linked list
	// refuses every push.
	Fixed bool
}

// hook resolves the effective allocation authority.
func (o *Options) hook() mem.Hook {
	switch {
	case o == nil:
		return mem.NewHeap()
	case o.Fixed:
		return nil
	case o.Hook != nil:
		return o.Hook
	default:
		return mem.NewHeap()
	}
}

// capacity resolves the construction-time reservation.
func (o *Options) capacity() int {
	if o == nil || o.Capacity < 0 {
		return 0
	}
	return o.Capacity
}
