// Package pqueue provides the priority queue backend of the uniform
// container interface.
//
// # Overview
//
// Queue is a binary heap over an element arena. The heap array holds slot
// tokens rather than elements, so sifting reorders tokens while every
// element stays in its arena slot. That is what makes the Handle protocol
// work here: the ID returned by Push keeps denoting the same element
// across any sequence of pushes, pops and priority adjustments until that
// element itself is removed.
//
// Ordering comes from a comparison function fixed at construction.
// cmp(a, b) < 0 places a closer to the front, so cmp.Compare yields a
// min-queue. Priority adjustment goes through Update, or through
// Increase/Decrease when the caller knows the direction the element will
// move, which saves the fixup pass in the other direction.
//
// A destructor may be registered at construction. Pop, Erase and Clear run
// it on removed elements; Extract does not, since it transfers ownership
// of the value to the caller.
//
// Supported protocol surfaces:
//
//   - Push/Pop: Push (returns a Handle), Pop, Front
//   - Priority: Update, Increase, Decrease, Erase, Extract
//   - Memory: Copy, Reserve, Clear, ClearAndFree
//   - State: Count, Capacity, IsEmpty, Validate, Stats
package pqueue
