// Package list provides the doubly linked sequence backend of the uniform
// container interface.
//
// # Overview
//
// List is a sentinel-rooted doubly linked sequence. Its distinguishing
// protocol surface is splicing: relocating one node or a contiguous run of
// nodes between positions in the same or a different list is a
// constant-time relink that preserves element addresses and relative
// order and never runs constructors or destructors. It is an ownership
// transfer, not a copy.
//
// Supported protocol surfaces:
//
//   - Push/Pop: PushBack, PushFront, PopBack, PopFront, Front, Back
//   - Splice: Splice (one node), SpliceRange (half-open run)
//   - Iteration: Begin/End, ReverseBegin/ReverseEnd
//   - Memory: Copy, Clear, ClearAndFree
//   - State: Count, Capacity, IsEmpty, Validate, Stats
//
// Each push requests one node's worth of growth from the hook; each pop
// notifies it of the release. Splice moves a node's storage ownership with
// the node: lists that exchange nodes should share one hook so accounting
// budgets stay coherent.
package list
