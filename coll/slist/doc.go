// Package slist provides the singly linked sequence backend of the
// uniform container interface.
//
// # Overview
//
// List is a front-anchored singly linked sequence: pushes and pops act
// on the front, where a single-link chain does them in constant time.
// Traversal is forward-only; there is no reverse protocol surface for
// this backend family.
//
// Supported protocol surfaces:
//
//   - Push/Pop: PushFront, PopFront, Front
//   - Splice: SpliceFront (first n nodes of another list), SpliceAfter
//     and SpliceRangeAfter (positional, single node or inclusive span)
//   - Iteration: Begin/End, forward only
//   - Memory: Copy, Clear, ClearAndFree
//   - State: Count, Capacity, IsEmpty, Validate, Stats
//
// Each push requests one node's worth of growth from the hook; each pop
// notifies it of the release. Splices move storage ownership with the
// nodes: lists that exchange nodes should share one hook so accounting
// budgets stay coherent. Positional splices pay a head-to-position walk
// to find the unlink point; only the front variants are constant time.
package slist
