// Package verify provides cross-backend audit helpers used by tests and
// the collbench stress runner.
//
// # Overview
//
// Backends audit their own structural invariants through Validate. The
// helpers here check properties a caller observes from outside: traversal
// order, heap layout of a drained or raw slice, multiset equality between
// a container and a model. They never mutate their inputs.
package verify

import "github.com/joshuapare/collkit/coll/scan"

// Sorted walks from begin and reports whether consecutive elements are in
// non-decreasing order under compare.
func Sorted[I scan.Cursor[I, V], V any](begin I, compare func(a, b V) int) bool {
	var end I
	it := begin
	if it == end {
		return true
	}
	prev := *it.Value()
	for it = it.Next(); it != end; it = it.Next() {
		cur := *it.Value()
		if compare(prev, cur) > 0 {
			return false
		}
		prev = cur
	}
	return true
}

// HeapOrdered reports whether vals laid out as a binary heap satisfies the
// ordering invariant: no child compares before its parent.
func HeapOrdered[V any](vals []V, compare func(a, b V) int) bool {
	for i := 1; i < len(vals); i++ {
		if compare(vals[i], vals[(i-1)/2]) < 0 {
			return false
		}
	}
	return true
}

// SameElements reports whether the traversal from begin and the model
// slice hold the same elements with the same multiplicities, in any order.
func SameElements[I scan.Cursor[I, V], V comparable](begin I, model []V) bool {
	counts := make(map[V]int, len(model))
	for _, v := range model {
		counts[v]++
	}
	seen := 0
	var end I
	for it := begin; it != end; it = it.Next() {
		v := *it.Value()
		if counts[v] == 0 {
			return false
		}
		counts[v]--
		seen++
	}
	return seen == len(model)
}
