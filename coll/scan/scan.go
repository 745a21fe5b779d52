// Package scan bridges backend iterators to the standard iter.Seq shape.
//
// # Overview
//
// Every backend exposes the same traversal protocol: Begin returns a small
// comparable iterator value, Next (or Prev) steps it, and the zero value
// is the end sentinel. scan captures that shape in a self-referential
// generic constraint, so the adapters below work over any backend's
// iterator directly. Dispatch is resolved at compile time per concrete
// iterator type; nothing is boxed behind an interface value at runtime.
//
//	for v := range scan.Forward[hashmap.Iterator[string, int], int](m.Begin()) {
//		...
//	}
package scan

import "iter"

// Cursor is the forward traversal shape: a comparable iterator whose zero
// value terminates the walk.
type Cursor[I, V any] interface {
	comparable
	Next() I
	Value() *V
}

// ReverseCursor is the backward traversal shape.
type ReverseCursor[I, V any] interface {
	comparable
	Prev() I
	Value() *V
}

// Forward yields a reference to every element from begin to the end
// sentinel. Mutating the source container mid-walk invalidates the
// traversal, exactly as it invalidates the underlying iterator.
func Forward[I Cursor[I, V], V any](begin I) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		var end I
		for it := begin; it != end; it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Reverse yields a reference to every element from rbegin back to the
// reverse end sentinel.
func Reverse[I ReverseCursor[I, V], V any](rbegin I) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		var end I
		for it := rbegin; it != end; it = it.Prev() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect appends a copy of every element from begin onward to dst and
// returns the extended slice.
func Collect[I Cursor[I, V], V any](begin I, dst []V) []V {
	var end I
	for it := begin; it != end; it = it.Next() {
		dst = append(dst, *it.Value())
	}
	return dst
}

// Count walks from begin to the end sentinel and returns the number of
// elements visited.
func Count[I Cursor[I, V], V any](begin I) int {
	var end I
	n := 0
	for it := begin; it != end; it = it.Next() {
		n++
	}
	return n
}
