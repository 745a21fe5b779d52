// Package grow provides overflow-safe capacity arithmetic shared by the
// container backends and allocator hooks.
package grow

import "math"

// minCap is the smallest capacity a growth suggestion will propose.
const minCap = 8

// doubleCapLimit is the element count beyond which suggestions grow by
// 1.25x instead of doubling, to bound waste on large buffers.
const doubleCapLimit = 1024

// AddOverflow adds a and b, returning ok = false when the result would
// overflow int.
func AddOverflow(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflow multiplies a and b, returning ok = false when the result
// would overflow int. Essential for count * elementSize calculations.
func MulOverflow(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// NextCap suggests an amortized capacity for a buffer currently holding
// oldCap slots that must hold at least need. The suggestion is what a
// container proposes to its allocator hook; the hook remains free to grant
// exactly need instead.
func NextCap(oldCap, need int) int {
	if need <= oldCap {
		return oldCap
	}
	next := oldCap
	if next < minCap {
		next = minCap
	}
	for next < need {
		if next < doubleCapLimit {
			doubled, ok := AddOverflow(next, next)
			if !ok {
				return need
			}
			next = doubled
			continue
		}
		quarter := next / 4
		grown, ok := AddOverflow(next, quarter)
		if !ok || grown <= next {
			return need
		}
		next = grown
	}
	return next
}
