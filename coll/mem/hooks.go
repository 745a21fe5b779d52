package mem

import (
	"github.com/joshuapare/collkit/internal/grow"
	"github.com/joshuapare/collkit/pkg/types"
)

// -----------------------------------------------------------------------------
// Heap
// -----------------------------------------------------------------------------

// HeapHook grants every request, delegating the actual allocation to the
// Go runtime. It carries no state and is safe to share.
type HeapHook struct{}

// NewHeap returns the unrestricted default hook.
func NewHeap() *HeapHook { return &HeapHook{} }

// Grow implements Hook. Growth is always granted as requested.
func (*HeapHook) Grow(_, newCap, _ int) (int, error) { return newCap, nil }

// -----------------------------------------------------------------------------
// Budget
// -----------------------------------------------------------------------------

// BudgetHook grants requests while total authorized bytes stay within a
// fixed budget. Shrink and release requests return their bytes to the
// budget.
type BudgetHook struct {
	limit int
	used  int
}

// NewBudget returns a hook that authorizes at most limit bytes in total
// across all buffers it governs.
func NewBudget(limit int) *BudgetHook { return &BudgetHook{limit: limit} }

// Used returns the bytes currently authorized.
func (b *BudgetHook) Used() int { return b.used }

// Grow implements Hook.
func (b *BudgetHook) Grow(oldCap, newCap, elemSize int) (int, error) {
	switch {
	case newCap == 0:
		released, ok := grow.MulOverflow(oldCap, elemSize)
		if ok && released <= b.used {
			b.used -= released
		} else {
			b.used = 0
		}
		return 0, nil
	case newCap <= oldCap:
		released, ok := grow.MulOverflow(oldCap-newCap, elemSize)
		if ok && released <= b.used {
			b.used -= released
		} else {
			b.used = 0
		}
		return newCap, nil
	default:
		added, ok := grow.MulOverflow(newCap-oldCap, elemSize)
		if !ok {
			return oldCap, types.ErrAllocDenied
		}
		total, ok := grow.AddOverflow(b.used, added)
		if !ok || total > b.limit {
			return oldCap, types.ErrAllocDenied
		}
		b.used = total
		return newCap, nil
	}
}

// -----------------------------------------------------------------------------
// Deny
// -----------------------------------------------------------------------------

// DenyHook refuses all growth. Release and shrink are permitted so
// containers under test can still be torn down.
type DenyHook struct{}

// NewDeny returns a hook that turns any backend into a fixed-capacity one.
func NewDeny() *DenyHook { return &DenyHook{} }

// Grow implements Hook.
func (*DenyHook) Grow(oldCap, newCap, elemSize int) (int, error) {
	if newCap > oldCap {
		return oldCap, types.ErrAllocDenied
	}
	return newCap, nil
}

// -----------------------------------------------------------------------------
// Counting
// -----------------------------------------------------------------------------

// CountingHook wraps another hook and records grow/deny/release traffic.
type CountingHook struct {
	Inner    Hook
	Grows    int // granted growth requests
	Denies   int // denied growth requests
	Shrinks  int // shrink notifications
	Releases int // full release notifications
}

// NewCounting wraps inner with traffic counters. A nil inner counts
// against Heap semantics.
func NewCounting(inner Hook) *CountingHook {
	if inner == nil {
		inner = NewHeap()
	}
	return &CountingHook{Inner: inner}
}

// Grow implements Hook.
func (c *CountingHook) Grow(oldCap, newCap, elemSize int) (int, error) {
	granted, err := c.Inner.Grow(oldCap, newCap, elemSize)
	switch {
	case newCap == 0:
		c.Releases++
	case newCap <= oldCap:
		c.Shrinks++
	case err != nil:
		c.Denies++
	default:
		c.Grows++
	}
	return granted, err
}
