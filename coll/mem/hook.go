package mem

import (
	"unsafe"

	"github.com/joshuapare/collkit/internal/grow"
	"github.com/joshuapare/collkit/pkg/types"
)

// Hook is the sole authority for container storage growth and release.
//
// Grow is called with the buffer's current capacity, the requested new
// capacity and the element size in bytes. It returns the capacity the
// container may allocate, or an error to deny the request. The three
// request shapes are:
//
//   - newCap > oldCap: growth. The grant must be >= newCap or an error.
//   - newCap < oldCap, newCap > 0: shrink notification.
//   - newCap == 0: the buffer is being released.
//
// Shrink and release requests exist so accounting hooks can reclaim
// budget; they must not fail.
//
// Hook state (budgets, counters, arena context) lives in the
// implementation itself, which plays the role of the opaque context
// pointer of C-style allocator callbacks.
type Hook interface {
	Grow(oldCap, newCap, elemSize int) (int, error)
}

// SizeOf returns the in-memory size of T in bytes, for hook accounting.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// GrowSlice resizes buf to hold at least need elements, consulting hook
// for authorization. The existing elements are copied into the new
// buffer. It first proposes an amortized capacity and falls back to the
// exact need when the hook denies the proposal.
//
// A nil hook denies all growth with types.ErrNoAllocator.
func GrowSlice[T any](hook Hook, buf []T, need int) ([]T, error) {
	if need <= cap(buf) {
		return buf, nil
	}
	if hook == nil {
		return nil, types.ErrNoAllocator
	}
	elem := SizeOf[T]()
	granted, err := hook.Grow(cap(buf), grow.NextCap(cap(buf), need), elem)
	if err != nil {
		granted, err = hook.Grow(cap(buf), need, elem)
		if err != nil {
			return nil, err
		}
	}
	if granted < need {
		return nil, types.ErrAllocDenied
	}
	next := make([]T, len(buf), granted)
	copy(next, buf)
	return next, nil
}

// FreeSlice notifies hook that buf's storage is being released. A nil hook
// or an unallocated buffer is a no-op.
func FreeSlice[T any](hook Hook, buf []T) {
	if hook == nil || cap(buf) == 0 {
		return
	}
	hook.Grow(cap(buf), 0, SizeOf[T]()) //nolint:errcheck // release must not fail
}

// Shrink notifies hook that a node-based container released storage for
// oldCount-newCount elements of elemSize bytes.
func Shrink(hook Hook, oldCount, newCount, elemSize int) {
	if hook == nil || oldCount <= newCount {
		return
	}
	hook.Grow(oldCount, newCount, elemSize) //nolint:errcheck // shrink must not fail
}
