// Package buffer provides the flat buffer backend of the uniform
// container interface.
//
// # Overview
//
// Buffer stores elements contiguously in insertion order and issues a
// stable slot token for each one. Removal compacts the dense array by
// moving the last element into the hole, so positional indexes shift, but
// the token issued at insertion keeps denoting its element through a
// sparse slot table that is updated on every move. Tokens are reused only
// after their element is removed.
//
// The dense array makes iteration and positional access (At) cheap; the
// slot table makes removal by token constant-time. There is no splice
// surface: relocating a run between flat buffers is a copy, not a relink,
// and callers who need relinking should use the linked backends.
//
// Supported protocol surfaces:
//
//   - Push/Pop: PushBack, PopBack, Front, Back, At
//   - Handle: InsertHandle, Handle, SwapHandle, RemoveHandle
//   - Iteration: Begin/End, ReverseBegin/ReverseEnd (insertion-compacted
//     dense order)
//   - Memory: Copy, Reserve, Clear, ClearAndFree, ClearAndFreeReserve
//   - State: Count, Capacity, IsEmpty, Validate, Stats
package buffer
