package coll

import "github.com/joshuapare/collkit/pkg/types"

// Entry is the tagged lookup/insert result (re-exported for convenience).
type Entry[V any] = types.Entry[V]

// Handle couples a stable slot token with Entry occupancy semantics
// (re-exported for convenience).
type Handle[V any] = types.Handle[V]

// ID is a stable slot token (re-exported for convenience).
type ID = types.ID

// NilID is the "no slot" sentinel.
const NilID = types.NilID

// Stats reports uniform container metrics.
type Stats = types.Stats

// Error sentinels (re-exported for convenience). Match with errors.Is.
var (
	ErrNilArgument   = types.ErrNilArgument
	ErrInvalidHandle = types.ErrInvalidHandle
	ErrNoAllocator   = types.ErrNoAllocator
	ErrAllocDenied   = types.ErrAllocDenied
	ErrCapacity      = types.ErrCapacity
	ErrEmpty         = types.ErrEmpty
)
