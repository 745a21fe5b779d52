package types

// -----------------------------------------------------------------------------
// Entry: tagged lookup/insert results
// -----------------------------------------------------------------------------

// Entry is the tagged result of a key-based lookup or insert attempt.
//
// An Entry is exactly one of Occupied (it carries a reference to a live
// element) or Vacant, never both. Orthogonal to occupancy, an insert-error
// bit records whether an insert-class operation failed (allocation denial,
// fixed capacity exceeded, nil argument); when set, the insertion did not
// happen.
//
// Entries are ephemeral: the carried reference is valid only until the next
// mutating call on the originating container.
type Entry[V any] struct {
	ref *V
	err error
}

// Occupied builds an Occupied Entry carrying ref. ref must not be nil.
func Occupied[V any](ref *V) Entry[V] { return Entry[V]{ref: ref} }

// Vacant builds a Vacant Entry.
func Vacant[V any]() Entry[V] { return Entry[V]{} }

// Fail builds a Vacant Entry with the insert-error bit set.
func Fail[V any](err error) Entry[V] { return Entry[V]{err: err} }

// WithError returns a copy of e with the insert-error bit set, preserving
// occupancy. Used when an insert failed but the slot itself is Occupied.
func (e Entry[V]) WithError(err error) Entry[V] { e.err = err; return e }

// Occupied reports whether the entry references a live element.
func (e Entry[V]) Occupied() bool { return e.ref != nil }

// Unwrap returns the referenced element, or nil if the entry is Vacant.
func (e Entry[V]) Unwrap() *V { return e.ref }

// InsertError reports whether the last insert-class operation failed.
// Independent of occupancy.
func (e Entry[V]) InsertError() bool { return e.err != nil }

// Err returns the error behind the insert-error bit, or nil.
func (e Entry[V]) Err() error { return e.err }

// -----------------------------------------------------------------------------
// Handle: Entry analogue for index-addressed containers
// -----------------------------------------------------------------------------

// ID is a stable slot token into an index-addressed backend. It survives
// backend-internal relocation (array compaction, heap sifting) as long as
// the element it denotes is not removed.
type ID uint32

// NilID is the ID sentinel for "no slot". It is never a live token.
const NilID ID = ^ID(0)

// Handle couples an ID with Entry occupancy semantics. Unlike raw
// references from iteration, a Handle's ID remains valid across any single
// call that only adds or removes other elements; removal of the referenced
// element itself invalidates it.
type Handle[V any] struct {
	id  ID
	ref *V
	err error
}

// OccupiedHandle builds an Occupied Handle for slot id carrying ref.
func OccupiedHandle[V any](id ID, ref *V) Handle[V] { return Handle[V]{id: id, ref: ref} }

// VacantHandle builds a Vacant Handle.
func VacantHandle[V any]() Handle[V] { return Handle[V]{id: NilID} }

// FailHandle builds a Vacant Handle with the insert-error bit set.
func FailHandle[V any](err error) Handle[V] { return Handle[V]{id: NilID, err: err} }

// ID returns the stable slot token, or NilID if the handle is Vacant.
func (h Handle[V]) ID() ID { return h.id }

// Occupied reports whether the handle references a live element.
func (h Handle[V]) Occupied() bool { return h.ref != nil }

// Unwrap returns the referenced element, or nil if the handle is Vacant.
// The reference may be invalidated by backend relocation; re-resolve
// through the ID when in doubt.
func (h Handle[V]) Unwrap() *V { return h.ref }

// InsertError reports whether the last insert-class operation failed.
func (h Handle[V]) InsertError() bool { return h.err != nil }

// Err returns the error behind the insert-error bit, or nil.
func (h Handle[V]) Err() error { return h.err }

// -----------------------------------------------------------------------------
// Stats
// -----------------------------------------------------------------------------

// Stats reports uniform container metrics.
type Stats struct {
	Count       int    // live elements
	Capacity    int    // element slots currently authorized/allocated
	BytesApprox int    // approximate memory usage (best effort)
	Impl        string // implementation name
}
