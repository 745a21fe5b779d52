package types

// Container is the state/validation surface every backend satisfies.
//
// All four operations are pure: they never mutate, never allocate and never
// fail on a well-formed container.
type Container interface {
	// Count returns the number of live elements.
	Count() int

	// Capacity returns the number of element slots currently allocated or
	// authorized. For node-based backends with no distinct buffer this
	// equals Count.
	Capacity() int

	// IsEmpty reports whether the container holds no live elements.
	IsEmpty() bool

	// Validate audits every structural invariant applicable to the backend
	// (ordering, heap property, link consistency, free-list bookkeeping)
	// and reports whether all hold. Intended for debug and test use.
	Validate() bool

	// Stats returns uniform container metrics.
	Stats() Stats
}

// Map documents the Entry protocol surface shared by keyed backends.
//
// Every insert-class operation reports failure through the Entry's
// insert-error bit and leaves the backend untouched on failure. Absence is
// reported as Vacant occupancy, never as an error.
type Map[K, V any] interface {
	Container

	// SwapEntry inserts value and returns the prior value as an Occupied
	// Entry, or a Vacant Entry when the key was absent.
	SwapEntry(key K, value V) Entry[V]

	// TryInsert inserts only if the key is absent. It returns an Occupied
	// Entry referencing the element that is in the map after the call:
	// the new element on insert, the untouched existing one otherwise.
	TryInsert(key K, value V) Entry[V]

	// InsertOrAssign inserts or overwrites, ending Occupied either way.
	InsertOrAssign(key K, value V) Entry[V]

	// RemoveKeyValue removes the key and hands back the removed value as
	// an Occupied Entry, or a Vacant Entry when the key was absent.
	RemoveKeyValue(key K) Entry[V]

	// GetKeyValue returns a reference to the stored element, or nil.
	GetKeyValue(key K) *V

	// Contains reports key membership.
	Contains(key K) bool
}

// Deque documents the push/pop surface of double-ended sequences.
type Deque[T any] interface {
	Container

	// PushBack appends and returns a reference to the new element, or an
	// error when growth was denied.
	PushBack(value T) (*T, error)

	// PushFront prepends and returns a reference to the new element, or
	// an error when growth was denied.
	PushFront(value T) (*T, error)

	// PopBack removes the last element. Returns ErrEmpty when empty.
	PopBack() error

	// PopFront removes the first element. Returns ErrEmpty when empty.
	PopFront() error

	// Front returns a reference to the first element, or nil when empty.
	Front() *T

	// Back returns a reference to the last element, or nil when empty.
	Back() *T
}

// Heap documents the priority adjustment surface of priority-ordered
// backends. Only priority-ordered backends implement it.
type Heap[T any] interface {
	Container

	// Push inserts and returns an Occupied Handle whose ID stays valid
	// until the element is removed, or a failed Handle on growth denial.
	Push(value T) Handle[T]

	// Pop removes the front element. Returns ErrEmpty when empty.
	Pop() error

	// Front returns a reference to the front element, or nil when empty.
	Front() *T

	// Update applies fn to the element id denotes, then restores the
	// ordering invariant in both directions.
	Update(id ID, fn func(*T)) error

	// Increase is Update specialized for modifications known to move the
	// element away from the front, permitting a one-directional fixup.
	Increase(id ID, fn func(*T)) error

	// Decrease is Update specialized for modifications known to move the
	// element toward the front.
	Decrease(id ID, fn func(*T)) error

	// Erase removes the element id denotes and runs the registered
	// destructor on it.
	Erase(id ID) error

	// Extract removes the element id denotes without running the
	// destructor, transferring ownership of the value to the caller.
	Extract(id ID) Entry[T]
}
