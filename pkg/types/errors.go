package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindArgument   ErrKind = iota // required reference is nil or invalid
	ErrKindAllocation                // allocator hook denied growth or none was recorded
	ErrKindCapacity                  // fixed-capacity backend is full
	ErrKindState                     // invalid operation for the container's current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
//
// A lookup miss is never one of these: absence surfaces as a Vacant Entry or
// Handle, not as an error value.
var (
	// ErrNilArgument indicates a required reference argument was nil.
	ErrNilArgument = &Error{Kind: ErrKindArgument, Msg: "required argument is nil"}
	// ErrInvalidHandle indicates an ID that does not denote a live element.
	ErrInvalidHandle = &Error{Kind: ErrKindArgument, Msg: "handle does not denote a live element"}
	// ErrNoAllocator indicates growth was required but no hook was recorded.
	// Containers never allocate implicitly on behalf of the caller.
	ErrNoAllocator = &Error{Kind: ErrKindAllocation, Msg: "no allocator hook recorded"}
	// ErrAllocDenied indicates the allocator hook refused a growth request.
	ErrAllocDenied = &Error{Kind: ErrKindAllocation, Msg: "allocator hook denied request"}
	// ErrCapacity indicates a fixed-capacity backend is full.
	ErrCapacity = &Error{Kind: ErrKindCapacity, Msg: "fixed-capacity container is full"}
	// ErrEmpty indicates a pop-class operation on an empty container.
	ErrEmpty = &Error{Kind: ErrKindState, Msg: "container is empty"}
)
