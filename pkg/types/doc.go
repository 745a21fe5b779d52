// Package types defines the public contracts shared by every collkit
// container backend.
//
// # Overview
//
// collkit exposes one uniform operation vocabulary over structurally
// different backends (hash map, ordered map, linked sequences, priority
// queue, flat buffer). This package holds the pieces of that vocabulary
// that are backend-independent:
//
//   - Entry and Handle: tagged results of lookup/insert attempts
//   - ID: stable slot tokens for index-addressed backends
//   - Stats: uniform container statistics
//   - Error, ErrKind and the sentinel errors all backends return
//   - The conformance interfaces (Container, Map, Deque, Heap)
//
// # Dispatch
//
// Every backend is a concrete generic type. Callers are expected to hold
// concrete types so the compiler resolves each operation statically with
// no interface boxing. The interfaces below exist to document the shared
// operation set and to let backend packages assert conformance at compile
// time:
//
//	var _ types.Map[string, int] = (*hashmap.Map[string, int])(nil)
//
// They are not intended as runtime abstraction points on hot paths.
//
// # Occupancy, not exceptions
//
// A lookup miss is not an error. Lookup and removal results are Entry or
// Handle values that are exactly one of Occupied or Vacant; callers branch
// on occupancy. The orthogonal insert-error bit reports argument,
// allocation and capacity failures of insert-class operations and implies
// the insertion did not happen.
package types
