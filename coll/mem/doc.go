// Package mem defines the allocator hook contract and the hook
// implementations shipped with collkit.
//
// # Overview
//
// Containers never allocate element storage on their own authority. Every
// operation that must grow or release storage forwards the request to the
// Hook the container was constructed or invoked with. A container recorded
// with no hook fails such operations instead of allocating implicitly.
//
// The split of responsibilities is deliberate:
//
//   - the container proposes a capacity (usually amortized via
//     grow.NextCap)
//   - the hook authorizes a capacity, or denies the request
//   - the Go runtime performs the actual allocation for the granted
//     capacity
//
// # Implementations
//
// Heap: grants every request. The default for facade-constructed
// containers.
//
// Budget: grants requests while total authorized bytes stay within a fixed
// budget; used to exercise allocation-denial paths and to cap memory of
// untrusted workloads.
//
// Deny: refuses all growth; release is always permitted. Turns any backend
// into a fixed-capacity one.
//
// Counting: wraps another hook and records grow/deny/release traffic for
// tests and the collbench tool.
//
// # Reserved regions
//
// Region provides anonymous memory-mapped storage reserved once, up
// front. Its Hook grants growth only within the reservation's size and
// unmaps the region when the last grant is released. Containers built
// over such a reservation record no authority of their own; releasing
// them goes through ClearAndFreeReserve with the region's hook supplied
// explicitly.
package mem
