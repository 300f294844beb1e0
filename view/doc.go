// Package view binds a coordinate index to a flat backing slice, giving
// typed N-dimensional element access over contiguous storage.
//
// The view package provides:
//
//   - View[T] — pairs an immutable index.Index with a []T buffer and
//     exposes At/Set by logical coordinates, with rank-1/2/3 fast paths
//     mirroring the index contract.
//   - Each — traversal of every addressable element in row-major local
//     order, delegating to index.Walk.
//
// The index core never touches storage; capacity checking lives here,
// where the buffer's true length is known. New rejects buffers that
// cannot hold the largest offset the index produces for in-range
// coordinates. Individual At/Set calls rely on Go's slice bounds checks
// for out-of-range coordinates.
package view
