// Package index computes linear offsets into flat backing storage for
// N-dimensional arrays.
//
// The index package provides:
//
//   - Index — the contract every coordinate scheme implements: unrolled
//     fast paths for ranks 1–3 plus a variadic general path, all
//     returning the identical offset for matching input.
//   - Stride — dense addressing as the dot product of a coordinate vector
//     with a per-dimension stride vector; Strides derives default
//     row-major strides from sizes.
//   - Hyperslab — HDF5-style offset/stride/count/block sub-selection:
//     selection-local coordinates are remapped per dimension before the
//     same dot product against the full array's dense strides.
//   - Walk / NumElements — row-major traversal over an index's local
//     coordinate space.
//
// Every index is immutable once constructed and every Offset call is a
// pure computation, so instances are safe for concurrent use without
// coordination. Selection vectors are validated eagerly at construction;
// the offset paths themselves perform no checks beyond arity.
//
// Offsets produced here address a conceptual flat buffer; reading or
// writing elements at those offsets belongs to the caller (see the view
// package for a slice-backed realization).
//
// See the examples in this package for usage patterns.
package index
