// Package ndslab translates N-dimensional logical coordinates into linear
// offsets over flat, contiguous backing storage — the addressing core behind
// dense arrays, strided layouts, and HDF5-style hyperslab sub-selections.
//
// What ndslab provides:
//
//   - index/ — the Index contract with Stride (dense row-major or custom
//     strides) and Hyperslab (offset/stride/count/block sub-selection)
//     implementations, plus row-major traversal helpers
//   - view/  — a generic typed N-dimensional view binding an Index to a
//     flat []T backing slice
//   - cmd/ndslab — a small CLI to derive strides, compute offsets, and
//     enumerate selections from YAML/JSON geometry documents
//
// Why ndslab?
//
//   - Exact 64-bit arithmetic — offsets stay correct at any dimensionality
//   - Immutable by construction — every index is safe for concurrent reads
//     with no locking
//   - Fail-fast validation — malformed selections are rejected when an
//     index is built, never discovered inside the hot offset path
//
// Quick ASCII example, a 1D hyperslab over 20 elements with two-element
// blocks spaced five apart (offset=0, stride=5, count=3, block=2):
//
//	element: 0  1  2  3  4  5  6  7  8  9 10 11 ...
//	picked:  ■  ■  .  .  .  ■  ■  .  .  .  ■  ■
//
// Local coordinates 0..5 map to offsets 0, 1, 5, 6, 10, 11.
//
// See index and view package docs for the full API, and cmd/ndslab for the
// command-line surface.
package ndslab
