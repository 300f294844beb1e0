// Package index defines core types and sentinel errors for the index
// subpackage of github.com/matteodg/ndslab.
package index

import "errors"

// Sentinel errors for index construction. Constructors return these
// unwrapped; callers match them with errors.Is.
var (
	// ErrEmptySizes indicates a sizes vector with no dimensions.
	ErrEmptySizes = errors.New("index: sizes must contain at least one dimension")
	// ErrNegativeSize indicates a negative entry in the sizes vector.
	ErrNegativeSize = errors.New("index: sizes must be non-negative")
	// ErrRankMismatch indicates a vector whose length differs from the rank set by sizes.
	ErrRankMismatch = errors.New("index: all vectors must match the length of sizes")
	// ErrZeroBlock indicates a block entry below 1; block divides local coordinates.
	ErrZeroBlock = errors.New("index: block entries must be >= 1")
	// ErrZeroStride indicates a hyperslab stride entry below 1.
	ErrZeroStride = errors.New("index: hyperslab stride entries must be >= 1")
	// ErrNegativeSelection indicates a negative offset or count entry.
	ErrNegativeSelection = errors.New("index: offset and count entries must be non-negative")
	// ErrTooLarge indicates that the element count of sizes overflows int64.
	ErrTooLarge = errors.New("index: element count overflows int64")
)

// Index maps logical N-dimensional coordinates onto linear offsets into a
// flat backing buffer. Implementations are immutable after construction;
// all methods are pure and safe for concurrent use.
//
// Offset1, Offset2 and Offset3 are unrolled fast paths for ranks 1–3; on
// an index of matching rank they return exactly what Offset returns for
// the same coordinates. The variadic Offset accepts any rank but panics
// when len(coords) != Rank() — a wrong arity is a programmer error, not a
// runtime condition.
//
// Coordinates are not bounds-checked against Sizes: a coordinate outside
// [0, Extent(d)) yields a well-defined but semantically out-of-range
// offset. Enforcement belongs to the layer that knows the buffer's true
// capacity.
type Index interface {
	// Offset1 returns the linear offset for a rank-1 coordinate.
	Offset1(i int64) int64
	// Offset2 returns the linear offset for a rank-2 coordinate.
	Offset2(i, j int64) int64
	// Offset3 returns the linear offset for a rank-3 coordinate.
	Offset3(i, j, k int64) int64
	// Offset returns the linear offset for a coordinate vector of any
	// rank. Panics if len(coords) != Rank().
	Offset(coords ...int64) int64

	// Rank returns the number of dimensions.
	Rank() int
	// Sizes returns the per-dimension extents of the full array as a
	// read-only view of internal state; callers must not mutate it.
	Sizes() []int64
	// Strides returns the per-dimension linear-offset increments as a
	// read-only view of internal state; callers must not mutate it.
	Strides() []int64
	// Extent returns the logical extent of the local coordinate space in
	// dimension d: Sizes()[d] for a dense index, count[d]*block[d] for a
	// hyperslab.
	Extent(d int) int64
}

// Selection describes an HDF5-style hyperslab: a regularly spaced
// rectangular sub-selection of a dense array.
//
// Offset anchors the selection in the full array's coordinate space.
// Stride is the spacing between block starts (nil means all ones, i.e.
// contiguous). Count is the number of blocks per dimension; it bounds
// iteration but does not enter the offset formula. Block is the number
// of contiguous elements per block (nil means all ones).
type Selection struct {
	Offset []int64
	Stride []int64
	Count  []int64
	Block  []int64
}
