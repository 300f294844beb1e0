package view

import (
	"errors"

	"github.com/matteodg/ndslab/index"
)

// Sentinel errors for view construction.
var (
	// ErrNilIndex indicates a nil index.Index was supplied.
	ErrNilIndex = errors.New("view: index must not be nil")
	// ErrBufferTooSmall indicates the backing slice cannot hold every
	// offset the index addresses.
	ErrBufferTooSmall = errors.New("view: backing slice too small for index")
)

// View pairs an immutable coordinate index with flat backing storage.
// The index is never mutated; element reads and writes go straight to
// the backing slice at the offsets the index computes. Concurrent reads
// are safe; concurrent writes need external coordination, as with any
// slice.
type View[T any] struct {
	ix   index.Index
	data []T
}

// New constructs a View over data addressed by ix.
// Stage 1 (Validate): ix non-nil.
// Stage 2 (Validate): data holds the largest offset produced by in-range
// coordinates — the offset of the far corner (Extent(d)-1 per dimension),
// which is maximal for row-major strides and hyperslab mappings. Indices
// with negative custom strides are not supported here.
// Complexity: O(rank).
func New[T any](ix index.Index, data []T) (*View[T], error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	if index.NumElements(ix) > 0 {
		corner := make([]int64, ix.Rank())
		for d := range corner {
			corner[d] = ix.Extent(d) - 1
		}
		if maxOff := ix.Offset(corner...); maxOff >= int64(len(data)) {
			return nil, ErrBufferTooSmall
		}
	}

	return &View[T]{ix: ix, data: data}, nil
}

// At returns the element at the given logical coordinates.
// Panics if len(coords) != rank (index arity contract).
func (v *View[T]) At(coords ...int64) T {
	return v.data[v.ix.Offset(coords...)]
}

// At1 is the rank-1 fast path.
func (v *View[T]) At1(i int64) T { return v.data[v.ix.Offset1(i)] }

// At2 is the rank-2 fast path.
func (v *View[T]) At2(i, j int64) T { return v.data[v.ix.Offset2(i, j)] }

// At3 is the rank-3 fast path.
func (v *View[T]) At3(i, j, k int64) T { return v.data[v.ix.Offset3(i, j, k)] }

// Set stores val at the given logical coordinates.
// Panics if len(coords) != rank.
func (v *View[T]) Set(val T, coords ...int64) {
	v.data[v.ix.Offset(coords...)] = val
}

// Set1 is the rank-1 fast path.
func (v *View[T]) Set1(val T, i int64) { v.data[v.ix.Offset1(i)] = val }

// Set2 is the rank-2 fast path.
func (v *View[T]) Set2(val T, i, j int64) { v.data[v.ix.Offset2(i, j)] = val }

// Set3 is the rank-3 fast path.
func (v *View[T]) Set3(val T, i, j, k int64) { v.data[v.ix.Offset3(i, j, k)] = val }

// Each visits every addressable element in row-major local order.
// fn returning false stops early. The coords slice is reused between
// calls; copy it if retained.
func (v *View[T]) Each(fn func(coords []int64, val T) bool) {
	index.Walk(v.ix, func(coords []int64, offset int64) bool {
		return fn(coords, v.data[offset])
	})
}

// Index returns the underlying coordinate index.
func (v *View[T]) Index() index.Index { return v.ix }

// Data returns the backing slice. Writes through it are visible to the
// view and vice versa.
func (v *View[T]) Data() []T { return v.data }
