package index

// Hyperslab maps selection-local coordinates — the coordinates a caller
// uses when iterating only over a hyperslab's selected elements — onto
// the same linear-offset space as a dense index over the full array.
//
// Per dimension d, a local coordinate c is remapped as
//
//	mapped = offset[d] + stride[d]*(c/block[d]) + c%block[d]
//
// where c/block[d] selects the block repetition, stride[d] advances to
// that block's start, c%block[d] is the position within the block, and
// offset[d] anchors the selection. The final offset is the dot product
// of the mapped coordinates with the full array's dense strides — the
// selection changes which elements are visited, never the memory layout.
//
// A Hyperslab holds a dense Stride index by composition and delegates
// shape introspection to it. Immutable once built.
type Hyperslab struct {
	dense *Stride
	sel   Selection // defaults applied, all vectors length == rank
}

// Compile-time check that *Hyperslab satisfies Index.
var _ Index = (*Hyperslab)(nil)

// NewHyperslab constructs a Hyperslab index over a full array of the
// given sizes. Dense row-major strides are derived from sizes exactly as
// NewStride does.
//
// Stage 1 (Validate): sizes via NewStride; sel.Offset and sel.Count must
// match the rank; nil sel.Stride / sel.Block default to all ones, else
// must match the rank too.
// Stage 2 (Validate entries): offset/count >= 0, stride >= 1, block >= 1.
// A zero block would put a division by zero inside the hot offset path,
// so it is rejected here instead.
// Stage 3 (Finalize): deep-copy every vector and store immutably.
//
// Returns ErrEmptySizes, ErrNegativeSize, ErrTooLarge, ErrRankMismatch,
// ErrNegativeSelection, ErrZeroStride or ErrZeroBlock.
// Complexity: O(rank) time and memory.
func NewHyperslab(sizes []int64, sel Selection) (*Hyperslab, error) {
	dense, err := NewStride(sizes)
	if err != nil {
		return nil, err
	}
	rank := dense.Rank()

	if len(sel.Offset) != rank || len(sel.Count) != rank {
		return nil, ErrRankMismatch
	}
	stride := sel.Stride
	if stride == nil {
		stride = onesVector(rank)
	} else if len(stride) != rank {
		return nil, ErrRankMismatch
	}
	block := sel.Block
	if block == nil {
		block = onesVector(rank)
	} else if len(block) != rank {
		return nil, ErrRankMismatch
	}

	for d := 0; d < rank; d++ {
		if sel.Offset[d] < 0 || sel.Count[d] < 0 {
			return nil, ErrNegativeSelection
		}
		if stride[d] < 1 {
			return nil, ErrZeroStride
		}
		if block[d] < 1 {
			return nil, ErrZeroBlock
		}
	}

	return &Hyperslab{
		dense: dense,
		sel: Selection{
			Offset: cloneVector(sel.Offset),
			Stride: cloneVector(stride),
			Count:  cloneVector(sel.Count),
			Block:  cloneVector(block),
		},
	}, nil
}

// Offset1 is the rank-1 fast path of the hyperslab mapping.
func (h *Hyperslab) Offset1(i int64) int64 {
	s := &h.sel

	return (s.Offset[0] + s.Stride[0]*(i/s.Block[0]) + i%s.Block[0]) * h.dense.strides[0]
}

// Offset2 is the rank-2 fast path.
func (h *Hyperslab) Offset2(i, j int64) int64 {
	s := &h.sel

	return (s.Offset[0]+s.Stride[0]*(i/s.Block[0])+i%s.Block[0])*h.dense.strides[0] +
		(s.Offset[1]+s.Stride[1]*(j/s.Block[1])+j%s.Block[1])*h.dense.strides[1]
}

// Offset3 is the rank-3 fast path.
func (h *Hyperslab) Offset3(i, j, k int64) int64 {
	s := &h.sel

	return (s.Offset[0]+s.Stride[0]*(i/s.Block[0])+i%s.Block[0])*h.dense.strides[0] +
		(s.Offset[1]+s.Stride[1]*(j/s.Block[1])+j%s.Block[1])*h.dense.strides[1] +
		(s.Offset[2]+s.Stride[2]*(k/s.Block[2])+k%s.Block[2])*h.dense.strides[2]
}

// Offset remaps each local coordinate through the selection geometry and
// accumulates the dot product with the full array's dense strides.
// Panics if len(coords) != Rank(). Complexity: O(rank).
func (h *Hyperslab) Offset(coords ...int64) int64 {
	if len(coords) != h.dense.Rank() {
		panic("index: coordinate count does not match rank")
	}
	s := &h.sel
	var off int64
	for d, c := range coords {
		mapped := s.Offset[d] + s.Stride[d]*(c/s.Block[d]) + c%s.Block[d]
		off += mapped * h.dense.strides[d]
	}

	return off
}

// Rank returns the number of dimensions.
func (h *Hyperslab) Rank() int { return h.dense.Rank() }

// Sizes returns the full (unsliced) array's extents (read-only view).
func (h *Hyperslab) Sizes() []int64 { return h.dense.Sizes() }

// Strides returns the full array's dense strides (read-only view).
func (h *Hyperslab) Strides() []int64 { return h.dense.Strides() }

// Extent returns count[d]*block[d]: the size of the selection-local
// coordinate space in dimension d.
func (h *Hyperslab) Extent(d int) int64 {
	return h.sel.Count[d] * h.sel.Block[d]
}

// Selection returns the stored selection geometry with defaults applied.
// The contained vectors are read-only views of internal state.
func (h *Hyperslab) Selection() Selection { return h.sel }

// onesVector allocates a length-n vector of all ones, the default for
// omitted stride and block selection vectors.
func onesVector(n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
