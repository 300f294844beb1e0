package index

// Strides derives the default row-major strides for sizes: the last
// dimension varies fastest with stride 1, and each preceding dimension's
// stride is the product of all following sizes.
// Stage 1 (Validate): sizes non-empty, every entry non-negative.
// Stage 2 (Execute): right-to-left scan with a running product, guarding
// each multiplication against int64 overflow.
// Returns ErrEmptySizes, ErrNegativeSize or ErrTooLarge on invalid input.
// Complexity: O(rank) time and memory.
func Strides(sizes []int64) ([]int64, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptySizes
	}
	for _, s := range sizes {
		if s < 0 {
			return nil, ErrNegativeSize
		}
	}
	strides := make([]int64, len(sizes))
	strides[len(sizes)-1] = 1
	for d := len(sizes) - 2; d >= 0; d-- {
		next, size := strides[d+1], sizes[d+1]
		prod := next * size
		// Division check detects overflow without a wider type.
		if size != 0 && prod/size != next {
			return nil, ErrTooLarge
		}
		strides[d] = prod
	}

	return strides, nil
}

// Stride computes linear offsets for a dense array as the dot product of
// a coordinate vector with a per-dimension stride vector. It is the base
// coordinate scheme with no sub-selection, and is immutable once built.
type Stride struct {
	sizes   []int64 // per-dimension extents, length == rank
	strides []int64 // per-dimension offset increments, length == rank
}

// Compile-time check that *Stride satisfies Index.
var _ Index = (*Stride)(nil)

// NewStride constructs a dense row-major Stride index from sizes.
// Sizes are deep-copied to ensure immutability; strides are derived via
// Strides. Returns ErrEmptySizes, ErrNegativeSize or ErrTooLarge.
// Complexity: O(rank) time and memory.
func NewStride(sizes []int64) (*Stride, error) {
	strides, err := Strides(sizes)
	if err != nil {
		return nil, err
	}

	return &Stride{sizes: cloneVector(sizes), strides: strides}, nil
}

// NewStrideCustom constructs a Stride index with caller-supplied strides
// for layouts other than dense row-major (column-major, padded rows, ...).
// Both vectors are deep-copied. Returns ErrEmptySizes or ErrNegativeSize
// for invalid sizes, ErrRankMismatch when the vector lengths differ.
func NewStrideCustom(sizes, strides []int64) (*Stride, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptySizes
	}
	for _, s := range sizes {
		if s < 0 {
			return nil, ErrNegativeSize
		}
	}
	if len(strides) != len(sizes) {
		return nil, ErrRankMismatch
	}

	return &Stride{sizes: cloneVector(sizes), strides: cloneVector(strides)}, nil
}

// Offset1 is the rank-1 fast path: i*strides[0].
func (s *Stride) Offset1(i int64) int64 {
	return i * s.strides[0]
}

// Offset2 is the rank-2 fast path.
func (s *Stride) Offset2(i, j int64) int64 {
	return i*s.strides[0] + j*s.strides[1]
}

// Offset3 is the rank-3 fast path.
func (s *Stride) Offset3(i, j, k int64) int64 {
	return i*s.strides[0] + j*s.strides[1] + k*s.strides[2]
}

// Offset computes Σ coords[d]*strides[d] for any rank.
// Panics if len(coords) != Rank(). Arithmetic is unchecked: an
// out-of-range coordinate produces an out-of-range offset.
// Complexity: O(rank).
func (s *Stride) Offset(coords ...int64) int64 {
	if len(coords) != len(s.strides) {
		panic("index: coordinate count does not match rank")
	}
	var off int64
	for d, c := range coords {
		off += c * s.strides[d]
	}

	return off
}

// Rank returns the number of dimensions.
func (s *Stride) Rank() int { return len(s.sizes) }

// Sizes returns the per-dimension extents (read-only view).
func (s *Stride) Sizes() []int64 { return s.sizes }

// Strides returns the per-dimension offset increments (read-only view).
func (s *Stride) Strides() []int64 { return s.strides }

// Extent returns sizes[d]: a dense index addresses the full array.
func (s *Stride) Extent(d int) int64 { return s.sizes[d] }

// cloneVector deep-copies a coordinate vector to prevent external mutation.
func cloneVector(v []int64) []int64 {
	c := make([]int64, len(v))
	copy(c, v)

	return c
}
