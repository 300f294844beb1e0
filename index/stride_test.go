package index_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matteodg/ndslab/index"
)

//----------------------------------------------------------------------------//
// Strides derivation
//----------------------------------------------------------------------------//

// TestStrides_RowMajorInvariant verifies strides[last]==1 and
// strides[d]==strides[d+1]*sizes[d+1] for a spread of shapes.
func TestStrides_RowMajorInvariant(t *testing.T) {
	cases := [][]int64{
		{1},
		{7},
		{4, 3},
		{10, 10, 10},
		{2, 3, 4, 5},
		{6, 1, 5, 1, 4},
		{3, 0, 2}, // zero-sized dimension is legal
	}
	for _, sizes := range cases {
		strides, err := index.Strides(sizes)
		require.NoError(t, err)
		require.Len(t, strides, len(sizes))
		last := len(sizes) - 1
		require.Equal(t, int64(1), strides[last])
		for d := 0; d < last; d++ {
			require.Equal(t, strides[d+1]*sizes[d+1], strides[d],
				"sizes=%v dim=%d", sizes, d)
		}
	}
}

// TestStrides_Errors verifies fail-fast rejection of malformed sizes.
func TestStrides_Errors(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int64
		err   error
	}{
		{"Empty", []int64{}, index.ErrEmptySizes},
		{"Nil", nil, index.ErrEmptySizes},
		{"Negative", []int64{4, -1, 2}, index.ErrNegativeSize},
		{"Overflow", []int64{2, math.MaxInt64 / 2, 3, 2}, index.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := index.Strides(tc.sizes)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Stride construction
//----------------------------------------------------------------------------//

// TestNewStride_DerivedStrides checks the 3D example shape [10,10,10].
func TestNewStride_DerivedStrides(t *testing.T) {
	ix, err := index.NewStride([]int64{10, 10, 10})
	require.NoError(t, err)
	require.Equal(t, []int64{10, 10, 10}, ix.Sizes())
	require.Equal(t, []int64{100, 10, 1}, ix.Strides())
	require.Equal(t, 3, ix.Rank())
}

// TestNewStride_Immutable verifies the constructor deep-copies its input.
func TestNewStride_Immutable(t *testing.T) {
	sizes := []int64{4, 3}
	ix, err := index.NewStride(sizes)
	require.NoError(t, err)
	sizes[0] = 99
	require.Equal(t, []int64{4, 3}, ix.Sizes())
}

// TestNewStrideCustom_Errors verifies length and sign validation.
func TestNewStrideCustom_Errors(t *testing.T) {
	cases := []struct {
		name    string
		sizes   []int64
		strides []int64
		err     error
	}{
		{"EmptySizes", nil, nil, index.ErrEmptySizes},
		{"NegativeSize", []int64{-2}, []int64{1}, index.ErrNegativeSize},
		{"RankMismatch", []int64{4, 3}, []int64{1}, index.ErrRankMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := index.NewStrideCustom(tc.sizes, tc.strides)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewStrideCustom_ColumnMajor exercises a non-row-major layout.
func TestNewStrideCustom_ColumnMajor(t *testing.T) {
	// Column-major 4×3: first dimension contiguous.
	ix, err := index.NewStrideCustom([]int64{4, 3}, []int64{1, 4})
	require.NoError(t, err)
	require.Equal(t, int64(1*1+2*4), ix.Offset2(1, 2))
	require.Equal(t, ix.Offset2(1, 2), ix.Offset(1, 2))
}

//----------------------------------------------------------------------------//
// Offset computation
//----------------------------------------------------------------------------//

// TestStride_OffsetDotProduct checks Offset against the explicit dot
// product over random shapes and coordinates with a seeded RNG.
func TestStride_OffsetDotProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		rank := 1 + rng.Intn(6)
		sizes := make([]int64, rank)
		coords := make([]int64, rank)
		for d := range sizes {
			sizes[d] = 1 + int64(rng.Intn(8))
			coords[d] = int64(rng.Intn(int(sizes[d])))
		}
		ix, err := index.NewStride(sizes)
		require.NoError(t, err)

		var want int64
		for d, c := range coords {
			want += c * ix.Strides()[d]
		}
		require.Equal(t, want, ix.Offset(coords...), "sizes=%v coords=%v", sizes, coords)
	}
}

// TestStride_FastPathsAgree checks that the rank-1/2/3 fast paths agree
// exactly with the variadic path on indices of matching rank.
func TestStride_FastPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		s1, _ := index.NewStride([]int64{1 + int64(rng.Intn(50))})
		s2, _ := index.NewStride([]int64{1 + int64(rng.Intn(20)), 1 + int64(rng.Intn(20))})
		s3, _ := index.NewStride([]int64{1 + int64(rng.Intn(10)), 1 + int64(rng.Intn(10)), 1 + int64(rng.Intn(10))})

		i, j, k := int64(rng.Intn(10)), int64(rng.Intn(10)), int64(rng.Intn(10))
		require.Equal(t, s1.Offset(i), s1.Offset1(i))
		require.Equal(t, s2.Offset(i, j), s2.Offset2(i, j))
		require.Equal(t, s3.Offset(i, j, k), s3.Offset3(i, j, k))
	}
}

// TestStride_OffsetWrongArityPanics verifies the arity contract.
func TestStride_OffsetWrongArityPanics(t *testing.T) {
	ix, err := index.NewStride([]int64{4, 3})
	require.NoError(t, err)
	require.Panics(t, func() { ix.Offset(1) })
	require.Panics(t, func() { ix.Offset(1, 2, 3) })
}

// TestStride_Introspection verifies Sizes/Strides are non-empty and of
// equal length for any constructed index.
func TestStride_Introspection(t *testing.T) {
	for _, sizes := range [][]int64{{5}, {2, 2}, {9, 1, 3, 7}} {
		ix, err := index.NewStride(sizes)
		require.NoError(t, err)
		require.NotEmpty(t, ix.Sizes())
		require.NotEmpty(t, ix.Strides())
		require.Equal(t, len(ix.Sizes()), len(ix.Strides()))
		for d := range sizes {
			require.Equal(t, sizes[d], ix.Extent(d))
		}
	}
}
