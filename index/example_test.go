// File: index/example_test.go
package index_test

import (
	"fmt"

	"github.com/matteodg/ndslab/index"
)

////////////////////////////////////////////////////////////////////////////////
// Example: dense row-major indexing
////////////////////////////////////////////////////////////////////////////////

// ExampleNewStride demonstrates deriving row-major strides for a 4×3×2
// array and computing offsets through both the fast and general paths.
func ExampleNewStride() {
	ix, _ := index.NewStride([]int64{4, 3, 2})

	fmt.Println("strides:", ix.Strides())
	fmt.Println("offset(1,2,1):", ix.Offset3(1, 2, 1))
	fmt.Println("same via variadic:", ix.Offset(1, 2, 1))

	// Output:
	// strides: [6 2 1]
	// offset(1,2,1): 11
	// same via variadic: 11
}

////////////////////////////////////////////////////////////////////////////////
// Example: hyperslab sub-selection
////////////////////////////////////////////////////////////////////////////////

// ExampleNewHyperslab demonstrates a blocked 1D selection over 20
// elements: two-element blocks, spaced five apart, repeated three times.
// Scenario:
//
//	element: 0  1  2  3  4  5  6  7  8  9 10 11
//	picked:  ■  ■  .  .  .  ■  ■  .  .  .  ■  ■
//
// Local coordinates 0..5 address only the picked elements.
func ExampleNewHyperslab() {
	h, _ := index.NewHyperslab([]int64{20}, index.Selection{
		Offset: []int64{0},
		Stride: []int64{5},
		Count:  []int64{3},
		Block:  []int64{2},
	})

	fmt.Println("selected:", index.NumElements(h))
	for local := int64(0); local < index.NumElements(h); local++ {
		fmt.Printf("local %d -> offset %d\n", local, h.Offset1(local))
	}

	// Output:
	// selected: 6
	// local 0 -> offset 0
	// local 1 -> offset 1
	// local 2 -> offset 5
	// local 3 -> offset 6
	// local 4 -> offset 10
	// local 5 -> offset 11
}

////////////////////////////////////////////////////////////////////////////////
// Example: walking a 2D selection
////////////////////////////////////////////////////////////////////////////////

// ExampleWalk demonstrates traversing every selected element of a 2D
// hyperslab in row-major local order: rows 1 and 3 (offset 1, stride 2),
// columns 0 and 2 (stride 2) of a 4×4 array.
func ExampleWalk() {
	h, _ := index.NewHyperslab([]int64{4, 4}, index.Selection{
		Offset: []int64{1, 0},
		Stride: []int64{2, 2},
		Count:  []int64{2, 2},
	})

	index.Walk(h, func(coords []int64, offset int64) bool {
		fmt.Printf("local (%d,%d) -> offset %d\n", coords[0], coords[1], offset)
		return true
	})

	// Output:
	// local (0,0) -> offset 4
	// local (0,1) -> offset 6
	// local (1,0) -> offset 12
	// local (1,1) -> offset 14
}
