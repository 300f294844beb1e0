package index

// NumElements returns the number of local coordinates ix addresses: the
// product of Extent(d) over all dimensions. For a dense index this is
// the total element count of the array; for a hyperslab it is the number
// of selected elements, Π count[d]*block[d].
// Complexity: O(rank).
func NumElements(ix Index) int64 {
	n := int64(1)
	for d := 0; d < ix.Rank(); d++ {
		n *= ix.Extent(d)
	}

	return n
}

// Walk visits every local coordinate of ix in row-major order (last
// dimension varies fastest) together with its mapped linear offset.
// fn returning false stops the walk early. The coords slice is reused
// across calls; copy it if retained.
// Complexity: O(NumElements × rank).
func Walk(ix Index, fn func(coords []int64, offset int64) bool) {
	rank := ix.Rank()
	for d := 0; d < rank; d++ {
		if ix.Extent(d) == 0 {
			return // empty local space, nothing to visit
		}
	}
	coords := make([]int64, rank)
	for {
		if !fn(coords, ix.Offset(coords...)) {
			return
		}
		// Odometer increment, rightmost dimension first.
		d := rank - 1
		for ; d >= 0; d-- {
			coords[d]++
			if coords[d] < ix.Extent(d) {
				break
			}
			coords[d] = 0
		}
		if d < 0 {
			return
		}
	}
}
