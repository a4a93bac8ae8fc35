package levelancestor

import "math/bits"

// ceilLog2 returns ceil(log2(x)) for x >= 1, matching the range used
// throughout the builder for binary-lifting table widths:
// i in [0, ceil(log2(N+1))).
func ceilLog2(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len(uint(x - 1))
}

// floorLog2 returns floor(log2(x)) for x >= 1. Used on the query hot path
// (the macro phase's jump-pointer index) via a branch-free bit scan rather
// than floating point.
func floorLog2(x int) int {
	return bits.Len(uint(x)) - 1
}
