package levelancestor

// buildJumpPointers fills the plain binary-lifting table (C3) as a
// flattened array, jumpFlat[v*jumpLogN+i] = the 2^i-th ancestor of v,
// the same row-major layout the teacher's binary-lifting LCA table uses
// for its "up" array.
func (b *Builder) buildJumpPointers() {
	n := b.n
	logN := ceilLog2(n + 1)
	if logN == 0 {
		logN = 1
	}
	b.jumpLogN = logN
	b.jumpFlat = make([]int, n*logN)

	for v := 0; v < n; v++ {
		b.jumpFlat[v*logN] = b.parent[v]
	}
	for i := 1; i < logN; i++ {
		for v := 0; v < n; v++ {
			mid := b.jumpFlat[v*logN+i-1]
			if mid == -1 {
				b.jumpFlat[v*logN+i] = -1
				continue
			}
			b.jumpFlat[v*logN+i] = b.jumpFlat[mid*logN+i-1]
		}
	}
}

// queryJumpPointers answers LA(v, d) by consuming stepsUp's set bits from
// high to low, one binary-lifting jump per bit.
func (b *Builder) queryJumpPointers(v, d int) int {
	stepsUp := b.depth[v] - d
	logN := b.jumpLogN
	for i := logN - 1; i >= 0; i-- {
		if stepsUp&(1<<uint(i)) == 0 {
			continue
		}
		v = b.jumpFlat[v*logN+i]
		if v == -1 {
			return -1
		}
	}
	return v
}
