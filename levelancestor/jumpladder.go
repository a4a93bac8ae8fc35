package levelancestor

// buildJumpAndLadderPointers combines binary lifting with ladder climbing
// (C3+C4): the same flattened jump table as buildJumpPointers, except each
// doubling step is computed by climbLadders instead of a second parent
// jump. Requires buildLadders to have already run.
func (b *Builder) buildJumpAndLadderPointers() {
	n := b.n
	logN := ceilLog2(n + 1)
	if logN == 0 {
		logN = 1
	}
	b.jlLogN = logN
	b.jlFlat = make([]int, n*logN)

	for v := 0; v < n; v++ {
		b.jlFlat[v*logN] = b.parent[v]
	}
	for i := 1; i < logN; i++ {
		k := 1 << uint(i-1)
		for v := 0; v < n; v++ {
			prev := b.jlFlat[v*logN+i-1]
			b.jlFlat[v*logN+i] = b.climbLadders(prev, k)
		}
	}
}

// queryJumpAndLadder answers LA(v, d) via the same set-bit consuming loop
// as plain binary lifting, over the ladder-derived jump table.
func (b *Builder) queryJumpAndLadder(v, d int) int {
	stepsUp := b.depth[v] - d
	logN := b.jlLogN
	for i := logN - 1; i >= 0; i-- {
		if stepsUp&(1<<uint(i)) == 0 {
			continue
		}
		v = b.jlFlat[v*logN+i]
		if v == -1 {
			return -1
		}
	}
	return v
}
