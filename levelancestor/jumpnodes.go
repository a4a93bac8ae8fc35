package levelancestor

// buildJumpNodeSelection marks each macro node whose children are all
// micro as a jump node — a macro leaf in the sense of the macro/micro
// partition. Every macro node has at least one child (a macro node's
// subtree size exceeds mu >= 1, so it cannot be a whole-tree leaf), so no
// separate empty-children case is needed.
func (b *Builder) buildJumpNodeSelection() {
	n := b.n
	b.isJump = make([]bool, n)
	for v := 0; v < n; v++ {
		if b.isMicro[v] {
			continue
		}
		allMicro := true
		for _, c := range b.children[v] {
			if !b.isMicro[c] {
				allMicro = false
				break
			}
		}
		b.isJump[v] = allMicro
	}
}

// buildJumpNodePointers fills sparse binary-lifting pointers restricted to
// jump nodes (C6): jump[v][0] = parent[v]; jump[v][i] = climbLadders
// (jump[v][i-1], 2^(i-1)). Requires buildLadders to have already run so
// climbLadders has ladder data to walk.
func (b *Builder) buildJumpNodePointers() {
	n := b.n
	logN := ceilLog2(n + 1)
	if logN == 0 {
		logN = 1
	}
	b.jpLogN = logN
	b.jpFlat = make([]int, n*logN)
	for i := range b.jpFlat {
		b.jpFlat[i] = -1
	}

	for v := 0; v < n; v++ {
		if !b.isJump[v] {
			continue
		}
		b.jpFlat[v*logN] = b.parent[v]
		for i := 1; i < logN; i++ {
			prev := b.jpFlat[v*logN+i-1]
			k := 1 << uint(i-1)
			b.jpFlat[v*logN+i] = b.climbLadders(prev, k)
		}
	}
}

// jumpNodeAt returns jump[v][i] for a jump node v.
func (b *Builder) jumpNodeAt(v, i int) int {
	return b.jpFlat[v*b.jpLogN+i]
}
