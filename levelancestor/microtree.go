package levelancestor

// encodeMicroTreeNodes runs an iterative pre/post-order DFS over the
// micro-tree rooted at r, assigning microDfsIndex in pre-order and packing
// the Euler-tour balanced-parenthesis bit string into shape: a down bit
// (0) on first visit of a non-root node, an up bit (1) on return except
// when returning to r. A leading sentinel 1 bit is folded in first so
// bit-strings of different lengths never collide as integers. Because a
// micro node's entire subtree is necessarily micro (a child's subtree size
// cannot exceed its parent's), no filtering by microRoot is needed: the
// whole subtree rooted at r belongs to this micro-tree.
func (b *Builder) encodeMicroTreeNodes(r int) (dfsOrder []int, shape uint64) {
	type frame struct {
		v         int
		processed bool
	}
	stack := make([]frame, 0, 2*b.mu+2)
	stack = append(stack, frame{v: r})
	shape = 1

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !top.processed {
			b.microDfsIndex[top.v] = len(dfsOrder)
			dfsOrder = append(dfsOrder, top.v)
			if top.v != r {
				shape <<= 1
			}
			stack = append(stack, frame{v: top.v, processed: true})
			children := b.children[top.v]
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{v: children[i]})
			}
			continue
		}

		if top.v != r {
			shape = (shape << 1) | 1
		}
	}

	for _, v := range dfsOrder {
		b.microEncoding[v] = shape
	}
	return dfsOrder, shape
}

// buildMicroTable constructs microTable[shape]: for each DFS index i,
// microTable[shape][i][d'] is the DFS index of i's ancestor at local
// depth d', walking up via each node's local parent (reconstructed
// directly from the node list rather than the bit string, since both are
// equivalent and the node list is already in hand).
func (b *Builder) buildMicroTable(r int, dfsOrder []int) [][]int {
	size := len(dfsOrder)
	localParent := make([]int, size)
	localDepth := make([]int, size)
	rootDepth := b.depth[r]

	for i, v := range dfsOrder {
		localDepth[i] = b.depth[v] - rootDepth
		if v == r {
			localParent[i] = -1
		} else {
			localParent[i] = b.microDfsIndex[b.parent[v]]
		}
	}

	table := make([][]int, size)
	for i := 0; i < size; i++ {
		row := make([]int, size)
		for d := range row {
			row[d] = -1
		}
		for a := i; a != -1; a = localParent[a] {
			row[localDepth[a]] = a
		}
		table[i] = row
	}
	return table
}

// buildMicroTrees runs C8 sequentially over every micro-root, sharing one
// table per distinct shape.
func (b *Builder) buildMicroTrees() {
	n := b.n
	b.microDfsIndex = make([]int, n)
	b.microEncoding = make([]uint64, n)
	b.microRevMap = make(map[int][]int)
	b.microTables = make(map[uint64][][]int)

	for v := 0; v < n; v++ {
		if !b.isMicro[v] || b.microRoot[v] != v {
			continue
		}
		dfsOrder, shape := b.encodeMicroTreeNodes(v)
		b.microRevMap[v] = dfsOrder
		if _, ok := b.microTables[shape]; !ok {
			b.microTables[shape] = b.buildMicroTable(v, dfsOrder)
		}
	}
}
