package levelancestor

// buildTable fills the quadratic ancestor table (C2): table[root] = [root];
// for each child c of v, table[c] inherits table[v] and appends c at its
// own depth. Callers must reject N above capacity before calling this —
// see Build's Table case.
func (b *Builder) buildTable() {
	n := b.n
	b.table = make([][]int, n)
	b.table[b.root] = []int{b.root}

	stack := make([]int, 0, n)
	stack = append(stack, b.root)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range b.children[v] {
			row := make([]int, b.depth[c]+1)
			copy(row, b.table[v])
			row[b.depth[c]] = c
			b.table[c] = row
			stack = append(stack, c)
		}
	}
}
