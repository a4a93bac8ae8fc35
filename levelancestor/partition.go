package levelancestor

// buildPartition marks nodes micro (subtreeSize <= mu) or macro, then
// assigns each micro node its microRoot: the highest ancestor (or itself)
// whose subtree is micro and whose parent is macro or absent. mu =
// max(1, floor(log2(N+1)/4)), the Bender-Farach-Colton threshold that
// bounds micro-tree shape count to O(4^mu).
func (b *Builder) buildPartition() {
	n := b.n
	mu := floorLog2(n+1) / 4
	if mu < 1 {
		mu = 1
	}
	b.mu = mu

	b.isMicro = make([]bool, n)
	for v := 0; v < n; v++ {
		b.isMicro[v] = b.subtreeSize[v] <= mu
	}

	b.microRoot = make([]int, n)
	for v := range b.microRoot {
		b.microRoot[v] = -1
	}
	if b.isMicro[b.root] {
		b.microRoot[b.root] = b.root
	}

	queue := make([]int, 0, n)
	queue = append(queue, b.root)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, c := range b.children[v] {
			if b.isMicro[v] {
				b.microRoot[c] = b.microRoot[v]
			} else if b.isMicro[c] {
				b.microRoot[c] = c
			}
			queue = append(queue, c)
		}
	}
}
