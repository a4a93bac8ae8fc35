package levelancestor

// buildJumpDescendant fills jd: jd[v] = v for jump nodes; for every other
// macro node, jd[v] is the jump descendant of the first child that has
// one (micro children never do, since they are initialized to -1 and
// never assigned). Runs over the post-order produced by computeMetrics,
// so every child is resolved before its parent.
func (b *Builder) buildJumpDescendant() {
	n := b.n
	b.jd = make([]int, n)
	for v := 0; v < n; v++ {
		if b.isJump[v] {
			b.jd[v] = v
		} else {
			b.jd[v] = -1
		}
	}

	for _, v := range b.postOrderNodes {
		if b.isMicro[v] || b.isJump[v] {
			continue
		}
		for _, c := range b.children[v] {
			if b.jd[c] != -1 {
				b.jd[v] = b.jd[c]
				break
			}
		}
	}
}
