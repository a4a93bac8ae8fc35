package levelancestor

// buildLongPathChild fills lpc[v], the tallest child of v (ties broken by
// first-encountered, strict > comparison), -1 for a leaf.
func (b *Builder) buildLongPathChild() {
	n := b.n
	b.lpc = make([]int, n)
	for v := 0; v < n; v++ {
		best := -1
		bestHeight := -1
		for _, c := range b.children[v] {
			if b.height[c] > bestHeight {
				bestHeight = b.height[c]
				best = c
			}
		}
		b.lpc[v] = best
	}
}

// buildLadders computes the long-path decomposition and extends each path
// into a ladder (C4). A node is a path head iff it has no parent, or it is
// not its parent's long-path child. Each head's long path is collected by
// descending lpc, then extended upward by up to its own length of
// ancestors so every node's ladder covers enough levels above it for
// ClimbLadders to answer in O(1) amortized per doubling.
func (b *Builder) buildLadders() {
	b.buildLongPathChild()
	n := b.n

	b.ladderID = make([]int, n)
	b.ladderPos = make([]int, n)
	for v := range b.ladderID {
		b.ladderID[v] = -1
	}
	b.ladders = nil

	for v := 0; v < n; v++ {
		if b.parent[v] != -1 && b.lpc[b.parent[v]] == v {
			continue
		}
		path := make([]int, 0, 8)
		for cur := v; cur != -1; cur = b.lpc[cur] {
			path = append(path, cur)
		}
		id := len(b.ladders)
		for i, node := range path {
			b.ladderID[node] = id
			b.ladderPos[node] = i
		}
		b.ladders = append(b.ladders, path)
	}

	for id, path := range b.ladders {
		head := path[0]
		h := len(path)
		ext := make([]int, 0, h)
		for cur := b.parent[head]; len(ext) < h && cur != -1; cur = b.parent[cur] {
			ext = append(ext, cur)
		}
		for i, j := 0, len(ext)-1; i < j; i, j = i+1, j-1 {
			ext[i], ext[j] = ext[j], ext[i]
		}

		full := make([]int, 0, len(ext)+len(path))
		full = append(full, ext...)
		full = append(full, path...)
		b.ladders[id] = full

		e := len(ext)
		for i, node := range path {
			b.ladderPos[node] = e + i
		}
	}
}

// queryLadder answers LA(v, d) by repeatedly inspecting v's ladder; once
// the ladder top's depth reaches at or above d the answer is a single
// index away.
func (b *Builder) queryLadder(v, d int) int {
	for {
		ladder := b.ladders[b.ladderID[v]]
		topDepth := b.depth[ladder[0]]
		if topDepth <= d {
			return ladder[b.ladderPos[v]-(b.depth[v]-d)]
		}
		v = b.parent[ladder[0]]
	}
}

// climbLadders returns the ancestor of u that is k levels above it, by the
// same ladder-walking logic as queryLadder phrased as a level count
// instead of a target depth. Used by jump-pointer construction (C6,
// JumpAndLadder) instead of parent-by-parent doubling.
func (b *Builder) climbLadders(u, k int) int {
	if u == -1 {
		return -1
	}
	if k == 0 {
		return u
	}
	target := b.depth[u] - k
	if target < 0 {
		return -1
	}
	return b.queryLadder(u, target)
}
