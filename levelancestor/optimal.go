package levelancestor

// queryOptimal answers LA(v, d) in O(1) worst case via the macro-micro-tree
// decomposition (C9). Callers must have already handled the d == depth[v]
// self-case and the out-of-range case; this only ever sees d < depth[v].
//
//  1. Micro phase: if v is micro, either answer from its micro-tree's
//     shared table, or step up to its micro-root's macro parent and fall
//     through to the macro phase below with the updated v.
//  2. Exit check: the step above may have landed exactly on d.
//  3. Macro phase: one jump-pointer step sized to the gap to v's jump
//     descendant, then one ladder-indexed read.
func (b *Builder) queryOptimal(v, d int) int {
	if b.isMicro[v] {
		r := b.microRoot[v]
		rootDepth := b.depth[r]
		if d >= rootDepth {
			table := b.microTables[b.microEncoding[v]]
			row := table[b.microDfsIndex[v]]
			ansIdx := row[d-rootDepth]
			return b.microRevMap[r][ansIdx]
		}
		v = b.parent[r]
		if v == -1 {
			return -1
		}
	}

	if b.depth[v] == d {
		return v
	}

	j := b.jd[v]
	delta := b.depth[j] - d
	step := floorLog2(delta)
	u := b.jumpNodeAt(j, step)
	if b.depth[u] == d {
		return u
	}

	ladder := b.ladders[b.ladderID[u]]
	remainingUp := b.depth[u] - d
	return ladder[b.ladderPos[u]-remainingUp]
}
