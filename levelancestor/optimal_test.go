package levelancestor

import "testing"

// TestLadderLengthBound checks the doubling-extension guarantee: every
// ladder's length never exceeds twice the tree's node count, summed
// across all ladders it's far looser than that, so this checks each
// ladder individually against 2*n.
func TestLadderLengthBound(t *testing.T) {
	for _, sc := range scenarios() {
		n := len(sc.parent)
		b, err := New(sc.parent, Optimal)
		if err != nil {
			t.Fatalf("%s: New: %v", sc.name, err)
		}
		for i, ladder := range b.ladders {
			if len(ladder) > 2*n {
				t.Errorf("%s: ladder %d has length %d, want <= %d", sc.name, i, len(ladder), 2*n)
			}
		}
	}
}

// TestMicroRootMacroParent checks that every micro-root's parent, if it
// exists, is macro (a micro-root's subtree is maximal, so its parent
// cannot also be micro).
func TestMicroRootMacroParent(t *testing.T) {
	for _, sc := range scenarios() {
		b, err := New(sc.parent, Optimal)
		if err != nil {
			t.Fatalf("%s: New: %v", sc.name, err)
		}
		for v := 0; v < b.n; v++ {
			if !b.isMicro[v] || b.microRoot[v] != v {
				continue
			}
			p := b.parent[v]
			if p == -1 {
				continue
			}
			if b.isMicro[p] {
				t.Errorf("%s: micro-root %d has micro parent %d", sc.name, v, p)
			}
		}
	}
}

// TestJumpDescendantValidity checks that jd[v] is either -1 (v is micro)
// or a macro node that is itself a jump node.
func TestJumpDescendantValidity(t *testing.T) {
	for _, sc := range scenarios() {
		b, err := New(sc.parent, Optimal)
		if err != nil {
			t.Fatalf("%s: New: %v", sc.name, err)
		}
		for v := 0; v < b.n; v++ {
			if b.isMicro[v] {
				continue
			}
			jd := b.jd[v]
			if jd == -1 {
				t.Errorf("%s: macro node %d has jd == -1", sc.name, v)
				continue
			}
			if b.isMicro[jd] || !b.isJump[jd] {
				t.Errorf("%s: jd[%d] = %d is not a macro jump node", sc.name, v, jd)
			}
			if b.depth[jd] < b.depth[v] {
				t.Errorf("%s: jd[%d] = %d is shallower than %d", sc.name, v, jd, v)
			}
		}
	}
}

// TestMicroTableSharedByShape checks that two micro-trees with the same
// shape encoding share the exact same table object, not merely an
// equal one, since that sharing is the whole point of keying the table
// cache by shape.
func TestMicroTableSharedByShape(t *testing.T) {
	b, err := New(starParent(50), Optimal)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	seen := make(map[uint64][][]int)
	for v := 0; v < b.n; v++ {
		if !b.isMicro[v] || b.microRoot[v] != v {
			continue
		}
		shape := b.microEncoding[v]
		table := b.microTables[shape]
		if prior, ok := seen[shape]; ok {
			if &prior[0] != &table[0] {
				t.Errorf("micro-root %d: table for shape %d is not the shared object", v, shape)
			}
			continue
		}
		seen[shape] = table
	}
	if len(seen) == 0 {
		t.Skip("no micro-roots produced for this scenario")
	}
}
