package levelancestor

import "testing"

// naiveDepth computes depth[] by a single forward pass, relying on every
// scenario generator producing parent[i] < i.
func naiveDepth(parent []int) []int {
	depth := make([]int, len(parent))
	for i := 1; i < len(parent); i++ {
		depth[i] = depth[parent[i]] + 1
	}
	return depth
}

// naiveAncestor walks parent pointers one step at a time; it is the
// reference oracle every variant is checked against.
func naiveAncestor(parent, depth []int, v, d int) int {
	if d < 0 || d > depth[v] {
		return -1
	}
	for depth[v] > d {
		v = parent[v]
	}
	return v
}

func allVariants() []Variant {
	return []Variant{Table, JumpPointers, Ladder, JumpAndLadder, Optimal}
}

func TestUniversalInvariants(t *testing.T) {
	for _, sc := range scenarios() {
		depth := naiveDepth(sc.parent)
		for _, variant := range allVariants() {
			t.Run(sc.name+"/"+variant.String(), func(t *testing.T) {
				b, err := New(sc.parent, variant, WithCapacity(len(sc.parent)))
				if err != nil {
					t.Fatalf("New: %v", err)
				}

				for v := 0; v < len(sc.parent); v++ {
					// Self.
					got, err := b.Query(v, depth[v])
					if err != nil || got != v {
						t.Errorf("Self: Query(%d, %d) = %d, %v, want %d, nil", v, depth[v], got, err, v)
					}

					// Root.
					got, err = b.Query(v, 0)
					if err != nil || got != 0 {
						t.Errorf("Root: Query(%d, 0) = %d, %v, want 0, nil", v, got, err)
					}

					// Out-of-range.
					if got, err = b.Query(v, depth[v]+1); err != nil || got != -1 {
						t.Errorf("Out-of-range above: Query(%d, %d) = %d, %v, want -1, nil", v, depth[v]+1, got, err)
					}
					if got, err = b.Query(v, -1); err != nil || got != -1 {
						t.Errorf("Out-of-range below: Query(%d, -1) = %d, %v, want -1, nil", v, got, err)
					}

					// Depth-correct.
					if gotDepth, err := b.Depth(v); err != nil || gotDepth != depth[v] {
						t.Errorf("Depth(%d) = %d, %v, want %d, nil", v, gotDepth, err, depth[v])
					}

					// Ancestor-chain, checked against the naive walk for every depth.
					var prev int
					for d := depth[v]; d >= 0; d-- {
						want := naiveAncestor(sc.parent, depth, v, d)
						got, err := b.Query(v, d)
						if err != nil || got != want {
							t.Errorf("Ancestor-chain: Query(%d, %d) = %d, %v, want %d, nil", v, d, got, err, want)
						}

						// Idempotence.
						again, err := b.Query(v, d)
						if err != nil || again != got {
							t.Errorf("Idempotence: Query(%d, %d) = %d on second call, want %d", v, d, again, got)
						}

						// Monotone: as d decreases toward the root, the returned
						// ancestor's depth decreases and the previous answer
						// descends from it.
						if d < depth[v] {
							if naiveAncestor(sc.parent, depth, prev, d) != got {
								t.Errorf("Monotone: ancestor at depth %d of node %d's answer %d should equal %d", d, v, prev, got)
							}
						}
						prev = got
					}
				}
			})
		}
	}
}

func TestLargeChainOptimal(t *testing.T) {
	const n = 100000
	parent := chainParent(n)
	depth := naiveDepth(parent)

	b, err := New(parent, Optimal)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, v := range []int{0, 1, n / 2, n - 1} {
		for _, d := range []int{0, depth[v] / 2, depth[v]} {
			want := naiveAncestor(parent, depth, v, d)
			got, err := b.Query(v, d)
			if err != nil || got != want {
				t.Errorf("Query(%d, %d) = %d, %v, want %d, nil", v, d, got, err, want)
			}
		}
		if got, err := b.Query(v, depth[v]+1); err != nil || got != -1 {
			t.Errorf("Query(%d, %d) = %d, %v, want -1, nil", v, depth[v]+1, got, err)
		}
	}
}

func TestTableCapacityExceeded(t *testing.T) {
	parent := chainParent(10)
	_, err := New(parent, Table, WithCapacity(5))
	if err != ErrCapacityExceeded {
		t.Errorf("New with n=10 > capacity=5 = %v, want ErrCapacityExceeded", err)
	}
}

func TestInvalidTree(t *testing.T) {
	parent := []int{-1, 0, 5} // node 2's parent is out of range
	_, err := New(parent, Optimal)
	if err != ErrBadInput {
		t.Errorf("New with out-of-range parent = %v, want ErrBadInput", err)
	}
}

func TestBadRootParent(t *testing.T) {
	parent := []int{0, 0} // root's own parent must be -1
	_, err := New(parent, Optimal)
	if err != ErrInvalidTree {
		t.Errorf("New with parent[0] != -1 = %v, want ErrInvalidTree", err)
	}
}

func TestQueryBeforeBuild(t *testing.T) {
	b := NewBuilder(3, Optimal)
	if _, err := b.Query(0, 0); err != ErrNotBuilt {
		t.Errorf("Query before Build = %v, want ErrNotBuilt", err)
	}
}

func TestQueryAfterPoisoned(t *testing.T) {
	// Node 2 is never attached to the tree rooted at 0, so computeMetrics
	// visits only {0, 1} and flags the unreachable node.
	b := NewBuilder(3, Optimal)
	if err := b.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := b.Build(0); err != ErrInvalidTree {
		t.Fatalf("Build = %v, want ErrInvalidTree", err)
	}
	if _, err := b.Query(0, 0); err != ErrNotBuilt {
		t.Errorf("Query on poisoned builder = %v, want ErrNotBuilt", err)
	}
}

func TestQueryBadNode(t *testing.T) {
	b, err := New(chainParent(4), Optimal)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := b.Query(-1, 0); err != ErrBadInput {
		t.Errorf("Query(-1, 0) = %v, want ErrBadInput", err)
	}
	if _, err := b.Query(4, 0); err != ErrBadInput {
		t.Errorf("Query(4, 0) = %v, want ErrBadInput", err)
	}
}

func TestParallelBuildMatchesSerial(t *testing.T) {
	for _, sc := range scenarios() {
		depth := naiveDepth(sc.parent)
		serial, err := New(sc.parent, Optimal)
		if err != nil {
			t.Fatalf("New serial: %v", err)
		}
		parallelBuilt, err := New(sc.parent, Optimal, WithParallel(true))
		if err != nil {
			t.Fatalf("New parallel: %v", err)
		}
		for v := 0; v < len(sc.parent); v++ {
			for d := 0; d <= depth[v]; d++ {
				want, _ := serial.Query(v, d)
				got, err := parallelBuilt.Query(v, d)
				if err != nil || got != want {
					t.Errorf("%s: parallel Query(%d, %d) = %d, %v, want %d", sc.name, v, d, got, err, want)
				}
			}
		}
	}
}
