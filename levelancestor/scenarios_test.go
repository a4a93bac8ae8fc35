package levelancestor

import "math/rand"

// chainParent returns a parent array for a straight-line tree of n nodes
// (0 is the root, i's parent is i-1).
func chainParent(n int) []int {
	p := make([]int, n)
	p[0] = -1
	for i := 1; i < n; i++ {
		p[i] = i - 1
	}
	return p
}

// starParent returns a parent array for a tree of n nodes where every
// non-root node is a direct child of the root.
func starParent(n int) []int {
	p := make([]int, n)
	p[0] = -1
	for i := 1; i < n; i++ {
		p[i] = 0
	}
	return p
}

// bushyParent returns a parent array for a wide, shallow tree: the root
// has sqrt(n) children, each of which has the remaining nodes split
// roughly evenly beneath it.
func bushyParent(n int) []int {
	p := make([]int, n)
	p[0] = -1
	if n <= 1 {
		return p
	}
	width := 1
	for width*width < n {
		width++
	}
	for i := 1; i < n; i++ {
		if i <= width {
			p[i] = 0
			continue
		}
		p[i] = 1 + (i-1)%width
	}
	return p
}

// completeBinaryParent returns a parent array for a complete binary tree
// of n nodes (node i's parent is (i-1)/2).
func completeBinaryParent(n int) []int {
	p := make([]int, n)
	p[0] = -1
	for i := 1; i < n; i++ {
		p[i] = (i - 1) / 2
	}
	return p
}

// randomParent returns a parent array for a tree of n nodes built by
// attaching each node i to a uniformly random earlier node, using rng
// for every attachment decision.
func randomParent(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	p[0] = -1
	for i := 1; i < n; i++ {
		p[i] = rng.Intn(i)
	}
	return p
}

// scenario bundles a named parent array used by more than one test.
type scenario struct {
	name   string
	parent []int
}

func scenarios() []scenario {
	return []scenario{
		{"chain_16", chainParent(16)},
		{"star_16", starParent(16)},
		{"bushy_100", bushyParent(100)},
		{"complete_binary_127", completeBinaryParent(127)},
		{"random_seed42_n1000", randomParent(1000, rand.New(rand.NewSource(42)))},
	}
}
