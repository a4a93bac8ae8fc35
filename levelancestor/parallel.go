package levelancestor

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// computeMetricsParallel is the opt-in concurrent path for C1: the root's
// direct children are independent subtrees, so each is handed to its own
// goroutine (bounded by runtime.NumCPU() via errgroup.Group.SetLimit).
// Every subtree writes only into node indices within itself, so there is
// no shared mutable state to guard beyond the visited-count sum that
// doubles as the InvalidTree check computeMetrics gets from its single
// visited counter.
func (b *Builder) computeMetricsParallel(ctx context.Context) error {
	n := b.n
	b.depth = make([]int, n)
	b.height = make([]int, n)
	b.subtreeSize = make([]int, n)

	root := b.root
	children := b.children[root]

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.NumCPU()))

	counts := make([]int, len(children))
	orders := make([][]int, len(children))

	for i, c := range children {
		i, c := i, c
		b.depth[c] = b.depth[root] + 1
		g.Go(func() error {
			visited, order := b.computeMetricsSubtree(c)
			counts[i] = visited
			orders[i] = order
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 1
	for _, c := range counts {
		total += c
	}
	if total != n {
		return ErrInvalidTree
	}

	size := 1
	height := 0
	for _, c := range children {
		size += b.subtreeSize[c]
		if b.height[c] > height {
			height = b.height[c]
		}
	}
	b.subtreeSize[root] = size
	b.height[root] = height + 1

	b.postOrderNodes = make([]int, 0, n)
	for _, order := range orders {
		b.postOrderNodes = append(b.postOrderNodes, order...)
	}
	b.postOrderNodes = append(b.postOrderNodes, root)
	return nil
}

// buildMicroTreesParallel is the opt-in concurrent path for C8: every
// micro-root's encoding and table construction is independent of every
// other's. Per-node writes (microDfsIndex, microEncoding) land in disjoint
// index ranges across goroutines; only the shared shape-keyed map needs a
// mutex.
func (b *Builder) buildMicroTreesParallel(ctx context.Context) error {
	n := b.n
	b.microDfsIndex = make([]int, n)
	b.microEncoding = make([]uint64, n)
	b.microRevMap = make(map[int][]int)
	b.microTables = make(map[uint64][][]int)

	roots := make([]int, 0)
	for v := 0; v < n; v++ {
		if b.isMicro[v] && b.microRoot[v] == v {
			roots = append(roots, v)
		}
	}

	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.NumCPU()))

	for _, r := range roots {
		r := r
		g.Go(func() error {
			dfsOrder, shape := b.encodeMicroTreeNodes(r)

			mu.Lock()
			b.microRevMap[r] = dfsOrder
			_, exists := b.microTables[shape]
			mu.Unlock()
			if exists {
				return nil
			}

			table := b.buildMicroTable(r, dfsOrder)

			mu.Lock()
			if _, exists := b.microTables[shape]; !exists {
				b.microTables[shape] = table
			}
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
