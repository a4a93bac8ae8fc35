package levelancestor

import (
	"context"
	"time"

	"github.com/wyfcoding/levelancestor/logging"
	"github.com/wyfcoding/levelancestor/metrics"
)

type state int

const (
	stateMutable state = iota
	stateBuilt
	statePoisoned
)

// defaultCapacity is the Table variant's default node-count cap (spec
// §4.2's "configured cap, default 1000").
const defaultCapacity = 1000

// Builder constructs one Level Ancestor structure and, once Build
// succeeds, answers Query against it. It moves through exactly three
// states: Mutable (edges may be added), Built (Build succeeded; Query
// allowed), or Poisoned (Build failed; Query returns ErrNotBuilt).
type Builder struct {
	variant  Variant
	n        int
	root     int
	capacity int
	parallel bool
	state    state

	parent   []int
	children [][]int

	// C1
	depth, height, subtreeSize []int
	postOrderNodes             []int

	// C2 (Table)
	table [][]int

	// C3 (JumpPointers)
	jumpFlat []int
	jumpLogN int

	// C4 (Ladder, also used by JumpAndLadder and Optimal)
	lpc       []int
	ladderID  []int
	ladderPos []int
	ladders   [][]int

	// C10 JumpAndLadder
	jlFlat []int
	jlLogN int

	// C5
	isMicro   []bool
	microRoot []int
	mu        int

	// C6
	isJump []bool
	jpFlat []int
	jpLogN int

	// C7
	jd []int

	// C8
	microDfsIndex []int
	microEncoding []uint64
	microRevMap   map[int][]int
	microTables   map[uint64][][]int

	logger        *logging.Logger
	buildMetrics  *metrics.BuildMetrics
	buildDuration time.Duration
	stats         Stats
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithLogger attaches a structured logger that Build reports diagnostics
// to: node count, ladder count, distinct micro-tree shape count, and
// build duration.
func WithLogger(l *logging.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithMetrics attaches a Prometheus build-metrics registry.
func WithMetrics(m *metrics.BuildMetrics) Option {
	return func(b *Builder) { b.buildMetrics = m }
}

// WithCapacity overrides the Table variant's node-count cap.
func WithCapacity(cap int) Option {
	return func(b *Builder) { b.capacity = cap }
}

// WithParallel opts into the errgroup-based concurrent Build path (C1 and
// C8) for large trees. See parallel.go.
func WithParallel(p bool) Option {
	return func(b *Builder) { b.parallel = p }
}

// NewBuilder allocates a Builder for n nodes with no edges yet. Callers
// add edges with AddEdge and finish with Build(root).
func NewBuilder(n int, variant Variant, opts ...Option) *Builder {
	b := &Builder{
		variant:  variant,
		n:        n,
		capacity: defaultCapacity,
		parent:   make([]int, n),
		children: make([][]int, n),
	}
	for i := range b.parent {
		b.parent[i] = -1
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddEdge records that child's parent is parent. Valid only while the
// Builder is Mutable.
func (b *Builder) AddEdge(parent, child int) error {
	if b.state != stateMutable {
		return ErrNotBuilt
	}
	if parent < 0 || parent >= b.n || child < 0 || child >= b.n {
		return ErrBadInput
	}
	b.parent[child] = parent
	b.children[parent] = append(b.children[parent], child)
	return nil
}

// New builds the Optimal-or-other variant directly from a parent array:
// parent[0] must be -1 (node 0 is the root); parent[i] for i > 0 is i's
// parent.
func New(parent []int, variant Variant, opts ...Option) (*Builder, error) {
	n := len(parent)
	b := NewBuilder(n, variant, opts...)
	if n == 0 || parent[0] != -1 {
		b.state = statePoisoned
		return nil, ErrInvalidTree
	}
	for c := 1; c < n; c++ {
		if err := b.AddEdge(parent[c], c); err != nil {
			b.state = statePoisoned
			return nil, err
		}
	}
	if err := b.Build(0); err != nil {
		return nil, err
	}
	return b, nil
}

// Build runs the component pipeline for b's variant and transitions the
// Builder to Built or Poisoned. The Optimal variant's components run in
// exactly the order C1 -> C5 -> C4 -> C6 -> C7 -> C8; correctness depends
// on it.
func (b *Builder) Build(root int) error {
	if b.state != stateMutable {
		return ErrNotBuilt
	}
	if root < 0 || root >= b.n {
		b.state = statePoisoned
		return ErrBadInput
	}
	b.root = root
	start := time.Now()

	if err := b.runMetrics(); err != nil {
		b.state = statePoisoned
		b.buildDuration = time.Since(start)
		b.reportMetrics("failure")
		return err
	}

	switch b.variant {
	case Table:
		if b.n > b.capacity {
			b.state = statePoisoned
			b.buildDuration = time.Since(start)
			b.reportMetrics("failure")
			return ErrCapacityExceeded
		}
		b.buildTable()
	case JumpPointers:
		b.buildJumpPointers()
	case Ladder:
		b.buildLadders()
	case JumpAndLadder:
		b.buildLadders()
		b.buildJumpAndLadderPointers()
	case Optimal:
		b.buildPartition()
		b.buildLadders()
		b.buildJumpNodeSelection()
		b.buildJumpNodePointers()
		b.buildJumpDescendant()
		if err := b.runMicroTrees(); err != nil {
			b.state = statePoisoned
			b.buildDuration = time.Since(start)
			b.reportMetrics("failure")
			return err
		}
	default:
		b.state = statePoisoned
		b.buildDuration = time.Since(start)
		b.reportMetrics("failure")
		return ErrInvalidTree
	}

	b.state = stateBuilt
	b.buildDuration = time.Since(start)
	b.recordStats()
	b.reportMetrics("success")

	if b.logger != nil {
		b.logger.InfoContext(context.Background(), "level ancestor build finished",
			"variant", b.variant.String(),
			"nodes", b.stats.Nodes,
			"ladders", b.stats.Ladders,
			"jump_nodes", b.stats.JumpNodes,
			"micro_shapes", b.stats.MicroShapes,
			"duration", b.buildDuration,
		)
	}
	return nil
}

// runMetrics computes C1, choosing the parallel fan-out path when
// WithParallel was set.
func (b *Builder) runMetrics() error {
	if b.parallel {
		return b.computeMetricsParallel(context.Background())
	}
	return b.computeMetrics()
}

// runMicroTrees computes C8, choosing the parallel fan-out path when
// WithParallel was set.
func (b *Builder) runMicroTrees() error {
	if b.parallel {
		return b.buildMicroTreesParallel(context.Background())
	}
	b.buildMicroTrees()
	return nil
}

// Query answers LA(v, d): the ancestor of v at depth d, or -1 when d is
// outside [0, depth[v]].
func (b *Builder) Query(v, d int) (int, error) {
	if b.state != stateBuilt {
		return -1, ErrNotBuilt
	}
	if v < 0 || v >= b.n {
		return -1, ErrBadInput
	}
	if d < 0 || d > b.depth[v] {
		return -1, nil
	}
	if d == b.depth[v] {
		return v, nil
	}

	switch b.variant {
	case Table:
		return b.table[v][d], nil
	case JumpPointers:
		return b.queryJumpPointers(v, d), nil
	case Ladder:
		return b.queryLadder(v, d), nil
	case JumpAndLadder:
		return b.queryJumpAndLadder(v, d), nil
	case Optimal:
		return b.queryOptimal(v, d), nil
	default:
		return -1, ErrNotBuilt
	}
}

// Depth returns depth[v] for a node in a Built instance.
func (b *Builder) Depth(v int) (int, error) {
	if b.state != stateBuilt {
		return 0, ErrNotBuilt
	}
	if v < 0 || v >= b.n {
		return 0, ErrBadInput
	}
	return b.depth[v], nil
}

// N returns the node count the Builder was constructed with.
func (b *Builder) N() int { return b.n }
