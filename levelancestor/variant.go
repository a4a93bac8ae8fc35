package levelancestor

// Variant selects one of the five query strategies a Builder implements.
// Treated as a tagged variant rather than a type hierarchy: every value
// shares the same {Query, BuildComplexity, QueryComplexity} capability
// set on Builder.
type Variant int

const (
	// Table is the quadratic ancestor-table reference (C2): O(1) query,
	// O(N^2) build, capped by Builder's capacity.
	Table Variant = iota
	// JumpPointers is plain binary lifting (C3): O(log N) query and build.
	JumpPointers
	// Ladder is long-path ladder decomposition alone (C4): O(log N) query,
	// O(N) build.
	Ladder
	// JumpAndLadder combines binary lifting with ladder climbing (C3+C4):
	// same asymptotic bounds as Ladder, included as a design reference.
	JumpAndLadder
	// Optimal is the macro-micro-tree decomposition (C5-C9): O(1)
	// worst-case query, O(N) build.
	Optimal
)

func (v Variant) String() string {
	switch v {
	case Table:
		return "table"
	case JumpPointers:
		return "jump-pointers"
	case Ladder:
		return "ladder"
	case JumpAndLadder:
		return "jump-and-ladder"
	case Optimal:
		return "optimal"
	default:
		return "unknown"
	}
}
