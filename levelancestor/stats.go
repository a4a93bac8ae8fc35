package levelancestor

// Stats is a read-only snapshot of a Built instance's structural size,
// exposed for the metrics package and for operators inspecting a build
// (cmd/lacli --stats). Not part of spec's core query contract, but a
// natural complement to BuildComplexity/QueryComplexity.
type Stats struct {
	Nodes             int
	Ladders           int
	JumpNodes         int
	MicroShapes       int
	MicroTableEntries int
}

// Stats returns the last successful Build's statistics. Zero value before
// a successful Build.
func (b *Builder) Stats() Stats {
	return b.stats
}

func (b *Builder) recordStats() {
	s := Stats{Nodes: b.n}
	s.Ladders = len(b.ladders)

	for _, isJump := range b.isJump {
		if isJump {
			s.JumpNodes++
		}
	}

	s.MicroShapes = len(b.microTables)
	for _, table := range b.microTables {
		s.MicroTableEntries += len(table) * len(table)
	}

	b.stats = s
}
