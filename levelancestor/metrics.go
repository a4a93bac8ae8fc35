package levelancestor

// reportMetrics pushes the just-finished Build's stats into the attached
// Prometheus registry, if any. Never touched on the Query hot path.
func (b *Builder) reportMetrics(outcome string) {
	if b.buildMetrics == nil {
		return
	}
	b.buildMetrics.BuildsTotal.WithLabelValues(b.variant.String(), outcome).Inc()
	b.buildMetrics.BuildDuration.Observe(b.buildDuration.Seconds())

	if outcome != "success" {
		return
	}
	b.buildMetrics.NodesTotal.Set(float64(b.stats.Nodes))
	b.buildMetrics.LaddersTotal.Set(float64(b.stats.Ladders))
	b.buildMetrics.JumpNodesTotal.Set(float64(b.stats.JumpNodes))
	b.buildMetrics.ShapesTotal.Set(float64(b.stats.MicroShapes))
}
