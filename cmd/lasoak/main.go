// Command lasoak periodically builds random trees and cross-checks the
// Optimal variant's answers against the quadratic Table variant, which
// serves as ground truth since it answers every query by direct lookup.
// A mismatch is logged as an error; the process otherwise runs silently.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/wyfcoding/levelancestor/config"
	"github.com/wyfcoding/levelancestor/levelancestor"
	"github.com/wyfcoding/levelancestor/logging"
	"github.com/wyfcoding/levelancestor/metrics"
)

func randomParent(n int, rng *rand.Rand) []int {
	parent := make([]int, n)
	parent[0] = -1
	for i := 1; i < n; i++ {
		parent[i] = rng.Intn(i)
	}
	return parent
}

func naiveDepth(parent []int) []int {
	depth := make([]int, len(parent))
	for i := 1; i < len(parent); i++ {
		depth[i] = depth[parent[i]] + 1
	}
	return depth
}

// soakRunner holds the state one scheduled cross-check run needs: a
// seeded PRNG (for reproducible failures) and the configured node-count
// range.
type soakRunner struct {
	rng              *rand.Rand
	minNodes         int
	maxNodes         int
	logger           *logging.Logger
	buildMetrics     *metrics.BuildMetrics
	runs, mismatches int
}

func (s *soakRunner) run(ctx context.Context) {
	n := s.minNodes
	if s.maxNodes > s.minNodes {
		n += s.rng.Intn(s.maxNodes - s.minNodes + 1)
	}
	parent := randomParent(n, s.rng)
	depth := naiveDepth(parent)

	opts := []levelancestor.Option{levelancestor.WithLogger(s.logger)}
	if s.buildMetrics != nil {
		opts = append(opts, levelancestor.WithMetrics(s.buildMetrics))
	}

	optimal, err := levelancestor.New(parent, levelancestor.Optimal, opts...)
	if err != nil {
		s.logger.ErrorContext(ctx, "soak: optimal build failed", "nodes", n, "error", err)
		return
	}
	reference, err := levelancestor.New(parent, levelancestor.Table, append(opts, levelancestor.WithCapacity(n))...)
	if err != nil {
		s.logger.ErrorContext(ctx, "soak: reference build failed", "nodes", n, "error", err)
		return
	}

	s.runs++
	for v := 0; v < n; v++ {
		for d := 0; d <= depth[v]; d++ {
			want, _ := reference.Query(v, d)
			got, err := optimal.Query(v, d)
			if err != nil || got != want {
				s.mismatches++
				s.logger.ErrorContext(ctx, "soak: mismatch detected",
					"nodes", n, "node", v, "depth", d, "want", want, "got", got, "error", err)
			}
		}
	}
	s.logger.InfoContext(ctx, "soak: cross-check pass complete", "nodes", n, "runs", s.runs, "mismatches", s.mismatches)
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a CLIConfig TOML file")
	schedule := flag.String("schedule", "@every 5m", "cron schedule for cross-check runs (overrides config)")
	minNodes := flag.Int("min-nodes", 10, "minimum random tree size per run (overrides config)")
	maxNodes := flag.Int("max-nodes", 2000, "maximum random tree size per run (overrides config)")
	metricsAddr := flag.String("metrics-addr", "", "address to expose Prometheus metrics on")
	flag.Parse()

	cfg := &config.CLIConfig{Soak: config.SoakConfig{Schedule: *schedule, MinNodes: *minNodes, MaxNodes: *maxNodes}}
	if *configPath != "" {
		if err := config.Load(*configPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if cfg.Soak.Schedule == "" {
		cfg.Soak.Schedule = *schedule
	}
	if cfg.Soak.MinNodes == 0 {
		cfg.Soak.MinNodes = *minNodes
	}
	if cfg.Soak.MaxNodes == 0 {
		cfg.Soak.MaxNodes = *maxNodes
	}

	logging.InitLogger("lasoak", "soak", cfg.Log.Level)
	logger := logging.GetLogger()

	var buildMetrics *metrics.BuildMetrics
	addr := cfg.MetricsAddr
	if *metricsAddr != "" {
		addr = *metricsAddr
	}
	if addr != "" {
		buildMetrics = metrics.NewBuildMetrics("lasoak")
		shutdown := buildMetrics.ExposeHTTP(addr)
		defer shutdown()
	}

	runner := &soakRunner{
		rng:          rand.New(rand.NewSource(42)),
		minNodes:     cfg.Soak.MinNodes,
		maxNodes:     cfg.Soak.MaxNodes,
		logger:       logger,
		buildMetrics: buildMetrics,
	}

	c := cron.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := c.AddFunc(cfg.Soak.Schedule, func() { runner.run(ctx) }); err != nil {
		logger.ErrorContext(ctx, "soak: invalid schedule", "schedule", cfg.Soak.Schedule, "error", err)
		return 1
	}

	logger.InfoContext(ctx, "soak: starting", "schedule", cfg.Soak.Schedule, "min_nodes", cfg.Soak.MinNodes, "max_nodes", cfg.Soak.MaxNodes)
	c.Start()
	defer c.Stop()

	<-ctx.Done()
	logger.InfoContext(context.Background(), "soak: shutting down", "runs", runner.runs, "mismatches", runner.mismatches)
	return 0
}
