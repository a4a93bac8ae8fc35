// Command lacli builds one level ancestor structure from a parent array
// read on stdin and answers LA(v, d) queries read one per line until a
// line that isn't exactly two integers.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wyfcoding/levelancestor/config"
	"github.com/wyfcoding/levelancestor/levelancestor"
	"github.com/wyfcoding/levelancestor/logging"
	"github.com/wyfcoding/levelancestor/metrics"
	"github.com/wyfcoding/levelancestor/xerrors"
)

func parseVariant(s string) (levelancestor.Variant, error) {
	switch s {
	case "", "optimal":
		return levelancestor.Optimal, nil
	case "table":
		return levelancestor.Table, nil
	case "jump":
		return levelancestor.JumpPointers, nil
	case "ladder":
		return levelancestor.Ladder, nil
	case "jumpladder":
		return levelancestor.JumpAndLadder, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	variantFlag := flag.String("variant", "", "dispatcher to build: optimal|table|jump|ladder|jumpladder (overrides config)")
	configPath := flag.String("config", "", "path to a CLIConfig TOML file")
	metricsAddr := flag.String("metrics-addr", "", "address to expose Prometheus metrics on (overrides config, empty disables)")
	capacity := flag.Int("capacity", 0, "override the Table variant's node-count cap (0 keeps the configured default)")
	parallel := flag.Bool("parallel", false, "opt into the concurrent build path")
	showStats := flag.Bool("stats", false, "print build statistics to stderr after construction")
	flag.Parse()

	cfg := &config.CLIConfig{Variant: "optimal", DefaultCapacity: 1000}
	if *configPath != "" {
		if err := config.Load(*configPath, cfg); err != nil {
			wrapped := xerrors.New(xerrors.ErrFailedPrecondition, 400201, "failed to load config", *configPath, err)
			fmt.Fprintln(os.Stderr, wrapped)
			return 1
		}
	}
	if *variantFlag != "" {
		cfg.Variant = *variantFlag
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *capacity > 0 {
		cfg.DefaultCapacity = *capacity
	}
	if *parallel {
		cfg.Parallel = true
	}

	logging.InitLogger("lacli", "cli", cfg.Log.Level)
	logger := logging.GetLogger()

	variant, err := parseVariant(cfg.Variant)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var buildMetrics *metrics.BuildMetrics
	if cfg.MetricsAddr != "" {
		buildMetrics = metrics.NewBuildMetrics("lacli")
		shutdown := buildMetrics.ExposeHTTP(cfg.MetricsAddr)
		defer shutdown()
	}

	reader := bufio.NewReader(os.Stdin)
	parentLine, err := reader.ReadString('\n')
	if err != nil && parentLine == "" {
		return 0
	}
	fields := strings.Fields(parentLine)
	parent := make([]int, len(fields))
	for i, f := range fields {
		p, err := strconv.Atoi(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid parent array: %v\n", err)
			return 1
		}
		parent[i] = p
	}

	opts := []levelancestor.Option{
		levelancestor.WithLogger(logger),
		levelancestor.WithCapacity(cfg.DefaultCapacity),
		levelancestor.WithParallel(cfg.Parallel),
	}
	if buildMetrics != nil {
		opts = append(opts, levelancestor.WithMetrics(buildMetrics))
	}

	la, err := levelancestor.New(parent, variant, opts...)
	if err != nil {
		wrapped := xerrors.New(xerrors.ErrFailedPrecondition, 400202, "failed to build level ancestor structure", "", err)
		fmt.Fprintln(os.Stderr, wrapped)
		return 1
	}

	if *showStats {
		stats := la.Stats()
		fmt.Fprintf(os.Stderr, "nodes=%d ladders=%d jump_nodes=%d micro_shapes=%d\n",
			stats.Nodes, stats.Ladders, stats.JumpNodes, stats.MicroShapes)
	}

	logger.InfoContext(context.Background(), "level ancestor structure ready", "variant", variant.String(), "nodes", la.N())

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != 2 {
			return 0
		}
		v, err1 := strconv.Atoi(tokens[0])
		d, err2 := strconv.Atoi(tokens[1])
		if err1 != nil || err2 != nil {
			return 0
		}
		result, err := la.Query(v, d)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(result)
	}
	return 0
}
