// Package metrics exposes Prometheus instrumentation for a levelancestor
// build: how big the tree was, how much sparse structure it produced, and
// how long construction took. Unlike a typical service's metrics registry,
// nothing here is ever in the query hot path — Query never touches it.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BuildMetrics is a private Prometheus registry of build-time statistics
// for levelancestor.Builder.Build calls.
type BuildMetrics struct {
	registry *prometheus.Registry

	NodesTotal     prometheus.Gauge
	LaddersTotal   prometheus.Gauge
	JumpNodesTotal prometheus.Gauge
	ShapesTotal    prometheus.Gauge
	BuildDuration  prometheus.Histogram
	BuildsTotal    *prometheus.CounterVec // labeled by variant, outcome
	BuildInfo      *prometheus.GaugeVec
}

// NewBuildMetrics initializes a registry with the Go/process collectors
// plus the build-stat instruments above.
func NewBuildMetrics(serviceName string) *BuildMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &BuildMetrics{registry: reg}

	m.NodesTotal = m.newGauge(prometheus.GaugeOpts{
		Name: "levelancestor_build_nodes_total",
		Help: "Number of nodes in the most recently built tree.",
	})
	m.LaddersTotal = m.newGauge(prometheus.GaugeOpts{
		Name: "levelancestor_build_ladders_total",
		Help: "Number of ladders produced by the long-path decomposition.",
	})
	m.JumpNodesTotal = m.newGauge(prometheus.GaugeOpts{
		Name: "levelancestor_build_jump_nodes_total",
		Help: "Number of macro leaves selected as jump nodes.",
	})
	m.ShapesTotal = m.newGauge(prometheus.GaugeOpts{
		Name: "levelancestor_build_micro_shapes_total",
		Help: "Number of distinct micro-tree shape encodings sharing a table.",
	})
	m.BuildDuration = m.newHistogram(prometheus.HistogramOpts{
		Name:    "levelancestor_build_duration_seconds",
		Help:    "Wall-clock time spent in Build.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
	})
	m.BuildsTotal = m.newCounterVec(prometheus.CounterOpts{
		Name: "levelancestor_builds_total",
		Help: "Total Build calls by variant and outcome.",
	}, []string{"variant", "outcome"})
	m.BuildInfo = m.newGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build information for the service.",
	}, []string{"service", "version"})

	slog.Info("levelancestor metrics registry initialized", "service", serviceName)
	return m
}

func (m *BuildMetrics) newGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	m.registry.MustRegister(g)
	return g
}

func (m *BuildMetrics) newGaugeVec(opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	gv := prometheus.NewGaugeVec(opts, labels)
	m.registry.MustRegister(gv)
	return gv
}

func (m *BuildMetrics) newHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	m.registry.MustRegister(h)
	return h
}

func (m *BuildMetrics) newCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, labels)
	m.registry.MustRegister(cv)
	return cv
}

// Handler returns the HTTP handler that serves the registry in the
// Prometheus exposition format.
func (m *BuildMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ExposeHTTP starts a metrics-only HTTP server on addr and returns a
// shutdown func. cmd/lacli wires this in only when --metrics-addr is set;
// by default no listener is opened.
func (m *BuildMetrics) ExposeHTTP(addr string) func() {
	srv := &http.Server{Addr: addr, Handler: m.Handler()}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown metrics server", "error", err)
		}
	}
}
