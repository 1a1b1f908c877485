package instrument

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tagtree-dev/tagtree/pkg/render"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "tagtree").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "tagtree",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// renderMetrics holds the Prometheus metrics for render passes.
type renderMetrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	renderNodes    prometheus.Histogram
	renderBytes    prometheus.Counter
}

// globalMetrics is the singleton instance bound to the default registry.
// Created on the first Prometheus() call so repeated construction never
// double-registers.
var (
	globalMetrics   *renderMetrics
	globalMetricsMu sync.Mutex
)

// initMetrics registers the render metrics with the configured registry.
func initMetrics(config MetricsConfig) *renderMetrics {
	factory := promauto.With(config.Registry)

	return &renderMetrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render passes by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_nodes",
			Help:        "Number of tree nodes visited per render pass",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{16, 64, 256, 1024, 4096, 16384, 65536},
		}),

		renderBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes_total",
			Help:        "Total bytes of markup produced",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates render middleware that collects Prometheus metrics.
//
// Metrics collected:
//   - tagtree_renders_total: Counter of render passes by status
//   - tagtree_render_duration_seconds: Histogram of pass duration
//   - tagtree_render_nodes: Histogram of nodes visited per pass
//   - tagtree_render_bytes_total: Counter of markup bytes produced
//
// Example:
//
//	r := render.NewRenderer(render.Config{})
//	r.Use(instrument.Prometheus(
//	    instrument.WithNamespace("myapp"),
//	))
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
//
// With the default registry the metrics are registered once per process and
// shared by every renderer. A custom registry gets its own set.
func Prometheus(opts ...MetricsOption) render.Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	var m *renderMetrics
	if config.Registry == prometheus.DefaultRegisterer {
		globalMetricsMu.Lock()
		if globalMetrics == nil {
			globalMetrics = initMetrics(config)
		}
		m = globalMetrics
		globalMetricsMu.Unlock()
	} else {
		m = initMetrics(config)
	}

	return func(ctx context.Context, info *render.PassInfo, next func(context.Context) error) error {
		start := time.Now()

		err := next(ctx)

		m.renderDuration.Observe(time.Since(start).Seconds())
		m.renderNodes.Observe(float64(info.Stats.Nodes))
		m.renderBytes.Add(float64(info.Stats.Bytes))

		status := "success"
		if err != nil {
			status = "error"
		}
		m.rendersTotal.WithLabelValues(status).Inc()

		return err
	}
}
