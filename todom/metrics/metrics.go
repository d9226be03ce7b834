// Package metrics counts transformed nodes with Prometheus.
//
// A Collector plugs into a transform through its hook:
//
//	c := metrics.New(metrics.WithRegistry(reg))
//	out, err := todom.Transform(tree, todom.WithAfterTransform(c.Hook()))
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/syntax-tree/hast-util-to-dom/todom/dom"
	"github.com/syntax-tree/hast-util-to-dom/todom/hast"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "hast_to_dom").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// Buckets are the histogram buckets for transform duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "hast_to_dom",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the transform metrics.
type Collector struct {
	nodesTotal        *prometheus.CounterVec
	elementsTotal     *prometheus.CounterVec
	transformDuration prometheus.Histogram
}

// New registers the transform metrics and returns their Collector. It panics
// when the metrics are already registered with the registry.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		nodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "nodes_transformed_total",
			Help:      "Total number of hast nodes transformed, by node type",
		}, []string{"type"}),

		elementsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "elements_created_total",
			Help:      "Total number of DOM elements created, by namespace",
		}, []string{"namespace"}),

		transformDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "transform_duration_seconds",
			Help:      "Duration of whole tree transforms in seconds",
			Buckets:   config.Buckets,
		}),
	}
}

// Hook returns an after-transform hook that counts every node.
func (c *Collector) Hook() func(hast.Node, *dom.Node) {
	return func(node hast.Node, transformed *dom.Node) {
		c.nodesTotal.WithLabelValues(node.Type()).Inc()
		if transformed != nil && transformed.NodeType == dom.ElementNode {
			c.elementsTotal.WithLabelValues(namespaceLabel(transformed.NamespaceURI)).Inc()
		}
	}
}

// Observe records the duration of one transform.
func (c *Collector) Observe(d time.Duration) {
	c.transformDuration.Observe(d.Seconds())
}

// Time runs fn and records how long it took.
func (c *Collector) Time(fn func() error) error {
	start := time.Now()
	defer func() {
		c.Observe(time.Since(start))
	}()
	return fn()
}

func namespaceLabel(ns dom.Namespace) string {
	switch ns {
	case dom.Htmlns:
		return "html"
	case dom.Svgns:
		return "svg"
	case dom.Mathmlns:
		return "mathml"
	case "":
		return "none"
	}
	return "other"
}

// Chain combines hooks into one that calls each in order. Nil hooks are
// skipped.
func Chain(hooks ...func(hast.Node, *dom.Node)) func(hast.Node, *dom.Node) {
	return func(node hast.Node, transformed *dom.Node) {
		for _, hook := range hooks {
			if hook != nil {
				hook(node, transformed)
			}
		}
	}
}
