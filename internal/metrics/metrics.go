// Package metrics collects Prometheus metrics for renders, output writes and
// preview reloads. A *Metrics satisfies both render.Observer and
// output.Observer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "topus").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
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
		Namespace: "topus",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the topus collectors.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderedBytes  prometheus.Counter
	outputWrites   *prometheus.CounterVec
	reloadsTotal   prometheus.Counter
}

// New registers the collectors and returns them.
//
// Metrics collected:
//   - topus_renders_total: Counter of renders by node kind and status
//   - topus_render_duration_seconds: Histogram of render duration by kind
//   - topus_rendered_bytes_total: Counter of bytes produced by renders
//   - topus_output_writes_total: Counter of output writes by sink and status
//   - topus_reloads_total: Counter of preview reload broadcasts
//
// New panics if the collectors are already registered with the registry.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Namespace == "" {
		config.Namespace = "topus"
	}
	if len(config.Buckets) == 0 {
		config.Buckets = prometheus.DefBuckets
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(config.Registry)
	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "renders_total",
			Help:        "Total number of renders",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		renderedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "rendered_bytes_total",
			Help:        "Total number of bytes rendered",
			ConstLabels: config.ConstLabels,
		}),

		outputWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "output_writes_total",
			Help:        "Total number of output writes",
			ConstLabels: config.ConstLabels,
		}, []string{"sink", "status"}),

		reloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "reloads_total",
			Help:        "Total number of preview reloads broadcast",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObserveRender records one render.
func (m *Metrics) ObserveRender(kind string, bytes int64, d time.Duration, err error) {
	m.rendersTotal.WithLabelValues(kind, status(err)).Inc()
	m.renderDuration.WithLabelValues(kind).Observe(d.Seconds())
	if bytes > 0 {
		m.renderedBytes.Add(float64(bytes))
	}
}

// ObserveWrite records one output write.
func (m *Metrics) ObserveWrite(sink string, _ int, err error) {
	m.outputWrites.WithLabelValues(sink, status(err)).Inc()
}

// ObserveReload records one reload broadcast.
func (m *Metrics) ObserveReload() {
	m.reloadsTotal.Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
