// Package promhooks counts registry activity with Prometheus.
//
//	m := promhooks.New(promhooks.WithRegistry(promReg))
//	reg.Configure(m.Wrap(reg.Hooks()))
package promhooks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pthm/vnode"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "vnode").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the collectors fed by the wrapped hooks.
type Metrics struct {
	componentsCreated *prometheus.CounterVec
	renderErrors      prometheus.Counter
	tagsSerialized    *prometheus.CounterVec
	textEscaped       prometheus.Counter
}

// New creates and registers the collectors.
func New(opts ...Option) *Metrics {
	config := Config{
		Namespace: "vnode",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		componentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "components_created_total",
			Help:        "Total number of components registered",
			ConstLabels: config.ConstLabels,
		}, []string{"component"}),

		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "render_errors_total",
			Help:        "Total number of failed component renders",
			ConstLabels: config.ConstLabels,
		}),

		tagsSerialized: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "tags_serialized_total",
			Help:        "Total number of tag nodes serialized",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		textEscaped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "text_nodes_total",
			Help:        "Total number of text nodes built",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Wrap returns base with LogErrors, ComponentCreated, EscapeValue and
// TagNodeToString counting before they delegate. Nil hooks in base fall
// back to vnode.DefaultHooks.
func (m *Metrics) Wrap(base vnode.Hooks) vnode.Hooks {
	h := vnode.DefaultHooks()
	if base.LogErrors != nil {
		h.LogErrors = base.LogErrors
	}
	if base.ComponentCreated != nil {
		h.ComponentCreated = base.ComponentCreated
	}
	if base.EscapeValue != nil {
		h.EscapeValue = base.EscapeValue
	}
	if base.IsSafeString != nil {
		h.IsSafeString = base.IsSafeString
	}
	if base.TagNodeToString != nil {
		h.TagNodeToString = base.TagNodeToString
	}

	return vnode.Hooks{
		LogErrors: func(err error) {
			m.renderErrors.Inc()
			h.LogErrors(err)
		},
		ComponentCreated: func(name string, fn vnode.RenderFunc) {
			m.componentsCreated.WithLabelValues(name).Inc()
			h.ComponentCreated(name, fn)
		},
		EscapeValue: func(v any) string {
			m.textEscaped.Inc()
			return h.EscapeValue(v)
		},
		IsSafeString: h.IsSafeString,
		TagNodeToString: func(data vnode.TagJSON) string {
			m.tagsSerialized.WithLabelValues(data.Tag).Inc()
			return h.TagNodeToString(data)
		},
	}
}
