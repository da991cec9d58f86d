package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// childBuckets bucket the number of children passed to a single build.
var childBuckets = []float64{0, 1, 2, 4, 8, 16, 32, 64}

// Observer records builder activity. It implements elt.Observer.
type Observer struct {
	elementsBuilt *prometheus.CounterVec
	listeners     *prometheus.CounterVec
	failures      *prometheus.CounterVec
	children      prometheus.Histogram
}

// NewObserver registers the builder metrics and returns an Observer.
// Registering twice on the same registry panics, as with promauto.
func NewObserver(opts ...Option) *Observer {
	config := newConfig(opts)
	factory := promauto.With(config.Registry)

	return &Observer{
		elementsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "elements_built_total",
			Help:        "Total number of elements built, by tag",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		listeners: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "listeners_registered_total",
			Help:        "Total number of event listeners registered, by event",
			ConstLabels: config.ConstLabels,
		}, []string{"event"}),

		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_failures_total",
			Help:        "Total number of failed builds, by tag and error code",
			ConstLabels: config.ConstLabels,
		}, []string{"tag", "code"}),

		children: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "element_children",
			Help:        "Number of children passed per built element",
			ConstLabels: config.ConstLabels,
			Buckets:     childBuckets,
		}),
	}
}

// ElementBuilt records a successful build.
func (o *Observer) ElementBuilt(tag string, props, children int) {
	o.elementsBuilt.WithLabelValues(tag).Inc()
	o.children.Observe(float64(children))
}

// ListenerRegistered records a listener subscription.
func (o *Observer) ListenerRegistered(event string) {
	o.listeners.WithLabelValues(event).Inc()
}

// BuildFailed records a failed build.
func (o *Observer) BuildFailed(tag, code string) {
	if code == "" {
		code = "unknown"
	}
	o.failures.WithLabelValues(tag, code).Inc()
}
