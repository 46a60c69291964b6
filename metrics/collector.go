package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "unsplash"

// Failure kinds
const (
	KindStatus    = "status"
	KindDecode    = "decode"
	KindTransport = "transport"
)

// Collector counts and times API calls. A nil *Collector is valid and records nothing.
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// New registers the collector's metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "API requests by resource, operation, method and response status.",
		}, []string{"resource", "operation", "method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time from building a request to a normalized result.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "operation"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_failures_total",
			Help:      "Failed API calls by kind: status, decode or transport.",
		}, []string{"resource", "operation", "kind"}),
	}
}

// Observation is one finished call
type Observation struct {
	Resource  string
	Operation string
	Method    string
	// Status is the HTTP status, zero when no response arrived
	Status  int
	Failure string
	Elapsed time.Duration
}

// Observe records o
func (c *Collector) Observe(o Observation) {
	if c == nil {
		return
	}

	status := "none"
	if o.Status != 0 {
		status = strconv.Itoa(o.Status)
	}

	c.requests.WithLabelValues(o.Resource, o.Operation, o.Method, status).Inc()
	c.duration.WithLabelValues(o.Resource, o.Operation).Observe(o.Elapsed.Seconds())
	if o.Failure != "" {
		c.failures.WithLabelValues(o.Resource, o.Operation, o.Failure).Inc()
	}
}
