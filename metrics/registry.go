// Package metrics exposes prometheus instrumentation for API calls.
package metrics

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry is a prometheus registry with optional process collectors
type Registry struct {
	*prometheus.Registry
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithGoCollector registers Go runtime metrics
func WithGoCollector() RegistryOption {
	return func(r *Registry) {
		r.MustRegister(collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/.*")}),
		))
	}
}

// WithBuildInfoCollector registers the go_build_info metric
func WithBuildInfoCollector() RegistryOption {
	return func(r *Registry) {
		r.MustRegister(collectors.NewBuildInfoCollector())
	}
}

// NewRegistry creates an isolated registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{Registry: prometheus.NewRegistry()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
