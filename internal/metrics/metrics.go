package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	GreetingsServed prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GreetingsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "greetings_served_total",
			Help: "Total number of greeting payloads served on the root route.",
		}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, matched route, and status code.",
		}, []string{"method", "route", "status"}),

		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency from router entry to handler return.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.GreetingsServed,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

// GreetingHook returns the callback handed to the greeting handler.
// Centralises the prometheus call so the handler stays metrics-agnostic.
func (m *Metrics) GreetingHook() func() {
	return func() { m.GreetingsServed.Inc() }
}
