// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "customer_search"

var (
	// RequestsTotal counts handled requests.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	// RequestDuration observes handler latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	// SearchResults observes how many customers each search returned.
	SearchResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "results",
		Help:      "Number of customers returned per search.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"source"})
)

// ObserveResults records the size of one result set. source is "api" for
// the JSON endpoint and "page" for the HTML page.
func ObserveResults(source string, n int) {
	SearchResults.WithLabelValues(source).Observe(float64(n))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
