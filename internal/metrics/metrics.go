// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records store and HTTP metrics.
type Collector struct {
	storeOps      *prometheus.CounterVec
	storeLatency  *prometheus.HistogramVec
	httpResponses *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "garderoba_store_operations_total",
			Help: "Document store operations by operation, collection and outcome.",
		}, []string{"op", "collection", "outcome"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "garderoba_store_operation_seconds",
			Help:    "Document store operation latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		httpResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "garderoba_http_requests_total",
			Help: "HTTP responses by status code.",
		}, []string{"code"}),
	}

	reg.MustRegister(c.storeOps, c.storeLatency, c.httpResponses)
	return c
}

// ObserveStoreOp records one document store operation.
func (c *Collector) ObserveStoreOp(op, collection string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.storeOps.WithLabelValues(op, collection, outcome).Inc()
	c.storeLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordHTTPStatus records the status code of one HTTP response.
func (c *Collector) RecordHTTPStatus(code int) {
	c.httpResponses.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
