// Package metrics holds the Prometheus collectors for the HTTP API and
// the content pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ScrapesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrapes_total",
			Help: "Total number of scrape runs",
		},
		[]string{"status"},
	)

	MetadataGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_generations_total",
			Help: "Total number of AI metadata generation attempts",
		},
		[]string{"status"},
	)

	PinsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pins_published_total",
			Help: "Total number of pins posted to Pinterest",
		},
		[]string{"status"},
	)
)
