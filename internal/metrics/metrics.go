// Package metrics provides Prometheus collectors for the gateway.
// Scrape them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auctionpulse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auctionpulse_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Message bus Metrics
	BusRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auctionpulse_bus_requests_total",
			Help: "Total number of message bus requests by subject and result",
		},
		[]string{"subject", "result"},
	)

	BusRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auctionpulse_bus_request_duration_seconds",
			Help:    "Round trip time of message bus requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"subject"},
	)

	BusCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auctionpulse_bus_cache_hits_total",
			Help: "Region and realm lookups served from the local cache",
		},
		[]string{"subject"},
	)

	// Price band Metrics
	PriceBandComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auctionpulse_price_band_computations_total",
			Help: "Number of price-list-history band computations",
		},
	)

	PriceBandItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auctionpulse_price_band_items",
			Help:    "Number of items per band computation",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)
)
