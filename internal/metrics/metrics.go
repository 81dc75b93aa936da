// Package metrics registers the process Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts handled HTTP requests by method, route, and
	// status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galleria_http_requests_total",
		Help: "HTTP requests handled, by method, route, and status.",
	}, []string{"method", "route", "status"})

	// UpstreamFetchDuration tracks catalog API call latency per endpoint.
	UpstreamFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "galleria_upstream_fetch_duration_seconds",
		Help:    "Latency of upstream catalog API fetches.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "outcome"})

	// FavoriteToggles counts favorite toggle operations by kind.
	FavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galleria_favorite_toggles_total",
		Help: "Favorite toggle operations, by entity kind.",
	}, []string{"kind"})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
