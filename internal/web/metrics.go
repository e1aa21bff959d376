package web

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pizza_http_requests_total",
		Help: "Number of HTTP requests processed, by method and status code.",
	}, []string{"method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pizza_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// OrdersPlacedTotal counts successful checkouts.
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pizza_orders_placed_total",
		Help: "Number of orders placed.",
	})

	// OrdersCancelledTotal counts order cancellations.
	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pizza_orders_cancelled_total",
		Help: "Number of orders cancelled.",
	})
)

func observeRequest(method, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, status).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// MetricsHandler serves the Prometheus scrape endpoint
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
