package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_client",
			Name:      "requests_total",
			Help:      "API requests by operation and outcome kind.",
		},
		[]string{"op", "kind"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of API requests, including reading the body.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

// observe records one finished request. Successful calls use kind "ok".
func observe(op string, err error, elapsed time.Duration) {
	kind := "ok"
	if err != nil {
		kind = KindOf(err).String()
	}
	requestsTotal.WithLabelValues(op, kind).Inc()
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}
