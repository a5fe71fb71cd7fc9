package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WriteThroughFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "expansion",
		Name:      "write_through_failures_total",
		Help:      "Mutations whose backend persistence failed.",
	}, []string{"operation"})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "expansion",
		Name:      "city_status_transitions_total",
		Help:      "City status changes, by origin and destination status.",
	}, []string{"from", "to"})

	ReconcileCorrections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "expansion",
		Name:      "reconcile_corrections_total",
		Help:      "City statuses repaired because a plan exists for the city.",
	})

	AnalyticsQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "expansion",
		Name:      "analytics_query_duration_seconds",
		Help:      "Latency of queries against the analytics database.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})

	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "expansion",
		Name:      "chat_requests_total",
		Help:      "AI chat requests, by outcome.",
	}, []string{"outcome"})
)
