package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment_reconciler",
			Subsystem: "webhook",
			Name:      "notifications_total",
			Help:      "Total number of verified notifications by result",
		},
		[]string{"result"},
	)

	webhookRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment_reconciler",
			Subsystem: "webhook",
			Name:      "rejected_total",
			Help:      "Total number of notifications answered with 401",
		},
		[]string{"reason"},
	)
)

var (
	retriesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_reconciler",
			Subsystem: "retry_consumer",
			Name:      "side_effects_processed_total",
			Help:      "Total number of side effects applied from the retry queue",
		},
	)

	retriesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_reconciler",
			Subsystem: "retry_consumer",
			Name:      "side_effects_failed_total",
			Help:      "Total number of failed side effect retries",
		},
	)

	retriesDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_reconciler",
			Subsystem: "retry_consumer",
			Name:      "side_effects_dlq_total",
			Help:      "Total number of side effects written to DLQ",
		},
	)

	commitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_reconciler",
			Subsystem: "retry_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	retryProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "payment_reconciler",
			Subsystem: "retry_consumer",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of side effect retry durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
