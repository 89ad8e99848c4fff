package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_reconciler",
		Subsystem: "batch",
		Name:      "runs_total",
		Help:      "Total number of batch reconciliation runs.",
	}, []string{"result"})

	batchOrdersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_reconciler",
		Subsystem: "batch",
		Name:      "orders_total",
		Help:      "Orders handled by batch runs, by outcome.",
	}, []string{"outcome"})

	batchRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "payment_reconciler",
		Subsystem: "batch",
		Name:      "run_duration_seconds",
		Help:      "Duration of batch reconciliation runs.",
		Buckets:   prometheus.DefBuckets,
	})
)
