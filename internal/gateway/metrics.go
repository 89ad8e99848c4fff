package gateway

import (
	"errors"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "payment_reconciler",
	Subsystem: "gateway",
	Name:      "request_duration_seconds",
	Help:      "Payment gateway request latencies in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation", "result"})

func observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrPaymentNotFound):
		result = "not_found"
	case errors.Is(err, entities.ErrGatewayUnavailable):
		result = "unavailable"
	default:
		result = "error"
	}
	gatewayRequestDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}
