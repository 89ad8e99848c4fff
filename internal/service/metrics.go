package service

import (
	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOrderNotFound = "order_not_found"
	outcomeUnchanged     = "unchanged"
	outcomeIgnored       = "ignored"
	outcomeStaleAttempt  = "stale_attempt"
	outcomeConflict      = "conflict"
)

var (
	reconciliationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_reconciler",
		Subsystem: "engine",
		Name:      "reconciliations_total",
		Help:      "Total number of reconciliation attempts by outcome.",
	}, []string{"outcome"})

	sideEffectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_reconciler",
		Subsystem: "engine",
		Name:      "side_effects_total",
		Help:      "Total number of side effect runs by effect and result.",
	}, []string{"effect", "result"})

	pollFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_reconciler",
		Subsystem: "poll",
		Name:      "fallbacks_total",
		Help:      "Total number of status polls answered from local state.",
	}, []string{"reason"})
)

func observeOutcome(outcome string) {
	reconciliationsTotal.WithLabelValues(outcome).Inc()
}

func observeTransition(to entities.OrderStatus) {
	reconciliationsTotal.WithLabelValues("transitioned_" + string(to)).Inc()
}

func observeSideEffect(effect entities.SideEffect, err error) {
	result := "applied"
	if err != nil {
		result = "failed"
	}
	sideEffectsTotal.WithLabelValues(string(effect), result).Inc()
}
