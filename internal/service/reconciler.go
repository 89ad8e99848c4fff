package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

type OrderRepo interface {
	FindOrder(ctx context.Context, id int64) (entities.Order, error)
	// UpdateStatusIf меняет статус только если в базе всё ещё expected
	UpdateStatusIf(ctx context.Context, id int64, expected, next entities.OrderStatus, paymentID string) (bool, error)
}

// Coordinator применяет один побочный эффект оплаченного заказа.
type Coordinator interface {
	Effect() entities.SideEffect
	Apply(ctx context.Context, orderID int64) error
}

// FailureSink принимает эффекты, упавшие после перевода заказа в PAID.
type FailureSink interface {
	PublishFailure(ctx context.Context, orderID int64, effect entities.SideEffect, cause error) error
}

type reconciler struct {
	logger       *slog.Logger
	repo         OrderRepo
	sink         FailureSink
	coordinators []Coordinator
}

func NewReconciler(logger *slog.Logger, repo OrderRepo, sink FailureSink, coordinators ...Coordinator) *reconciler {
	return &reconciler{
		logger:       logger.With(slog.String("service", "reconciler")),
		repo:         repo,
		sink:         sink,
		coordinators: coordinators,
	}
}

// Reconcile приводит статус заказа к данным шлюза.
// Можно вызывать повторно и конкурентно для одного заказа: Transitioned и побочные
// эффекты достаются только тому, чьё условное обновление прошло.
func (r *reconciler) Reconcile(ctx context.Context, orderID int64, view entities.PaymentView) (entities.Reconciliation, error) {
	ctx, span := telemetry.StartSpan(ctx, "reconcile",
		attribute.Int64("order.id", orderID),
		attribute.String("payment.id", view.ID),
		attribute.String("payment.status", view.Status),
	)
	defer span.End()

	logger := r.logger.With(slog.Int64("order_id", orderID), slog.String("payment_id", view.ID))
	res := entities.Reconciliation{OrderID: orderID}

	order, err := r.repo.FindOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		logger.WarnContext(ctx, "order not found, skipping reconciliation")
		observeOutcome(outcomeOrderNotFound)
		return res, nil
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return res, fmt.Errorf("failed to load order: %w", err)
	}

	target := entities.MapGatewayStatus(view.Status)
	res.PreviousStatus = order.Status
	res.NewStatus = order.Status

	if target == order.Status {
		observeOutcome(outcomeUnchanged)
		return res, nil
	}

	if order.Status != entities.StatusPending {
		logger.InfoContext(ctx, "ignoring transition of settled order",
			slog.String("status", string(order.Status)), slog.String("target", string(target)))
		observeOutcome(outcomeIgnored)
		return res, nil
	}

	// отказ по старой попытке оплаты не должен отменять заказ с новой попыткой
	if target == entities.StatusCanceled && order.PaymentID != "" && order.PaymentID != view.ID {
		logger.InfoContext(ctx, "ignoring cancellation from superseded payment attempt",
			slog.String("current_payment_id", order.PaymentID))
		observeOutcome(outcomeStaleAttempt)
		return res, nil
	}

	updated, err := r.repo.UpdateStatusIf(ctx, order.ID, order.Status, target, view.ID)
	if err != nil {
		telemetry.RecordError(span, err)
		return res, fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		logger.DebugContext(ctx, "order reconciled concurrently")
		observeOutcome(outcomeConflict)
		if current, err := r.repo.FindOrder(ctx, order.ID); err == nil {
			res.NewStatus = current.Status
		}
		return res, nil
	}

	res.NewStatus = target
	res.Transitioned = true
	observeTransition(target)
	logger.InfoContext(ctx, "order status changed",
		slog.String("from", string(order.Status)), slog.String("to", string(target)))

	if target == entities.StatusPaid {
		r.applySideEffects(context.WithoutCancel(ctx), order.ID)
	}

	return res, nil
}

// applySideEffects запускает все координаторы. Ошибка не откатывает уже записанный переход.
func (r *reconciler) applySideEffects(ctx context.Context, orderID int64) {
	for _, c := range r.coordinators {
		if err := r.ApplySideEffect(ctx, orderID, c.Effect()); err != nil {
			r.logger.ErrorContext(ctx, "side effect failed",
				slog.Int64("order_id", orderID),
				slog.String("effect", string(c.Effect())),
				slog.Any("error", err),
			)
			if r.sink == nil {
				continue
			}
			if err := r.sink.PublishFailure(ctx, orderID, c.Effect(), err); err != nil {
				r.logger.ErrorContext(ctx, "failed to enqueue side effect retry",
					slog.Int64("order_id", orderID), slog.Any("error", err))
			}
		}
	}
}

// ApplySideEffect запускает координатор, зарегистрированный для effect.
func (r *reconciler) ApplySideEffect(ctx context.Context, orderID int64, effect entities.SideEffect) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "side_effect."+string(effect), attribute.Int64("order.id", orderID))
	defer span.End()

	for _, c := range r.coordinators {
		if c.Effect() != effect {
			continue
		}
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("side effect %s panicked: %v", effect, p)
			}
			telemetry.RecordError(span, err)
			observeSideEffect(effect, err)
		}()
		return c.Apply(ctx, orderID)
	}
	return fmt.Errorf("unknown side effect %q", effect)
}
