package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/telemetry"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/utils"

	"go.opentelemetry.io/otel/attribute"
)

const (
	WarningNoPayment   = "no payment found yet"
	WarningUnconfirmed = "could not confirm payment, try again"
)

type Gateway interface {
	GetPayment(ctx context.Context, id string) (entities.PaymentView, error)
	FindPaymentsByExternalReference(ctx context.Context, orderID int64) ([]entities.PaymentView, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, orderID int64, view entities.PaymentView) (entities.Reconciliation, error)
}

type OrderFinder interface {
	FindOrder(ctx context.Context, id int64) (entities.Order, error)
}

// PaymentService сводит вебхук, опрос статуса и фоновую сверку к одному Reconciler.
type PaymentService struct {
	logger     *slog.Logger
	gateway    Gateway
	orders     OrderFinder
	reconciler Reconciler
	retry      utils.RetryConfig
}

func NewPaymentService(logger *slog.Logger, gateway Gateway, orders OrderFinder, reconciler Reconciler) *PaymentService {
	return &PaymentService{
		logger:     logger.With(slog.String("service", "payment")),
		gateway:    gateway,
		orders:     orders,
		reconciler: reconciler,
		retry: utils.RetryConfig{
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			MaxAttempts:  3,
			Multiplier:   2,
		},
	}
}

// WithRetry заменяет настройки повторов.
func (s *PaymentService) WithRetry(cfg utils.RetryConfig) *PaymentService {
	s.retry = cfg
	return s
}

// HandleNotification сверяет заказ из проверенного вебхука.
// Неизвестный платёж или платёж без ссылки на заказ ничего не меняют.
func (s *PaymentService) HandleNotification(ctx context.Context, paymentID string) (entities.Reconciliation, error) {
	logger := s.logger.With(slog.String("payment_id", paymentID))

	var view entities.PaymentView
	err := utils.RetryIf(ctx, s.retry, func(ctx context.Context) error {
		var err error
		view, err = s.getPayment(ctx, paymentID)
		return err
	}, isTransient)
	if err != nil {
		return entities.Reconciliation{}, fmt.Errorf("failed to fetch payment: %w", err)
	}

	orderID, err := strconv.ParseInt(view.ExternalReference, 10, 64)
	if err != nil || orderID <= 0 {
		logger.WarnContext(ctx, "payment has no order reference", slog.String("external_reference", view.ExternalReference))
		return entities.Reconciliation{}, nil
	}

	return s.reconcile(ctx, orderID, view)
}

// PollStatus сверяет заказ по запросу владельца или админа и возвращает состояние оплаты.
// Если шлюз недоступен, отдаётся локальное состояние с предупреждением.
func (s *PaymentService) PollStatus(ctx context.Context, caller entities.Principal, orderID int64) (entities.PaymentReport, error) {
	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentReport{}, err
	}
	if !caller.CanRead(order) {
		return entities.PaymentReport{}, entities.ErrForbidden
	}

	local := entities.PaymentReport{
		OrderID:     order.ID,
		PaymentID:   order.PaymentID,
		OrderStatus: order.Status,
		LastUpdate:  order.UpdatedAt,
	}
	logger := s.logger.With(slog.Int64("order_id", order.ID))

	view, err := s.lookup(ctx, order)
	if errors.Is(err, entities.ErrPaymentNotFound) {
		pollFallbacksTotal.WithLabelValues("no_payment").Inc()
		local.Warning = WarningNoPayment
		return local, nil
	}
	if err != nil {
		logger.WarnContext(ctx, "gateway lookup failed, reporting local status", slog.Any("error", err))
		pollFallbacksTotal.WithLabelValues("gateway").Inc()
		local.Warning = WarningUnconfirmed
		return local, nil
	}

	res, err := s.reconciler.Reconcile(ctx, order.ID, view)
	if err != nil {
		logger.ErrorContext(ctx, "failed to reconcile polled order", slog.Any("error", err))
		pollFallbacksTotal.WithLabelValues("reconcile").Inc()
		local.Warning = WarningUnconfirmed
		return local, nil
	}

	status := res.NewStatus
	if status == "" {
		status = order.Status
	}
	return entities.PaymentReport{
		OrderID:       order.ID,
		PaymentID:     view.ID,
		PaymentStatus: view.Status,
		OrderStatus:   status,
		LastUpdate:    view.LastUpdated,
	}, nil
}

// ResyncOrder сверяет один заказ по id. ErrPaymentNotFound значит, что платежа в шлюзе ещё нет.
func (s *PaymentService) ResyncOrder(ctx context.Context, orderID int64) (entities.Reconciliation, error) {
	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		return entities.Reconciliation{}, err
	}
	return s.ReconcileOrder(ctx, order)
}

// ReconcileOrder находит платёж заказа и сверяет его. Из order нужны только ID и PaymentID.
func (s *PaymentService) ReconcileOrder(ctx context.Context, order entities.Order) (entities.Reconciliation, error) {
	view, err := s.lookup(ctx, order)
	if err != nil {
		return entities.Reconciliation{OrderID: order.ID, PreviousStatus: order.Status, NewStatus: order.Status}, err
	}
	return s.reconcile(ctx, order.ID, view)
}

func (s *PaymentService) reconcile(ctx context.Context, orderID int64, view entities.PaymentView) (entities.Reconciliation, error) {
	var res entities.Reconciliation
	// повтор всегда начинается с чтения заказа заново
	err := utils.Retry(ctx, s.retry, func(ctx context.Context) error {
		var err error
		res, err = s.reconciler.Reconcile(ctx, orderID, view)
		return err
	})
	return res, err
}

// lookup берёт известный id платежа, иначе ищет по external reference.
func (s *PaymentService) lookup(ctx context.Context, order entities.Order) (entities.PaymentView, error) {
	if order.PaymentID != "" {
		return s.getPayment(ctx, order.PaymentID)
	}

	ctx, span := telemetry.StartSpan(ctx, "gateway.search_payments", attribute.Int64("order.id", order.ID))
	defer span.End()

	views, err := s.gateway.FindPaymentsByExternalReference(ctx, order.ID)
	if err != nil {
		telemetry.RecordError(span, err)
		return entities.PaymentView{}, err
	}
	view, ok := entities.Latest(views)
	if !ok {
		return entities.PaymentView{}, entities.ErrPaymentNotFound
	}
	return view, nil
}

func (s *PaymentService) getPayment(ctx context.Context, id string) (entities.PaymentView, error) {
	ctx, span := telemetry.StartSpan(ctx, "gateway.get_payment", attribute.String("payment.id", id))
	defer span.End()

	view, err := s.gateway.GetPayment(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
	}
	return view, err
}

// isTransient: имеет ли смысл повторить вызов шлюза.
func isTransient(err error) bool {
	return errors.Is(err, entities.ErrGatewayUnavailable)
}
