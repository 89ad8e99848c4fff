package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

type StaleOrderLister interface {
	StalePendingOrders(ctx context.Context, staleBefore, notBefore time.Time, limit int) ([]entities.Order, error)
	// MarkChecked отодвигает заказы в конец очереди, чтобы следующий запуск взял другие
	MarkChecked(ctx context.Context, ids []int64, at time.Time) error
}

type OrderReconciler interface {
	ReconcileOrder(ctx context.Context, order entities.Order) (entities.Reconciliation, error)
}

// RunStats итоги одного запуска.
type RunStats struct {
	Scanned      int
	Transitioned int
	NoPayment    int
	Failed       int
}

// BatchReconciler периодически сверяет PENDING заказы, которые не закрыл ни вебхук, ни опрос.
type BatchReconciler struct {
	logger  *slog.Logger
	orders  StaleOrderLister
	svc     OrderReconciler
	cfg     config.Batch
	trigger chan struct{}
	now     func() time.Time
}

func NewBatchReconciler(logger *slog.Logger, orders StaleOrderLister, svc OrderReconciler, cfg config.Batch) *BatchReconciler {
	return &BatchReconciler{
		logger:  logger.With(slog.String("worker", "batch")),
		orders:  orders,
		svc:     svc,
		cfg:     cfg,
		trigger: make(chan struct{}, 1),
		now:     time.Now,
	}
}

// Start запускает планировщик до отмены ctx.
func (b *BatchReconciler) Start(ctx context.Context) error {
	go b.loop(ctx)
	return nil
}

// Trigger ставит внеочередной запуск. false, если он уже запланирован.
func (b *BatchReconciler) Trigger() bool {
	select {
	case b.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

func (b *BatchReconciler) loop(ctx context.Context) {
	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-b.trigger:
		}
		if _, err := b.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			b.logger.ErrorContext(ctx, "batch run failed", slog.Any("error", err))
		}
	}
}

// RunOnce сверяет одну страницу зависших заказов, начиная с давно не проверенных.
// Ошибки по отдельным заказам считаются, но не возвращаются.
func (b *BatchReconciler) RunOnce(ctx context.Context) (RunStats, error) {
	ctx, span := telemetry.StartSpan(ctx, "batch.run")
	defer span.End()

	start := time.Now()
	now := b.now()
	orders, err := b.orders.StalePendingOrders(ctx, now.Add(-b.cfg.StaleAfter), now.Add(-b.cfg.MaxAge), b.cfg.Limit)
	if err != nil {
		telemetry.RecordError(span, err)
		batchRunsTotal.WithLabelValues("error").Inc()
		return RunStats{}, err
	}

	var transitioned, noPayment, failed atomic.Int64
	var (
		mu      sync.Mutex
		checked = make([]int64, 0, len(orders))
	)

	g := new(errgroup.Group)
	g.SetLimit(b.cfg.Concurrency)
	for _, order := range orders {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := b.svc.ReconcileOrder(ctx, order)
			if ctx.Err() == nil {
				mu.Lock()
				checked = append(checked, order.ID)
				mu.Unlock()
			}
			switch {
			case errors.Is(err, entities.ErrPaymentNotFound):
				noPayment.Add(1)
			case err != nil:
				failed.Add(1)
				b.logger.WarnContext(ctx, "failed to reconcile order",
					slog.Int64("order_id", order.ID), slog.Any("error", err))
			case res.Transitioned:
				transitioned.Add(1)
			}
			return nil
		})
	}
	g.Wait()

	if err := b.orders.MarkChecked(context.WithoutCancel(ctx), checked, now); err != nil {
		// не критично: заказы просто попадут в следующий запуск раньше других
		b.logger.WarnContext(ctx, "failed to mark orders checked", slog.Any("error", err))
	}

	stats := RunStats{
		Scanned:      len(orders),
		Transitioned: int(transitioned.Load()),
		NoPayment:    int(noPayment.Load()),
		Failed:       int(failed.Load()),
	}
	span.SetAttributes(
		attribute.Int("batch.scanned", stats.Scanned),
		attribute.Int("batch.transitioned", stats.Transitioned),
		attribute.Int("batch.failed", stats.Failed),
	)
	batchRunsTotal.WithLabelValues("ok").Inc()
	batchOrdersTotal.WithLabelValues("transitioned").Add(float64(stats.Transitioned))
	batchOrdersTotal.WithLabelValues("no_payment").Add(float64(stats.NoPayment))
	batchOrdersTotal.WithLabelValues("failed").Add(float64(stats.Failed))
	batchRunDuration.Observe(time.Since(start).Seconds())

	if stats.Scanned > 0 {
		b.logger.InfoContext(ctx, "batch run finished",
			slog.Int("scanned", stats.Scanned),
			slog.Int("transitioned", stats.Transitioned),
			slog.Int("no_payment", stats.NoPayment),
			slog.Int("failed", stats.Failed),
		)
	}
	return stats, ctx.Err()
}
