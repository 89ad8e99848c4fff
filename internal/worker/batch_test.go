package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/repo"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/service"
	svcMocks "github.com/SergeyBogomolovv/payment-reconciler/internal/service/mocks"
	mocks "github.com/SergeyBogomolovv/payment-reconciler/internal/worker/mocks"
	txMocks "github.com/SergeyBogomolovv/payment-reconciler/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var batchNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

var batchCfg = config.Batch{
	Interval:    time.Hour,
	StaleAfter:  10 * time.Minute,
	MaxAge:      72 * time.Hour,
	Limit:       100,
	Concurrency: 4,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBatch(orders StaleOrderLister, svc OrderReconciler) *BatchReconciler {
	b := NewBatchReconciler(discardLogger(), orders, svc, batchCfg)
	b.now = func() time.Time { return batchNow }
	return b
}

func pendingOrder(id int64, created, updated time.Duration) entities.Order {
	return entities.Order{
		ID:        id,
		UserID:    7,
		Status:    entities.StatusPending,
		CreatedAt: batchNow.Add(-created),
		UpdatedAt: batchNow.Add(-updated),
		Items:     []entities.LineItem{{ProductID: 1, Quantity: 2}},
	}
}

func TestBatchReconciler_CancelsRejectedOrder(t *testing.T) {
	store := repo.NewMemoryRepo()
	store.SetStock(1, 0, 5)
	store.PutOrder(pendingOrder(42, time.Hour, 30*time.Minute))

	gateway := svcMocks.NewMockGateway(t)
	gateway.EXPECT().FindPaymentsByExternalReference(mock.Anything, int64(42)).
		Return([]entities.PaymentView{{ID: "p1", Status: "rejected", ExternalReference: "42"}}, nil).Once()

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error { return cb(ctx) }).Maybe()

	logger := discardLogger()
	engine := service.NewReconciler(logger, store, nil,
		service.NewStockCoordinator(logger, tx, store),
		service.NewCouponCoordinator(logger, tx, store),
	)
	svc := service.NewPaymentService(logger, gateway, store, engine)

	stats, err := newBatch(store, svc).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1, Transitioned: 1}, stats)

	order, err := store.FindOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCanceled, order.Status)
	assert.Equal(t, 5, store.Stock(1, 0))
}

func TestBatchReconciler_UnpaidOrdersDoNotStarveNewerOnes(t *testing.T) {
	store := repo.NewMemoryRepo()
	store.SetStock(1, 0, 5)
	store.PutOrder(pendingOrder(1, 3*time.Hour, 3*time.Hour))
	store.PutOrder(pendingOrder(2, 2*time.Hour, 2*time.Hour))
	store.PutOrder(pendingOrder(3, time.Hour, time.Hour))

	gateway := svcMocks.NewMockGateway(t)
	gateway.EXPECT().FindPaymentsByExternalReference(mock.Anything, int64(1)).Return(nil, nil).Once()
	gateway.EXPECT().FindPaymentsByExternalReference(mock.Anything, int64(2)).Return(nil, nil).Once()
	gateway.EXPECT().FindPaymentsByExternalReference(mock.Anything, int64(3)).
		Return([]entities.PaymentView{{ID: "p3", Status: "rejected", ExternalReference: "3"}}, nil).Once()

	logger := discardLogger()
	svc := service.NewPaymentService(logger, gateway, store, service.NewReconciler(logger, store, nil))

	cfg := batchCfg
	cfg.Limit = 2
	b := NewBatchReconciler(logger, store, svc, cfg)
	b.now = func() time.Time { return batchNow }

	stats, err := b.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 2, NoPayment: 2}, stats)

	stats, err = b.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1, Transitioned: 1}, stats)

	order, err := store.FindOrder(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCanceled, order.Status)

	// все проверены только что, до следующего окна запуск пуст
	stats, err = b.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{}, stats)

	// через StaleAfter неоплаченные снова проверяются
	b.now = func() time.Time { return batchNow.Add(cfg.StaleAfter + time.Minute) }
	gateway.EXPECT().FindPaymentsByExternalReference(mock.Anything, mock.Anything).Return(nil, nil).Twice()
	stats, err = b.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 2, NoPayment: 2}, stats)
}

func TestBatchReconciler_SelectsStaleOrders(t *testing.T) {
	store := repo.NewMemoryRepo()
	store.PutOrder(pendingOrder(1, time.Hour, 30*time.Minute))
	store.PutOrder(pendingOrder(2, time.Hour, time.Minute))
	store.PutOrder(pendingOrder(3, 100*time.Hour, 99*time.Hour))
	paid := pendingOrder(4, time.Hour, time.Hour)
	paid.Status = entities.StatusPaid
	store.PutOrder(paid)

	svc := mocks.NewMockOrderReconciler(t)
	svc.EXPECT().ReconcileOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool { return o.ID == 1 })).
		Return(entities.Reconciliation{OrderID: 1}, nil).Once()

	stats, err := newBatch(store, svc).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1}, stats)
}

func TestBatchReconciler_CountsFailures(t *testing.T) {
	store := repo.NewMemoryRepo()
	for id := int64(1); id <= 4; id++ {
		store.PutOrder(pendingOrder(id, time.Hour, time.Duration(id)*20*time.Minute))
	}

	svc := mocks.NewMockOrderReconciler(t)
	svc.EXPECT().ReconcileOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Reconciliation, error) {
			switch o.ID {
			case 1:
				return entities.Reconciliation{OrderID: 1, Transitioned: true}, nil
			case 2:
				return entities.Reconciliation{OrderID: 2}, entities.ErrPaymentNotFound
			case 3:
				return entities.Reconciliation{OrderID: 3}, entities.ErrGatewayUnavailable
			default:
				return entities.Reconciliation{OrderID: o.ID}, nil
			}
		}).Times(4)

	stats, err := newBatch(store, svc).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 4, Transitioned: 1, NoPayment: 1, Failed: 1}, stats)
}

type failingLister struct{ err error }

func (l failingLister) StalePendingOrders(context.Context, time.Time, time.Time, int) ([]entities.Order, error) {
	return nil, l.err
}

func (l failingLister) MarkChecked(context.Context, []int64, time.Time) error {
	return l.err
}

func TestBatchReconciler_ListFailure(t *testing.T) {
	listErr := errors.New("db down")
	_, err := newBatch(failingLister{err: listErr}, mocks.NewMockOrderReconciler(t)).RunOnce(context.Background())
	assert.ErrorIs(t, err, listErr)
}

func TestBatchReconciler_Trigger(t *testing.T) {
	store := repo.NewMemoryRepo()
	store.PutOrder(pendingOrder(1, time.Hour, 30*time.Minute))

	done := make(chan struct{})
	svc := mocks.NewMockOrderReconciler(t)
	svc.EXPECT().ReconcileOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entities.Order) (entities.Reconciliation, error) {
			close(done)
			return entities.Reconciliation{OrderID: 1}, nil
		}).Once()

	b := newBatch(store, svc)
	assert.True(t, b.Trigger())
	assert.False(t, b.Trigger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, b.Start(ctx))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("triggered run did not happen")
	}
}
