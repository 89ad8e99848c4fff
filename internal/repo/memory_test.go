package repo_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_UpdateStatusIf(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()
	r.PutOrder(entities.Order{ID: 1, Status: entities.StatusPending})

	ok, err := r.UpdateStatusIf(ctx, 1, entities.StatusPending, entities.StatusPaid, "pay-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.UpdateStatusIf(ctx, 1, entities.StatusPending, entities.StatusCanceled, "pay-2")
	require.NoError(t, err)
	assert.False(t, ok)

	o, err := r.FindOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaid, o.Status)
	assert.Equal(t, "pay-1", o.PaymentID)
}

func TestMemoryRepo_UpdateStatusIf_SingleWinner(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()
	r.PutOrder(entities.Order{ID: 1, Status: entities.StatusPending})

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			ok, err := r.UpdateStatusIf(ctx, 1, entities.StatusPending, entities.StatusPaid, "pay")
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestMemoryRepo_DecrementStockClamps(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()
	r.SetStock(10, 0, 3)
	r.SetStock(11, 5, 10)

	err := r.DecrementStock(ctx, []entities.LineItem{
		{ProductID: 10, Quantity: 5},
		{ProductID: 11, VariantID: 5, Quantity: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, r.Stock(10, 0))
	assert.Equal(t, 6, r.Stock(11, 5))
}

func TestMemoryRepo_MarkSideEffect(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()

	first, err := r.MarkSideEffect(ctx, 1, entities.SideEffectStock)
	require.NoError(t, err)
	second, err := r.MarkSideEffect(ctx, 1, entities.SideEffectStock)
	require.NoError(t, err)
	other, err := r.MarkSideEffect(ctx, 1, entities.SideEffectCoupon)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.True(t, other)
}

func TestMemoryRepo_StalePendingOrders(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	r := repo.NewMemoryRepo()
	r.PutOrder(entities.Order{ID: 1, Status: entities.StatusPending, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)})
	r.PutOrder(entities.Order{ID: 2, Status: entities.StatusPending, CreatedAt: now, UpdatedAt: now})
	r.PutOrder(entities.Order{ID: 3, Status: entities.StatusPaid, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)})
	r.PutOrder(entities.Order{ID: 4, Status: entities.StatusPending, CreatedAt: now.Add(-30 * 24 * time.Hour), UpdatedAt: now.Add(-30 * 24 * time.Hour)})

	orders, err := r.StalePendingOrders(ctx, now.Add(-10*time.Minute), now.Add(-72*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
}

func TestMemoryRepo_IncrementCouponUsage(t *testing.T) {
	ctx := context.Background()
	r := repo.NewMemoryRepo()
	r.AddCoupon(7)

	require.NoError(t, r.IncrementCouponUsage(ctx, 7))
	assert.Equal(t, 1, r.CouponUsage(7))
	assert.ErrorIs(t, r.IncrementCouponUsage(ctx, 8), entities.ErrCouponNotFound)
}

func TestMemoryRepo_StalePendingOrdersSkipsChecked(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	r := repo.NewMemoryRepo()
	r.PutOrder(entities.Order{ID: 1, Status: entities.StatusPending, CreatedAt: now.Add(-5 * time.Hour), UpdatedAt: now.Add(-5 * time.Hour)})
	r.PutOrder(entities.Order{ID: 2, Status: entities.StatusPending, CreatedAt: now.Add(-4 * time.Hour), UpdatedAt: now.Add(-4 * time.Hour)})
	r.PutOrder(entities.Order{ID: 3, Status: entities.StatusPending, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)})

	require.NoError(t, r.MarkChecked(ctx, []int64{1, 2}, now.Add(-time.Minute)))

	orders, err := r.StalePendingOrders(ctx, now.Add(-10*time.Minute), now.Add(-72*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(3), orders[0].ID)

	// проверенные давно снова в очереди, но после непроверенных
	require.NoError(t, r.MarkChecked(ctx, []int64{1, 2}, now.Add(-30*time.Minute)))
	orders, err = r.StalePendingOrders(ctx, now.Add(-10*time.Minute), now.Add(-72*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestMemoryRepo_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("rollback on error", func(t *testing.T) {
		r := repo.NewMemoryRepo()
		r.SetStock(1, 0, 5)
		r.PutOrder(entities.Order{ID: 1, Status: entities.StatusPaid})
		txErr := errors.New("boom")

		err := r.Do(ctx, func(ctx context.Context) error {
			fresh, err := r.MarkSideEffect(ctx, 1, entities.SideEffectStock)
			require.NoError(t, err)
			require.True(t, fresh)
			require.NoError(t, r.DecrementStock(ctx, []entities.LineItem{{ProductID: 1, Quantity: 2}}))
			return txErr
		})
		require.ErrorIs(t, err, txErr)
		assert.Equal(t, 5, r.Stock(1, 0))

		fresh, err := r.MarkSideEffect(ctx, 1, entities.SideEffectStock)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("commit keeps changes", func(t *testing.T) {
		r := repo.NewMemoryRepo()
		r.SetStock(1, 0, 5)

		err := r.Do(ctx, func(ctx context.Context) error {
			return r.Do(ctx, func(ctx context.Context) error {
				return r.DecrementStock(ctx, []entities.LineItem{{ProductID: 1, Quantity: 2}})
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 3, r.Stock(1, 0))
	})
}
