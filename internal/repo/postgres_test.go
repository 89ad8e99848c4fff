//go:build integration

package repo_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/postgres"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/repo"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testpostgres.Run(ctx,
		"postgres:16-alpine",
		testpostgres.WithDatabase("shop"),
		testpostgres.WithUsername("test"),
		testpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").WithOccurrence(2)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Connect(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(db, migrationsPath(t)))
	return db
}

func migrationsPath(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations")
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, parent, dir, "go.mod not found")
		dir = parent
	}
}

func seed(t *testing.T, db *sqlx.DB) {
	t.Helper()
	db.MustExec(`INSERT INTO products (id, name, stock) VALUES (1, 'shirt', 5), (2, 'mug', 1)`)
	db.MustExec(`INSERT INTO product_variants (id, product_id, name, stock) VALUES (10, 1, 'shirt-xl', 2)`)
	db.MustExec(`INSERT INTO coupons (id, code) VALUES (3, 'WELCOME')`)
	db.MustExec(`INSERT INTO orders (id, user_id, status, payment_method, coupon_id) VALUES (42, 7, 'PENDING', 'PIX', 3)`)
	db.MustExec(`INSERT INTO order_items (order_id, product_id, variant_id, quantity, unit_price) VALUES
		(42, 1, 10, 1, 5000), (42, 2, NULL, 3, 1500)`)
}

func TestPostgresRepo_FindOrder(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	o, err := r.FindOrder(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, o.Status)
	assert.Equal(t, entities.MethodPix, o.PaymentMethod)
	assert.Equal(t, int64(3), o.CouponID)
	assert.Empty(t, o.PaymentID)
	require.Len(t, o.Items, 2)
	assert.Equal(t, int64(10), o.Items[0].VariantID)
	assert.Equal(t, int64(0), o.Items[1].VariantID)

	_, err = r.FindOrder(ctx, 404)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestPostgresRepo_UpdateStatusIf(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			ok, err := r.UpdateStatusIf(ctx, 42, entities.StatusPending, entities.StatusPaid, "pay-1")
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		})
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())

	o, err := r.FindOrder(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaid, o.Status)
	assert.Equal(t, "pay-1", o.PaymentID)
}

func TestPostgresRepo_SideEffects(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)
	ctx := context.Background()

	o, err := r.FindOrder(ctx, 42)
	require.NoError(t, err)

	apply := func() {
		err := tx.Do(ctx, func(ctx context.Context) error {
			ok, err := r.MarkSideEffect(ctx, o.ID, entities.SideEffectStock)
			if err != nil || !ok {
				return err
			}
			return r.DecrementStock(ctx, o.Items)
		})
		require.NoError(t, err)
	}
	apply()
	apply()

	var variantStock, mugStock int
	require.NoError(t, db.Get(&variantStock, `SELECT stock FROM product_variants WHERE id = 10`))
	require.NoError(t, db.Get(&mugStock, `SELECT stock FROM products WHERE id = 2`))
	assert.Equal(t, 1, variantStock)
	assert.Equal(t, 0, mugStock)

	require.NoError(t, r.IncrementCouponUsage(ctx, 3))
	assert.ErrorIs(t, r.IncrementCouponUsage(ctx, 99), entities.ErrCouponNotFound)
}

func TestPostgresRepo_StalePendingOrders(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	db.MustExec(`UPDATE orders SET updated_at = now() - interval '1 hour', created_at = now() - interval '1 hour' WHERE id = 42`)
	db.MustExec(`INSERT INTO orders (id, user_id, status, payment_method) VALUES (43, 7, 'PENDING', 'BOLETO')`)
	r := repo.NewPostgresRepo(db)

	now := time.Now()
	orders, err := r.StalePendingOrders(context.Background(), now.Add(-10*time.Minute), now.Add(-72*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(42), orders[0].ID)
}

func TestPostgresRepo_MarkChecked(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	db.MustExec(`UPDATE orders SET updated_at = now() - interval '3 hour', created_at = now() - interval '3 hour' WHERE id = 42`)
	db.MustExec(`INSERT INTO orders (id, user_id, status, payment_method, created_at, updated_at)
		VALUES (43, 7, 'PENDING', 'BOLETO', now() - interval '1 hour', now() - interval '1 hour')`)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()
	now := time.Now()
	staleBefore, notBefore := now.Add(-10*time.Minute), now.Add(-72*time.Hour)

	orders, err := r.StalePendingOrders(ctx, staleBefore, notBefore, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(42), orders[0].ID)

	require.NoError(t, r.MarkChecked(ctx, []int64{42}, now))

	orders, err = r.StalePendingOrders(ctx, staleBefore, notBefore, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(43), orders[0].ID)

	require.NoError(t, r.MarkChecked(ctx, nil, now))
}
