package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) FindOrder(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "variant_id", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// UpdateStatusIf меняет статус и id платежа, только если текущий статус равен expected.
// false означает, что заказ уже изменил кто-то другой.
func (r *postgresRepo) UpdateStatusIf(ctx context.Context, id int64, expected, next entities.OrderStatus, paymentID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(next)).
		Set("payment_id", sq.Expr("COALESCE(?, payment_id)", nullString(paymentID))).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(expected)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// StalePendingOrders возвращает PENDING заказы, не менявшиеся и не проверявшиеся с staleBefore,
// созданные после notBefore. Сначала никогда не проверенные, затем давно не проверенные.
// Позиции заказа не загружаются.
func (r *postgresRepo) StalePendingOrders(ctx context.Context, staleBefore, notBefore time.Time, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(entities.StatusPending)}).
		Where(sq.Lt{"updated_at": staleBefore}).
		Where(sq.Or{sq.Eq{"checked_at": nil}, sq.Lt{"checked_at": staleBefore}}).
		Where(sq.Gt{"created_at": notBefore}).
		OrderBy("COALESCE(checked_at, updated_at) ASC", "id ASC").
		Limit(uint64(limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select stale orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, nil))
	}
	return result, nil
}

// MarkChecked отмечает время проверки заказов фоновой сверкой.
func (r *postgresRepo) MarkChecked(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query, args := r.qb.Update("orders").
		Set("checked_at", at).
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark orders checked: %w", err)
	}
	return nil
}

// MarkSideEffect записывает применение эффекта к заказу.
// false, если эффект уже был записан.
func (r *postgresRepo) MarkSideEffect(ctx context.Context, orderID int64, effect entities.SideEffect) (bool, error) {
	query, args := r.qb.Insert("order_side_effects").
		Columns("order_id", "kind").
		Values(orderID, string(effect)).
		Suffix("ON CONFLICT (order_id, kind) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark side effect: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// DecrementStock уменьшает остаток товара или варианта на заказанное количество, не ниже нуля.
func (r *postgresRepo) DecrementStock(ctx context.Context, items []entities.LineItem) error {
	for _, it := range items {
		table, id := "products", it.ProductID
		if it.VariantID != 0 {
			table, id = "product_variants", it.VariantID
		}

		query, args := r.qb.Update(table).
			Set("stock", sq.Expr("GREATEST(stock - ?, 0)", it.Quantity)).
			Where(sq.Eq{"id": id}).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to decrement %s stock for %d: %w", table, id, err)
		}
	}
	return nil
}

func (r *postgresRepo) IncrementCouponUsage(ctx context.Context, couponID int64) error {
	query, args := r.qb.Update("coupons").
		Set("used_count", sq.Expr("used_count + 1")).
		Where(sq.Eq{"id": couponID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment coupon usage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrCouponNotFound
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
