package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/trm"
)

type SideEffectRepo interface {
	FindOrder(ctx context.Context, id int64) (entities.Order, error)
	// MarkSideEffect возвращает false, если эффект уже был применён к заказу
	MarkSideEffect(ctx context.Context, orderID int64, effect entities.SideEffect) (bool, error)
	DecrementStock(ctx context.Context, items []entities.LineItem) error
	IncrementCouponUsage(ctx context.Context, couponID int64) error
}

// StockCoordinator списывает остатки по всем позициям оплаченного заказа.
// Вызывается только после перехода в PAID. Запись в журнале в той же транзакции
// делает повторный вызов пустым.
type StockCoordinator struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      SideEffectRepo
}

func NewStockCoordinator(logger *slog.Logger, txManager trm.Manager, repo SideEffectRepo) *StockCoordinator {
	return &StockCoordinator{
		logger:    logger.With(slog.String("service", "stock")),
		txManager: txManager,
		repo:      repo,
	}
}

func (c *StockCoordinator) Effect() entities.SideEffect { return entities.SideEffectStock }

func (c *StockCoordinator) Apply(ctx context.Context, orderID int64) error {
	return c.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := c.repo.FindOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("failed to load order: %w", err)
		}

		fresh, err := c.repo.MarkSideEffect(ctx, orderID, entities.SideEffectStock)
		if err != nil {
			return err
		}
		if !fresh {
			c.logger.WarnContext(ctx, "stock already decremented", slog.Int64("order_id", orderID))
			return nil
		}

		if err := c.repo.DecrementStock(ctx, order.Items); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		c.logger.DebugContext(ctx, "stock decremented", slog.Int64("order_id", orderID), slog.Int("items", len(order.Items)))
		return nil
	})
}

// CouponCoordinator засчитывает использование купона оплаченного заказа.
type CouponCoordinator struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      SideEffectRepo
}

func NewCouponCoordinator(logger *slog.Logger, txManager trm.Manager, repo SideEffectRepo) *CouponCoordinator {
	return &CouponCoordinator{
		logger:    logger.With(slog.String("service", "coupon")),
		txManager: txManager,
		repo:      repo,
	}
}

func (c *CouponCoordinator) Effect() entities.SideEffect { return entities.SideEffectCoupon }

func (c *CouponCoordinator) Apply(ctx context.Context, orderID int64) error {
	return c.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := c.repo.FindOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("failed to load order: %w", err)
		}
		if !order.HasCoupon() {
			return nil
		}

		fresh, err := c.repo.MarkSideEffect(ctx, orderID, entities.SideEffectCoupon)
		if err != nil {
			return err
		}
		if !fresh {
			c.logger.WarnContext(ctx, "coupon already redeemed", slog.Int64("order_id", orderID))
			return nil
		}

		if err := c.repo.IncrementCouponUsage(ctx, order.CouponID); err != nil {
			return fmt.Errorf("failed to redeem coupon %d: %w", order.CouponID, err)
		}
		return nil
	})
}
