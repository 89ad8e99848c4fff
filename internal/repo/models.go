package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
)

type Order struct {
	ID            int64          `db:"id"`
	UserID        int64          `db:"user_id"`
	Status        string         `db:"status"`
	PaymentID     sql.NullString `db:"payment_id"`
	PaymentMethod string         `db:"payment_method"`
	CouponID      sql.NullInt64  `db:"coupon_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CheckedAt     sql.NullTime   `db:"checked_at"`
}

type Item struct {
	OrderID   int64         `db:"order_id"`
	ProductID int64         `db:"product_id"`
	VariantID sql.NullInt64 `db:"variant_id"`
	Quantity  int           `db:"quantity"`
	UnitPrice int64         `db:"unit_price"`
}

var orderColumns = []string{
	"id", "user_id", "status", "payment_id", "payment_method",
	"coupon_id", "created_at", "updated_at", "checked_at",
}

func OrderToEntity(o Order, items []Item) entities.Order {
	lines := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.LineItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID.Int64,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return entities.Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Status:        entities.OrderStatus(o.Status),
		PaymentID:     o.PaymentID.String,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		CouponID:      o.CouponID.Int64,
		Items:         lines,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		CheckedAt:     o.CheckedAt.Time,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
