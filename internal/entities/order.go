package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusCanceled  OrderStatus = "CANCELED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodPix        PaymentMethod = "PIX"
	MethodBoleto     PaymentMethod = "BOLETO"
)

type LineItem struct {
	ProductID int64
	// 0 когда позиция без варианта
	VariantID int64
	Quantity  int
	UnitPrice int64
}

type Order struct {
	ID            int64
	UserID        int64
	Status        OrderStatus
	PaymentID     string
	PaymentMethod PaymentMethod
	CouponID      int64
	Items         []LineItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
	// время последней проверки фоновой сверкой, нулевое если не проверялся
	CheckedAt time.Time
}

func (o Order) HasCoupon() bool {
	return o.CouponID != 0
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrForbidden     = errors.New("order belongs to another user")
)

// SideEffect изменение, применяемое к заказу один раз после оплаты.
type SideEffect string

const (
	SideEffectStock  SideEffect = "stock"
	SideEffectCoupon SideEffect = "coupon"
)

var ErrCouponNotFound = errors.New("coupon not found")
