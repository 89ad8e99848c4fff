package entities

import "time"

// Reconciliation результат сверки заказа с платежом.
type Reconciliation struct {
	OrderID        int64
	PreviousStatus OrderStatus
	NewStatus      OrderStatus
	Transitioned   bool
}

// PaymentReport ответ на опрос статуса.
// Warning заполнен, когда шлюз не подтвердил платёж и отдано локальное состояние.
type PaymentReport struct {
	OrderID       int64
	PaymentID     string
	PaymentStatus string
	OrderStatus   OrderStatus
	LastUpdate    time.Time
	Warning       string
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Principal аутентифицированный вызывающий.
type Principal struct {
	UserID int64
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) CanRead(o Order) bool {
	return p.IsAdmin() || (p.UserID != 0 && p.UserID == o.UserID)
}
