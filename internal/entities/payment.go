package entities

import (
	"errors"
	"time"
)

// PaymentView платёж в том виде, в каком его отдаёт шлюз.
type PaymentView struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	LastUpdated       time.Time
}

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrGatewayRejected     = errors.New("payment gateway rejected request") // 4xx, повтор не поможет
	ErrInvalidNotification = errors.New("invalid payment notification")
)

var gatewayStatuses = map[string]OrderStatus{
	"approved":     StatusPaid,
	"authorized":   StatusPaid,
	"pending":      StatusPending,
	"in_process":   StatusPending,
	"in_mediation": StatusPending,
	"rejected":     StatusCanceled,
	"cancelled":    StatusCanceled,
	"refunded":     StatusCanceled,
	"charged_back": StatusCanceled,
}

// MapGatewayStatus переводит статус платежа шлюза в статус заказа.
// Неизвестные значения дают StatusPending, их нельзя считать оплатой или отменой.
func MapGatewayStatus(status string) OrderStatus {
	if s, ok := gatewayStatuses[status]; ok {
		return s
	}
	return StatusPending
}

// Latest возвращает последний обновлённый платёж.
func Latest(views []PaymentView) (PaymentView, bool) {
	if len(views) == 0 {
		return PaymentView{}, false
	}
	latest := views[0]
	for _, v := range views[1:] {
		if v.LastUpdated.After(latest.LastUpdated) {
			latest = v
		}
	}
	return latest, true
}
