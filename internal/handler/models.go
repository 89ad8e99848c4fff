package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
)

// Notification уведомление платёжного шлюза
type Notification struct {
	Type   string           `json:"type"`
	Action string           `json:"action,omitempty"`
	Data   NotificationData `json:"data"`
}

// NotificationData ссылка на платёж
type NotificationData struct {
	ID paymentRef `json:"id" swaggertype:"string"`
}

// paymentRef принимает и "123", и 123.
type paymentRef string

func (p *paymentRef) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = paymentRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = paymentRef(n.String())
	return nil
}

const (
	webhookProcessed = "processed"
	webhookIgnored   = "ignored"
	webhookAccepted  = "accepted"
)

// WebhookResponse результат обработки уведомления
type WebhookResponse struct {
	Status string `json:"status" example:"processed"`
}

// PaymentStatus состояние оплаты заказа
type PaymentStatus struct {
	OrderID       int64      `json:"order_id" example:"42"`
	PaymentID     string     `json:"payment_id,omitempty" example:"1319941337"`
	PaymentStatus string     `json:"payment_status,omitempty" example:"approved"`
	OrderStatus   string     `json:"order_status" example:"PAID"`
	LastUpdate    *time.Time `json:"last_update,omitempty"`
	Warning       string     `json:"warning,omitempty"`
}

func PaymentReportToJSON(r entities.PaymentReport) PaymentStatus {
	res := PaymentStatus{
		OrderID:       r.OrderID,
		PaymentID:     r.PaymentID,
		PaymentStatus: r.PaymentStatus,
		OrderStatus:   string(r.OrderStatus),
		Warning:       r.Warning,
	}
	if !r.LastUpdate.IsZero() {
		t := r.LastUpdate.UTC()
		res.LastUpdate = &t
	}
	return res
}

// ReconcileResult итог ручной сверки заказа
type ReconcileResult struct {
	OrderID        int64  `json:"order_id" example:"42"`
	PreviousStatus string `json:"previous_status,omitempty" example:"PENDING"`
	NewStatus      string `json:"new_status,omitempty" example:"PAID"`
	Transitioned   bool   `json:"transitioned"`
	Warning        string `json:"warning,omitempty"`
}

func ReconciliationToJSON(r entities.Reconciliation) ReconcileResult {
	return ReconcileResult{
		OrderID:        r.OrderID,
		PreviousStatus: string(r.PreviousStatus),
		NewStatus:      string(r.NewStatus),
		Transitioned:   r.Transitioned,
	}
}

// BatchResponse состояние внеочередного запуска сверки
type BatchResponse struct {
	Status string `json:"status" example:"scheduled"`
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func parseOrderID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
