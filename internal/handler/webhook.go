package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/signature"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type NotificationProcessor interface {
	HandleNotification(ctx context.Context, paymentID string) (entities.Reconciliation, error)
}

type SignatureVerifier interface {
	Verify(h signature.Headers, paymentID string) bool
}

type DeliveryCache interface {
	Get(key string) (struct{}, bool)
	Set(key string, value struct{})
}

type WebhookHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	verifier SignatureVerifier
	svc      NotificationProcessor
	seen     DeliveryCache
	timeout  time.Duration
}

func NewWebhookHandler(logger *slog.Logger, verifier SignatureVerifier, svc NotificationProcessor, seen DeliveryCache, timeout time.Duration) *WebhookHandler {
	return &WebhookHandler{
		logger:   logger.With(slog.String("handler", "webhook")),
		validate: validator.New(),
		verifier: verifier,
		svc:      svc,
		seen:     seen,
		timeout:  timeout,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/payments", h.Notify)
}

// Notify принимает уведомление шлюза об изменении платежа.
// @Summary      Уведомление о платеже
// @Description  Проверяет подпись, сверяет заказ со шлюзом. Всегда отвечает 200, кроме неверной подписи.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature   header  string        true   "ts=<unix>,v1=<hex hmac>"
// @Param        x-request-id  header  string        true   "Идентификатор доставки"
// @Param        data.id       query   string        false  "Идентификатор платежа, если его нет в теле"
// @Param        notification  body    Notification  true   "Уведомление"
// @Success      200  {object}  WebhookResponse
// @Failure      401  {object}  utils.ErrorResponse "Неверная подпись"
// @Router       /webhooks/payments [post]
func (h *WebhookHandler) Notify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := utils.ReadBody(w, r)
	if err != nil {
		h.reject(w, "unreadable body")
		return
	}

	var n Notification
	if len(body) > 0 {
		if err := json.Unmarshal(body, &n); err != nil {
			h.reject(w, "malformed body")
			return
		}
	}

	paymentID := string(n.Data.ID)
	if paymentID == "" {
		paymentID = r.URL.Query().Get("data.id")
	}
	if err := h.validate.Var(paymentID, "required,max=64,printascii"); err != nil {
		h.reject(w, "missing payment id")
		return
	}

	headers := signature.Headers{
		Signature: r.Header.Get(signature.HeaderSignature),
		RequestID: r.Header.Get(signature.HeaderRequestID),
	}
	if !h.verifier.Verify(headers, paymentID) {
		h.reject(w, "invalid signature")
		return
	}

	kind := n.Type
	if kind == "" {
		kind = r.URL.Query().Get("type")
	}
	if kind != "" && kind != "payment" {
		webhookNotificationsTotal.WithLabelValues(webhookIgnored).Inc()
		utils.WriteJSON(w, WebhookResponse{Status: webhookIgnored}, http.StatusOK)
		return
	}

	deliveryKey := headers.RequestID + ":" + paymentID
	if _, ok := h.seen.Get(deliveryKey); ok {
		h.logger.DebugContext(ctx, "duplicate delivery", slog.String("request_id", headers.RequestID))
		webhookNotificationsTotal.WithLabelValues(webhookIgnored).Inc()
		utils.WriteJSON(w, WebhookResponse{Status: webhookIgnored}, http.StatusOK)
		return
	}

	// обработка не прерывается, если шлюз закрыл соединение
	procCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
	defer cancel()

	res, err := h.svc.HandleNotification(procCtx, paymentID)
	if err != nil {
		h.logger.WarnContext(ctx, "notification not reconciled, batch job will retry",
			slog.String("payment_id", paymentID), slog.Any("error", err))
		webhookNotificationsTotal.WithLabelValues(webhookAccepted).Inc()
		utils.WriteJSON(w, WebhookResponse{Status: webhookAccepted}, http.StatusOK)
		return
	}

	h.seen.Set(deliveryKey, struct{}{})
	h.logger.InfoContext(ctx, "notification processed",
		slog.String("payment_id", paymentID),
		slog.Int64("order_id", res.OrderID),
		slog.Bool("transitioned", res.Transitioned),
	)
	webhookNotificationsTotal.WithLabelValues(webhookProcessed).Inc()
	utils.WriteJSON(w, WebhookResponse{Status: webhookProcessed}, http.StatusOK)
}

func (h *WebhookHandler) reject(w http.ResponseWriter, reason string) {
	webhookRejectedTotal.WithLabelValues(reason).Inc()
	utils.WriteError(w, "invalid signature", http.StatusUnauthorized)
}
