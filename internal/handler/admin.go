package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/service"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type OrderResyncer interface {
	ResyncOrder(ctx context.Context, orderID int64) (entities.Reconciliation, error)
}

type BatchTrigger interface {
	// Trigger возвращает false, если запуск уже запланирован
	Trigger() bool
}

type AdminHandler struct {
	logger *slog.Logger
	svc    OrderResyncer
	batch  BatchTrigger
}

func NewAdminHandler(logger *slog.Logger, svc OrderResyncer, batch BatchTrigger) *AdminHandler {
	return &AdminHandler{
		logger: logger.With(slog.String("handler", "admin")),
		svc:    svc,
		batch:  batch,
	}
}

// Init ожидает, что r уже за middleware.Authenticate и middleware.RequireAdmin.
func (h *AdminHandler) Init(r chi.Router) {
	r.Post("/admin/payments/{order_id}/reconcile", h.ReconcileOrder)
	r.Post("/admin/payments/reconcile", h.TriggerBatch)
}

// ReconcileOrder сверяет один заказ со шлюзом.
// @Summary      Сверить заказ
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      int  true  "Идентификатор заказа"
// @Success      200  {object}  ReconcileResult
// @Failure      400  {object}  utils.ErrorResponse "Неверный идентификатор"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      503  {object}  utils.ErrorResponse "Шлюз недоступен"
// @Router       /admin/payments/{order_id}/reconcile [post]
func (h *AdminHandler) ReconcileOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, ok := parseOrderID(chi.URLParam(r, "order_id"))
	if !ok {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.ResyncOrder(ctx, orderID)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrPaymentNotFound):
		out := ReconciliationToJSON(res)
		out.Warning = service.WarningNoPayment
		utils.WriteJSON(w, out, http.StatusOK)
		return
	case errors.Is(err, entities.ErrGatewayUnavailable):
		utils.WriteError(w, service.WarningUnconfirmed, http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to resync order", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ReconciliationToJSON(res), http.StatusOK)
}

// TriggerBatch запускает внеочередную сверку зависших заказов.
// @Summary      Запустить сверку
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  BatchResponse
// @Router       /admin/payments/reconcile [post]
func (h *AdminHandler) TriggerBatch(w http.ResponseWriter, r *http.Request) {
	status := "scheduled"
	if !h.batch.Trigger() {
		status = "already_scheduled"
	}
	h.logger.InfoContext(r.Context(), "batch reconciliation requested", slog.String("status", status))
	utils.WriteJSON(w, BatchResponse{Status: status}, http.StatusAccepted)
}
