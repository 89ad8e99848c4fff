package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/middleware"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type StatusPoller interface {
	PollStatus(ctx context.Context, caller entities.Principal, orderID int64) (entities.PaymentReport, error)
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      StatusPoller
}

func NewPaymentHandler(logger *slog.Logger, svc StatusPoller) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payment")),
		validate: validator.New(),
		svc:      svc,
	}
}

// Init ожидает, что r уже за middleware.Authenticate.
func (h *PaymentHandler) Init(r chi.Router) {
	r.Get("/payments/status/{order_id}", h.GetStatus)
}

// GetStatus сверяет заказ со шлюзом и возвращает состояние оплаты.
// @Summary      Статус оплаты заказа
// @Description  Запрашивает платёж у шлюза и сверяет заказ. При недоступности шлюза возвращает локальный статус с предупреждением.
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      int  true  "Идентификатор заказа"
// @Success      200  {object}  PaymentStatus
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payments/status/{order_id} [get]
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := chi.URLParam(r, "order_id")

	if err := h.validate.Var(raw, "required,number"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	orderID, ok := parseOrderID(raw)
	if !ok {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	caller, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	report, err := h.svc.PollStatus(ctx, caller, orderID)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to poll payment status", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PaymentReportToJSON(report), http.StatusOK)
}
