package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/handler"
	mocks "github.com/SergeyBogomolovv/payment-reconciler/internal/handler/mocks"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/middleware"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "jwt-secret"

var customer = entities.Principal{UserID: 7, Role: entities.RoleCustomer}

func bearer(t *testing.T, p entities.Principal) string {
	t.Helper()
	token, err := middleware.IssueToken(p, []byte(jwtSecret), time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPaymentHandler_GetStatus(t *testing.T) {
	updated := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		orderID      string
		auth         bool
		mockBehavior func(svc *mocks.MockStatusPoller)
		wantStatus   int
		wantBody     map[string]any
		wantContains string
	}{
		{
			name:    "success",
			orderID: "42",
			auth:    true,
			mockBehavior: func(svc *mocks.MockStatusPoller) {
				svc.EXPECT().PollStatus(mock.Anything, customer, int64(42)).Return(entities.PaymentReport{
					OrderID: 42, PaymentID: "p1", PaymentStatus: "approved",
					OrderStatus: entities.StatusPaid, LastUpdate: updated,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"order_id": float64(42), "payment_id": "p1", "payment_status": "approved",
				"order_status": "PAID", "last_update": "2026-06-01T12:00:00Z",
			},
		},
		{
			name:    "gateway timeout falls back",
			orderID: "42",
			auth:    true,
			mockBehavior: func(svc *mocks.MockStatusPoller) {
				svc.EXPECT().PollStatus(mock.Anything, customer, int64(42)).Return(entities.PaymentReport{
					OrderID: 42, PaymentID: "p1", OrderStatus: entities.StatusPending,
					LastUpdate: updated, Warning: service.WarningUnconfirmed,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"order_id": float64(42), "payment_id": "p1", "order_status": "PENDING",
				"last_update": "2026-06-01T12:00:00Z", "warning": service.WarningUnconfirmed,
			},
		},
		{
			name:    "not found",
			orderID: "404",
			auth:    true,
			mockBehavior: func(svc *mocks.MockStatusPoller) {
				svc.EXPECT().PollStatus(mock.Anything, customer, int64(404)).
					Return(entities.PaymentReport{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus:   http.StatusNotFound,
			wantContains: `"order not found"`,
		},
		{
			name:    "foreign order",
			orderID: "42",
			auth:    true,
			mockBehavior: func(svc *mocks.MockStatusPoller) {
				svc.EXPECT().PollStatus(mock.Anything, customer, int64(42)).
					Return(entities.PaymentReport{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "internal error",
			orderID: "42",
			auth:    true,
			mockBehavior: func(svc *mocks.MockStatusPoller) {
				svc.EXPECT().PollStatus(mock.Anything, customer, int64(42)).
					Return(entities.PaymentReport{}, errors.New("db error")).Once()
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: `"internal server error"`,
		},
		{
			name:         "non numeric id",
			orderID:      "abc",
			auth:         true,
			mockBehavior: func(svc *mocks.MockStatusPoller) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "negative id",
			orderID:      "-1",
			auth:         true,
			mockBehavior: func(svc *mocks.MockStatusPoller) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "no token",
			orderID:      "42",
			mockBehavior: func(svc *mocks.MockStatusPoller) {},
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockStatusPoller(t)
			tc.mockBehavior(svc)

			h := handler.NewPaymentHandler(discardLogger(), svc)

			r := chi.NewRouter()
			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(jwtSecret))
				h.Init(r)
			})

			req := httptest.NewRequest(http.MethodGet, "/payments/status/"+tc.orderID, nil)
			if tc.auth {
				req.Header.Set("Authorization", bearer(t, customer))
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantContains != "" {
				assert.Contains(t, string(body), tc.wantContains)
			}
			if tc.wantBody != nil {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, tc.wantBody, resp)
			}
		})
	}
}
