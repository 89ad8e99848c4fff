package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusBadGateway, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(middleware.Logger(logger), middleware.Metrics)
			r.Get("/payments/status/{order_id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/payments/status/42?data.id=1", nil))

			assert.Equal(t, tc.status, rr.Code)
			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, "path=/payments/status/42")
			assert.NotContains(t, out, "data.id")
		})
	}
}
