package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return gateway.NewClient(config.Gateway{BaseURL: srv.URL, AccessToken: "token", Timeout: timeout})
}

func TestClient_GetPayment(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		want    entities.PaymentView
		wantErr error
	}{
		{
			name:   "approved payment",
			status: http.StatusOK,
			body: `{"id": 123456789, "status": "approved", "status_detail": "accredited",
				"external_reference": "42", "date_last_updated": "2025-01-02T10:00:00.000-03:00"}`,
			want: entities.PaymentView{
				ID:                "123456789",
				Status:            "approved",
				StatusDetail:      "accredited",
				ExternalReference: "42",
				LastUpdated:       time.Date(2025, 1, 2, 13, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"message": "Payment not found"}`,
			wantErr: entities.ErrPaymentNotFound,
		},
		{
			name:    "server error is transient",
			status:  http.StatusBadGateway,
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:    "rate limit is transient",
			status:  http.StatusTooManyRequests,
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:    "bad credentials are permanent",
			status:  http.StatusUnauthorized,
			wantErr: entities.ErrGatewayRejected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payments/123456789", r.URL.Path)
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}, time.Second)

			got, err := c.GetPayment(context.Background(), "123456789")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.ID, got.ID)
			assert.Equal(t, tc.want.Status, got.Status)
			assert.Equal(t, tc.want.StatusDetail, got.StatusDetail)
			assert.Equal(t, tc.want.ExternalReference, got.ExternalReference)
			assert.True(t, tc.want.LastUpdated.Equal(got.LastUpdated))
		})
	}
}

func TestClient_GetPayment_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	_, err := c.GetPayment(context.Background(), "1")
	assert.ErrorIs(t, err, entities.ErrGatewayUnavailable)
}

func TestClient_FindPaymentsByExternalReference(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/search", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("external_reference"))
		w.Write([]byte(`{"results": [
			{"id": 2, "status": "pending", "external_reference": "42", "date_last_updated": "2025-01-02T10:00:00Z"},
			{"id": "1", "status": "rejected", "external_reference": "42", "date_last_updated": "2025-01-01T10:00:00Z"}
		]}`))
	}, time.Second)

	views, err := c.FindPaymentsByExternalReference(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "2", views[0].ID)
	assert.Equal(t, "1", views[1].ID)
	assert.Equal(t, "rejected", views[1].Status)
}
