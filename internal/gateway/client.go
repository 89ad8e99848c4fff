// Package gateway клиент REST API платёжного шлюза.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.Gateway) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type paymentID string

// шлюз отдаёт id то числом, то строкой
func (p *paymentID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		return errors.New("empty payment id")
	}
	*p = paymentID(data)
	return nil
}

type payment struct {
	ID                paymentID `json:"id"`
	Status            string    `json:"status"`
	StatusDetail      string    `json:"status_detail"`
	ExternalReference string    `json:"external_reference"`
	DateLastUpdated   time.Time `json:"date_last_updated"`
}

func (p payment) view() entities.PaymentView {
	return entities.PaymentView{
		ID:                string(p.ID),
		Status:            p.Status,
		StatusDetail:      p.StatusDetail,
		ExternalReference: p.ExternalReference,
		LastUpdated:       p.DateLastUpdated,
	}
}

type searchResult struct {
	Results []payment `json:"results"`
}

// GetPayment возвращает платёж по его id в шлюзе.
func (c *Client) GetPayment(ctx context.Context, id string) (entities.PaymentView, error) {
	var p payment
	if err := c.get(ctx, "get_payment", "/v1/payments/"+url.PathEscape(id), nil, &p); err != nil {
		return entities.PaymentView{}, err
	}
	return p.view(), nil
}

// FindPaymentsByExternalReference возвращает платежи заказа, сначала последние обновлённые.
func (c *Client) FindPaymentsByExternalReference(ctx context.Context, orderID int64) ([]entities.PaymentView, error) {
	q := url.Values{}
	q.Set("external_reference", strconv.FormatInt(orderID, 10))
	q.Set("sort", "date_last_updated")
	q.Set("criteria", "desc")

	var res searchResult
	if err := c.get(ctx, "search_payments", "/v1/payments/search", q, &res); err != nil {
		return nil, err
	}

	views := make([]entities.PaymentView, 0, len(res.Results))
	for _, p := range res.Results {
		views = append(views, p.view())
	}
	return views, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, dest any) (err error) {
	start := time.Now()
	defer func() { observe(op, start, err) }()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTransient(err) {
			return fmt.Errorf("%w: %s: %v", entities.ErrGatewayUnavailable, op, err)
		}
		return fmt.Errorf("failed to call gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", entities.ErrGatewayUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.ErrPaymentNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s: status %d", entities.ErrGatewayUnavailable, op, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %s: status %d", entities.ErrGatewayRejected, op, resp.StatusCode)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
