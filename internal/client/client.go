// Package client is a small HTTP client for the groove daemon API, used by
// the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"groove/internal/api"
)

// Client talks to a running groove daemon.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the daemon listening at addr (host:port or URL).
func New(addr string) *Client {
	base := strings.TrimSpace(addr)
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-success response from the daemon.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("daemon returned %d", e.StatusCode)
}

// Health checks daemon and database health.
func (c *Client) Health(ctx context.Context) (api.HealthStatus, error) {
	var health api.HealthStatus
	err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, &health)
	return health, err
}

// ListRecords fetches a page of catalog records. Params pass through to the
// daemon's listing query untouched.
func (c *Client) ListRecords(ctx context.Context, params url.Values) (api.RecordPage, error) {
	var page api.RecordPage
	err := c.do(ctx, http.MethodGet, "/api/records", params, nil, &page)
	return page, err
}

// GetRecord fetches one record by id.
func (c *Client) GetRecord(ctx context.Context, id string) (api.Record, error) {
	var record api.Record
	err := c.do(ctx, http.MethodGet, "/api/records/"+url.PathEscape(id), nil, nil, &record)
	return record, err
}

// CreateRecord creates a catalog record.
func (c *Client) CreateRecord(ctx context.Context, req api.CreateRecordRequest) (api.Record, error) {
	var record api.Record
	err := c.do(ctx, http.MethodPost, "/api/records", nil, req, &record)
	return record, err
}

// UpdateRecord applies a partial update to a record.
func (c *Client) UpdateRecord(ctx context.Context, id string, req api.UpdateRecordRequest) (api.Record, error) {
	var record api.Record
	err := c.do(ctx, http.MethodPut, "/api/records/"+url.PathEscape(id), nil, req, &record)
	return record, err
}

// DeleteRecord removes a record.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/records/"+url.PathEscape(id), nil, nil, nil)
}

// ListOrders fetches a page of orders.
func (c *Client) ListOrders(ctx context.Context, params url.Values) (api.OrderPage, error) {
	var page api.OrderPage
	err := c.do(ctx, http.MethodGet, "/api/orders", params, nil, &page)
	return page, err
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (api.Order, error) {
	var order api.Order
	err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, nil, &order)
	return order, err
}

// CreateOrder places an order.
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (api.Order, error) {
	var order api.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &order)
	return order, err
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("daemon request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
