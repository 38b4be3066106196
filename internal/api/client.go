package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const RequestIDHeader = "X-Request-ID"

var ErrNotFound = errors.New("not found")

// StatusError is returned for an unexpected non-OK response.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// RejectedError is returned when the order API refuses an order. Reason is
// the server-provided message and may be empty.
type RejectedError struct {
	Status int
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("order rejected: status %d", e.Status)
	}
	return fmt.Sprintf("order rejected: status %d: %s", e.Status, e.Reason)
}

// Client talks to the storefront JSON API. It does not retry.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ port.CatalogReader  = (*Client)(nil)
	_ port.OrderSubmitter = (*Client)(nil)
)

func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("baseURL[%s] is not valid: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var body struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/api/products", &body); err != nil {
		return nil, err
	}

	return body.Products, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var body struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := c.getJSON(ctx, "/api/categories", &body); err != nil {
		return nil, err
	}

	return body.Categories, nil
}

func (c *Client) GetProduct(ctx context.Context, id domain.ProductID) (domain.ProductDetail, error) {
	if id == "" {
		return domain.ProductDetail{}, fmt.Errorf("id is empty")
	}

	var detail domain.ProductDetail
	if err := c.getJSON(ctx, "/api/products/"+string(id), &detail); err != nil {
		return domain.ProductDetail{}, err
	}
	if detail.Product.ID == "" {
		return domain.ProductDetail{}, ErrNotFound
	}

	return detail, nil
}

func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	payload, err := json.Marshal(toWireOrder(req))
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(payload))
	if err != nil {
		return domain.Order{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.Order{}, fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Order{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		// a non-JSON error body leaves Reason empty
		_ = json.Unmarshal(raw, &failure)
		return domain.Order{}, &RejectedError{Status: resp.StatusCode, Reason: failure.Error}
	}

	var body struct {
		Order json.RawMessage `json:"order"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return domain.Order{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if len(body.Order) == 0 || string(body.Order) == "null" {
		return domain.Order{}, fmt.Errorf("response has no order")
	}

	var order domain.Order
	if err := json.Unmarshal(body.Order, &order); err != nil {
		return domain.Order{}, fmt.Errorf("json.Unmarshal order: %w", err)
	}
	order.Raw = body.Order

	return order, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Method: http.MethodGet, Path: path, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
