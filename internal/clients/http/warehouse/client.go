// Package warehouse implements the storefront's typed HTTP client for the
// warehouse API: catalog snapshots, order submission with the discriminated
// success/failure contract, and pickbot route dispatch.
package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// NetworkError marks transport failures, unexpected statuses, and bodies the
// client cannot interpret. Business failures never surface as NetworkError.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return e.Op
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// UserMessage is the short text shown to customers for any network error.
func (e *NetworkError) UserMessage() string { return "Network error. Please try again." }

// ErrNoRoutes reports a technically successful routes response that carries
// no routes at all.
var ErrNoRoutes = errors.New("no routes found for the given order id")

// RouteFetchError carries a non-2xx routes response. The server explains
// these failures in the body ("Order with id 42 not found"), so the message
// is shown to the customer verbatim rather than flattened to the generic
// network-error text.
type RouteFetchError struct {
	Status  int
	Message string
}

func (e *RouteFetchError) Error() string {
	return fmt.Sprintf("fetch routes: status %d: %s", e.Status, e.Message)
}

// UserMessage is the text shown to customers for a failed route fetch.
func (e *RouteFetchError) UserMessage() string { return e.Message }

// Client talks to the warehouse API. It holds no request state; every call
// is independent and safely re-invocable.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the default transport, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient instantiates the warehouse client with sane defaults.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("warehouse base URL is required")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// FetchProducts returns the current catalog in server order. An empty
// catalog is a valid success, distinct from any error return.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, &NetworkError{Op: "build products request", Cause: err}
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "fetch products", Cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &NetworkError{Op: "fetch products", Cause: fmt.Errorf("unexpected status %s", res.Status)}
	}
	var products []Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		return nil, &NetworkError{Op: "decode products", Cause: err}
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// orderResponseBody is the raw wire shape shared by both OrderResult
// variants; classification happens on the status tag.
type orderResponseBody struct {
	Status       OrderStatus   `json:"status"`
	OrderID      int64         `json:"orderId"`
	Message      string        `json:"message"`
	MissingItems []MissingItem `json:"missingItems"`
}

// SubmitOrder posts the item sequence and classifies the response.
//
// A 2xx response must carry the SUCCESS payload. A non-2xx response whose
// body decodes to a FAIL payload is a business failure and is returned as a
// normal OrderResult, not an error. Everything else is a NetworkError.
func (c *Client) SubmitOrder(ctx context.Context, items []OrderItem) (OrderResult, error) {
	if len(items) == 0 {
		return OrderResult{}, &NetworkError{Op: "submit order", Cause: errors.New("no items to submit")}
	}
	body, err := json.Marshal(struct {
		Items []OrderItem `json:"items"`
	}{Items: items})
	if err != nil {
		return OrderResult{}, &NetworkError{Op: "encode order", Cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return OrderResult{}, &NetworkError{Op: "build order request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return OrderResult{}, &NetworkError{Op: "submit order", Cause: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return OrderResult{}, &NetworkError{Op: "read order response", Cause: err}
	}

	var payload orderResponseBody
	decodeErr := json.Unmarshal(raw, &payload)

	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		if decodeErr != nil {
			return OrderResult{}, &NetworkError{Op: "decode order response", Cause: decodeErr}
		}
		if payload.Status != OrderStatusSuccess {
			return OrderResult{}, &NetworkError{Op: "decode order response", Cause: fmt.Errorf("2xx response tagged %q", payload.Status)}
		}
		return Confirmed(payload.OrderID, payload.Message), nil
	}

	// Non-2xx: only a recognizable FAIL body is a business failure. An
	// ambiguous structured body without the tag is deliberately treated as
	// a network error; the server contract leaves that case unspecified.
	if decodeErr == nil && payload.Status == OrderStatusFail {
		return Rejected(payload.Message, payload.MissingItems), nil
	}
	return OrderResult{}, &NetworkError{Op: "submit order", Cause: fmt.Errorf("unexpected status %s", res.Status)}
}

// FetchRoutes requests route plans for a placed order. Plans arrive in
// server order and are returned verbatim; the waypoint sequence is the
// traversal order and must not be reordered or deduplicated.
func (c *Client) FetchRoutes(ctx context.Context, orderID int64, mode DispatchMode) ([]RoutePlan, error) {
	query := url.Values{}
	query.Set("orderId", strconv.FormatInt(orderID, 10))
	query.Set("collectInParallel", strconv.FormatBool(mode.CollectInParallel()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/routes?"+query.Encode(), nil)
	if err != nil {
		return nil, &NetworkError{Op: "build routes request", Cause: err}
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "fetch routes", Cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &RouteFetchError{Status: res.StatusCode, Message: routesErrorMessage(res.Body)}
	}
	var plans []RoutePlan
	if err := json.NewDecoder(res.Body).Decode(&plans); err != nil {
		return nil, &NetworkError{Op: "decode routes", Cause: err}
	}
	if len(plans) == 0 {
		return nil, ErrNoRoutes
	}
	return plans, nil
}

// routesErrorMessage prefers the response body text over a generic fallback.
func routesErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err == nil {
		if msg := strings.TrimSpace(string(raw)); msg != "" {
			return msg
		}
	}
	return "failed to fetch routes"
}
