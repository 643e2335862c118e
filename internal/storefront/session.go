// Package storefront holds the client-side order session: the quantity
// selection the customer is editing, the identifier of the last placed
// order, and the most recent catalog and route responses. All state is
// request-scoped except the order id, which survives until the customer
// asks for routes.
package storefront

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/pickbotics/storefront/internal/clients/http/warehouse"
)

// ErrEmptyOrder is the single business rule enforced client-side: an order
// with no positive quantities never reaches the network.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// ErrStaleResponse marks a response that resolved after a newer request for
// the same operation was issued. Callers discard it silently.
var ErrStaleResponse = errors.New("stale response discarded")

// Client is the slice of the warehouse API the session consumes.
type Client interface {
	FetchProducts(ctx context.Context) ([]warehouse.Product, error)
	SubmitOrder(ctx context.Context, items []warehouse.OrderItem) (warehouse.OrderResult, error)
	FetchRoutes(ctx context.Context, orderID int64, mode warehouse.DispatchMode) ([]warehouse.RoutePlan, error)
}

// Session coordinates one customer's ordering flow. Methods are safe for
// concurrent use; each operation kind carries a generation token so that
// only the latest issued request may apply its response.
type Session struct {
	client Client

	mu         sync.Mutex
	selections map[int64]int
	orderID    int64
	catalog    []warehouse.Product
	routes     []warehouse.RoutePlan

	catalogGen uint64
	submitGen  uint64
	routesGen  uint64
}

// NewSession builds an empty session around the given client.
func NewSession(client Client) *Session {
	return &Session{
		client:     client,
		selections: map[int64]int{},
	}
}

// SetQuantity records the requested quantity for a product. The selection
// is keyed by product id, so editing the same product twice keeps only the
// last value. Non-positive quantities are kept here and filtered at submit
// time, mirroring how the form clears to zero.
func (s *Session) SetQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[productID] = quantity
}

// Selections returns a copy of the current quantity selection.
func (s *Session) Selections() map[int64]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]int, len(s.selections))
	for id, qty := range s.selections {
		out[id] = qty
	}
	return out
}

// OrderID returns the identifier of the last confirmed order, or zero.
func (s *Session) OrderID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderID
}

// Catalog returns the last applied catalog snapshot.
func (s *Session) Catalog() []warehouse.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// Routes returns the last applied route plans.
func (s *Session) Routes() []warehouse.RoutePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routes
}

// LoadCatalog refreshes the product snapshot. A response that lost the race
// against a newer LoadCatalog returns ErrStaleResponse and changes nothing.
func (s *Session) LoadCatalog(ctx context.Context) ([]warehouse.Product, error) {
	s.mu.Lock()
	s.catalogGen++
	gen := s.catalogGen
	s.mu.Unlock()

	products, err := s.client.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.catalogGen {
		return nil, ErrStaleResponse
	}
	if err != nil {
		return nil, err
	}
	s.catalog = products
	return products, nil
}

// SubmitOrder normalizes the selection and submits it.
//
// Quantities <= 0 are dropped; if nothing remains the call short-circuits
// with ErrEmptyOrder and no network traffic. On the Success variant the
// selection is cleared and the order id retained; a business failure or a
// network error leaves the selection untouched so the customer can correct
// and resubmit.
func (s *Session) SubmitOrder(ctx context.Context) (warehouse.OrderResult, error) {
	s.mu.Lock()
	items := normalizeSelections(s.selections)
	if len(items) == 0 {
		s.mu.Unlock()
		return warehouse.OrderResult{}, ErrEmptyOrder
	}
	s.submitGen++
	gen := s.submitGen
	s.mu.Unlock()

	result, err := s.client.SubmitOrder(ctx, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.submitGen {
		return warehouse.OrderResult{}, ErrStaleResponse
	}
	if err != nil {
		return warehouse.OrderResult{}, err
	}
	if confirmation, ok := result.Confirmation(); ok {
		s.selections = map[int64]int{}
		s.orderID = confirmation.OrderID
	}
	return result, nil
}

// FetchRoutes requests plans for the retained order in the given mode.
// Only the latest issued request may apply; earlier in-flight responses
// resolve to ErrStaleResponse.
func (s *Session) FetchRoutes(ctx context.Context, mode warehouse.DispatchMode) ([]warehouse.RoutePlan, error) {
	s.mu.Lock()
	orderID := s.orderID
	if orderID == 0 {
		s.mu.Unlock()
		return nil, errors.New("no confirmed order to route")
	}
	s.routesGen++
	gen := s.routesGen
	s.mu.Unlock()

	plans, err := s.client.FetchRoutes(ctx, orderID, mode)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.routesGen {
		return nil, ErrStaleResponse
	}
	if err != nil {
		return nil, err
	}
	s.routes = plans
	return plans, nil
}

// normalizeSelections turns the sparse map into the ordered item sequence.
// Product-id order keeps submissions deterministic for identical input.
func normalizeSelections(selections map[int64]int) []warehouse.OrderItem {
	items := make([]warehouse.OrderItem, 0, len(selections))
	for id, qty := range selections {
		if qty > 0 {
			items = append(items, warehouse.OrderItem{ProductID: id, Quantity: qty})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items
}
