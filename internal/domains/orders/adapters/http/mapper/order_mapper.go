// Package mapper converts between the order wire payloads and the domain
// aggregate. The placement response is a tagged union: clients branch on
// the status field, so a SUCCESS body never carries missingItems and a
// FAIL body never carries an orderId.
package mapper

import (
	"github.com/pickbotics/storefront/internal/domains/orders/domain"
)

// OrderItem is one requested line on the wire.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderRequest is the place-order payload.
type OrderRequest struct {
	Items []OrderItem `json:"items"`
}

// MissingItem reports one shortfall in a FAIL placement.
type MissingItem struct {
	ProductName string `json:"productName"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}

// Placement is the wire form of a place-order outcome.
type Placement struct {
	Status       string        `json:"status"`
	OrderID      int64         `json:"orderId,omitempty"`
	Message      string        `json:"message"`
	MissingItems []MissingItem `json:"missingItems,omitempty"`
}

// Order is the wire form of a stored order.
type Order struct {
	ID    int64       `json:"id"`
	Items []OrderItem `json:"items"`
}

// ToLines builds domain order lines from the request payload.
func ToLines(request OrderRequest) []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		lines = append(lines, domain.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines
}

// FromPlacement maps the placement outcome onto the wire form.
func FromPlacement(placement *domain.Placement) Placement {
	wire := Placement{
		Status:  string(placement.Status),
		OrderID: placement.OrderID,
		Message: placement.Message,
	}
	for _, shortage := range placement.MissingItems {
		wire.MissingItems = append(wire.MissingItems, MissingItem{
			ProductName: shortage.ProductName,
			Requested:   shortage.Requested,
			Available:   shortage.Available,
		})
	}
	return wire
}

// FromDomain maps a stored order onto the wire form.
func FromDomain(order *domain.Order) Order {
	wire := Order{ID: order.ID, Items: make([]OrderItem, 0, len(order.Lines))}
	for _, line := range order.Lines {
		wire.Items = append(wire.Items, OrderItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return wire
}

// FromDomainList maps an order slice, always yielding a non-nil slice so
// an empty list serializes as [].
func FromDomainList(orders []*domain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomain(order))
	}
	return result
}
