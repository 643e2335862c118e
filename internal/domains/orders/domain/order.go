package domain

import (
	"errors"
	"time"
)

var (
	ErrNoItems          = errors.New("order must contain at least one item")
	ErrNonPositiveCount = errors.New("item quantity must be positive")
)

// OrderLine is one requested product within an order.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// Order is the aggregate persisted after a successful stock reservation.
// Lines keep the order the customer submitted them in.
type Order struct {
	ID        int64
	Lines     []OrderLine
	CreatedAt time.Time
}

// Validate enforces the aggregate invariants.
func (o *Order) Validate() error {
	if len(o.Lines) == 0 {
		return ErrNoItems
	}
	for _, line := range o.Lines {
		if line.Quantity <= 0 {
			return ErrNonPositiveCount
		}
	}
	return nil
}

// Shortage records one product whose availability fell short of the
// requested quantity.
type Shortage struct {
	ProductName string
	Requested   int
	Available   int
}

// PlacementStatus tags the two outcomes of placing an order.
type PlacementStatus string

const (
	StatusSuccess PlacementStatus = "SUCCESS"
	StatusFail    PlacementStatus = "FAIL"
)

// Placement is the outcome of a place-order request. A FAIL placement
// carries the full shortage list so the customer sees every shortfall in
// one round trip.
type Placement struct {
	Status       PlacementStatus
	OrderID      int64
	Message      string
	MissingItems []Shortage
}

const (
	ConfirmedMessage = "Order ready! Please collect it at the desk"
	RejectedMessage  = "Insufficient availability"
)

// Confirmed builds the success placement for a persisted order.
func Confirmed(orderID int64) *Placement {
	return &Placement{Status: StatusSuccess, OrderID: orderID, Message: ConfirmedMessage}
}

// Rejected builds the failure placement carrying every shortage found.
func Rejected(missing []Shortage) *Placement {
	return &Placement{Status: StatusFail, Message: RejectedMessage, MissingItems: missing}
}
