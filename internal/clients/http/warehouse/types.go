package warehouse

import (
	"encoding/json"
	"fmt"
)

// GridPoint is a warehouse grid cell, serialized as a {x,y} object.
type GridPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Product is a read-only snapshot of one catalog entry.
type Product struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Location GridPoint `json:"location"`
}

// OrderItem pairs a product with the quantity requested for it.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// MissingItem describes one line of an insufficient-stock rejection.
type MissingItem struct {
	ProductName string `json:"productName"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}

// OrderStatus tags the two OrderResult variants on the wire.
type OrderStatus string

const (
	OrderStatusSuccess OrderStatus = "SUCCESS"
	OrderStatusFail    OrderStatus = "FAIL"
)

// OrderConfirmation is the payload of a successful order placement.
type OrderConfirmation struct {
	OrderID int64
	Message string
}

// OrderRejection is the payload of a business failure: the order was
// transported and understood but could not be fulfilled.
type OrderRejection struct {
	Message      string
	MissingItems []MissingItem
}

// OrderResult is a two-variant tagged union. Exactly one variant is set;
// consumers branch on Status, never on field presence.
type OrderResult struct {
	status       OrderStatus
	confirmation *OrderConfirmation
	rejection    *OrderRejection
}

// Confirmed builds the success variant.
func Confirmed(orderID int64, message string) OrderResult {
	return OrderResult{
		status:       OrderStatusSuccess,
		confirmation: &OrderConfirmation{OrderID: orderID, Message: message},
	}
}

// Rejected builds the business-failure variant. missing may be empty for a
// generic rejection.
func Rejected(message string, missing []MissingItem) OrderResult {
	return OrderResult{
		status:    OrderStatusFail,
		rejection: &OrderRejection{Message: message, MissingItems: missing},
	}
}

// Status reports which variant this result carries.
func (r OrderResult) Status() OrderStatus { return r.status }

// Confirmation returns the success payload when the result is SUCCESS.
func (r OrderResult) Confirmation() (*OrderConfirmation, bool) {
	if r.status != OrderStatusSuccess {
		return nil, false
	}
	return r.confirmation, true
}

// Rejection returns the failure payload when the result is FAIL.
func (r OrderResult) Rejection() (*OrderRejection, bool) {
	if r.status != OrderStatusFail {
		return nil, false
	}
	return r.rejection, true
}

// DispatchMode selects how pickbots divide the collection work. The wire
// format is the collectInParallel boolean; the enum keeps call sites from
// inverting it silently.
type DispatchMode int

const (
	// SingleBot sends one bot through every item location in sequence.
	SingleBot DispatchMode = iota
	// ParallelBots partitions the work across the fleet.
	ParallelBots
)

// CollectInParallel encodes the mode for the routes query string.
func (m DispatchMode) CollectInParallel() bool { return m == ParallelBots }

func (m DispatchMode) String() string {
	if m == ParallelBots {
		return "parallel"
	}
	return "single"
}

// Waypoint is one step of a bot path, serialized as a [x,y] pair.
type Waypoint struct {
	X int
	Y int
}

// MarshalJSON encodes the waypoint as a two-element array.
func (w Waypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{w.X, w.Y})
}

// UnmarshalJSON decodes the [x,y] wire form.
func (w *Waypoint) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("waypoint must be a [x,y] pair: %w", err)
	}
	w.X, w.Y = pair[0], pair[1]
	return nil
}

// RoutePlan is one bot's named traversal. VisitedLocations keeps the
// server-given visiting order; an empty sequence means the bot visits
// nothing, which is distinct from "no routes at all".
type RoutePlan struct {
	RouteName        string     `json:"routeName"`
	VisitedLocations []Waypoint `json:"visitedLocations"`
}
