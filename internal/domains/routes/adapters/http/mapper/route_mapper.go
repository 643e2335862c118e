// Package mapper converts route plans to their wire form. Waypoints travel
// as bare [x,y] pairs, not {x,y} objects.
package mapper

import (
	"github.com/pickbotics/storefront/internal/domains/routes/domain"
)

// Route is the wire form of one computed bot route.
type Route struct {
	OrderID          int64   `json:"orderId"`
	RouteName        string  `json:"routeName"`
	VisitedLocations [][]int `json:"visitedLocations"`
}

// FromDomain maps a plan onto the wire form.
func FromDomain(plan *domain.Plan) Route {
	locations := make([][]int, 0, len(plan.Path))
	for _, cell := range plan.Path {
		locations = append(locations, []int{cell.X, cell.Y})
	}
	return Route{OrderID: plan.OrderID, RouteName: plan.RouteName, VisitedLocations: locations}
}

// FromDomainList maps a plan slice, always yielding a non-nil slice so an
// empty plan set serializes as [].
func FromDomainList(plans []*domain.Plan) []Route {
	result := make([]Route, 0, len(plans))
	for _, plan := range plans {
		result = append(result, FromDomain(plan))
	}
	return result
}
