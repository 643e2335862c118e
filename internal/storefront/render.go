package storefront

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pickbotics/storefront/internal/clients/http/warehouse"
)

// RouteLabel names a plan for display, falling back to a 1-based positional
// label when the server sent no name.
func RouteLabel(plan warehouse.RoutePlan, position int) string {
	if name := strings.TrimSpace(plan.RouteName); name != "" {
		return name
	}
	return fmt.Sprintf("Route %d", position+1)
}

// FormatRoute renders one plan's waypoints in visiting order. A plan with
// no waypoints gets an explicit marker rather than an empty string.
func FormatRoute(plan warehouse.RoutePlan, position int) string {
	label := RouteLabel(plan, position)
	if len(plan.VisitedLocations) == 0 {
		return fmt.Sprintf("Route for %s: ❌ No locations found.", label)
	}
	steps := make([]string, 0, len(plan.VisitedLocations))
	for _, loc := range plan.VisitedLocations {
		steps = append(steps, fmt.Sprintf("(%d, %d)", loc.X, loc.Y))
	}
	return fmt.Sprintf("Route for %s: %s", label, strings.Join(steps, " ➡️ "))
}

// FormatRoutes renders each plan on its own line.
func FormatRoutes(plans []warehouse.RoutePlan) []string {
	lines := make([]string, 0, len(plans))
	for i, plan := range plans {
		lines = append(lines, FormatRoute(plan, i))
	}
	return lines
}

// FormatError renders a client error as the line shown to the customer.
// Route-fetch failures carry the server's own explanation and keep it;
// transport failures collapse to the generic retry message.
func FormatError(err error) string {
	var fetchErr *warehouse.RouteFetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.UserMessage()
	}
	var netErr *warehouse.NetworkError
	if errors.As(err, &netErr) {
		return netErr.UserMessage()
	}
	return err.Error()
}

// FormatMissingItem renders one shortfall line of a rejected order.
func FormatMissingItem(item warehouse.MissingItem) string {
	return fmt.Sprintf("%s — requested: %d, available: %d", item.ProductName, item.Requested, item.Available)
}

// FormatRejection renders the failure message plus its shortfall lines.
func FormatRejection(rejection *warehouse.OrderRejection) []string {
	if rejection == nil {
		return nil
	}
	lines := []string{"❌ " + rejection.Message}
	for _, item := range rejection.MissingItems {
		lines = append(lines, FormatMissingItem(item))
	}
	return lines
}
