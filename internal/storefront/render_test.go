package storefront

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pickbotics/storefront/internal/clients/http/warehouse"
)

func TestFormatRoute_JoinsWaypointsInVisitingOrder(t *testing.T) {
	plan := warehouse.RoutePlan{
		RouteName:        "Bot-1",
		VisitedLocations: []warehouse.Waypoint{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}
	require.Equal(t, "Route for Bot-1: (0, 0) ➡️ (1, 1)", FormatRoute(plan, 0))
}

func TestFormatRoute_EmptyWaypointsGetMarker(t *testing.T) {
	plan := warehouse.RoutePlan{RouteName: "Bot-2"}
	line := FormatRoute(plan, 0)
	require.Equal(t, "Route for Bot-2: ❌ No locations found.", line)
	require.NotContains(t, line, "➡️")
}

func TestRouteLabel_PositionalFallback(t *testing.T) {
	require.Equal(t, "Route 1", RouteLabel(warehouse.RoutePlan{}, 0))
	require.Equal(t, "Route 3", RouteLabel(warehouse.RoutePlan{RouteName: "  "}, 2))
	require.Equal(t, "Bot-9", RouteLabel(warehouse.RoutePlan{RouteName: "Bot-9"}, 2))
}

func TestFormatError_RouteFetchKeepsServerText(t *testing.T) {
	err := &warehouse.RouteFetchError{Status: 404, Message: "Order with id 42 not found"}
	require.Equal(t, "Order with id 42 not found", FormatError(err))
}

func TestFormatError_NetworkFailureIsGeneric(t *testing.T) {
	err := &warehouse.NetworkError{Op: "fetch routes"}
	require.Equal(t, "Network error. Please try again.", FormatError(err))
}

func TestFormatError_PlainErrorPassesThrough(t *testing.T) {
	require.Equal(t, "order must contain at least one item", FormatError(ErrEmptyOrder))
}

func TestFormatMissingItem(t *testing.T) {
	line := FormatMissingItem(warehouse.MissingItem{ProductName: "Milk", Requested: 3, Available: 2})
	require.Equal(t, "Milk — requested: 3, available: 2", line)
}

func TestFormatRejection(t *testing.T) {
	lines := FormatRejection(&warehouse.OrderRejection{
		Message:      "Insufficient availability",
		MissingItems: []warehouse.MissingItem{{ProductName: "Milk", Requested: 3, Available: 2}},
	})
	require.Equal(t, []string{
		"❌ Insufficient availability",
		"Milk — requested: 3, available: 2",
	}, lines)
}
