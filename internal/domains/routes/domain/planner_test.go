package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFleet(t *testing.T) {
	fleet, err := ParseFleet("0:0,5:0,9:0")
	require.NoError(t, err)
	require.Equal(t, []Bot{
		{ID: "Bot-1", Home: Cell{X: 0, Y: 0}},
		{ID: "Bot-2", Home: Cell{X: 5, Y: 0}},
		{ID: "Bot-3", Home: Cell{X: 9, Y: 0}},
	}, fleet)
}

func TestParseFleet_Malformed(t *testing.T) {
	_, err := ParseFleet("0:0,banana")
	require.Error(t, err)
	_, err = ParseFleet("")
	require.Error(t, err)
}

func TestStepsBetween_XAxisFirst(t *testing.T) {
	steps := stepsBetween(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 1})
	require.Equal(t, []Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}, steps)
}

func TestStepsBetween_SameCell(t *testing.T) {
	require.Empty(t, stepsBetween(Cell{X: 3, Y: 3}, Cell{X: 3, Y: 3}))
}

func TestPlanSingle_StepsAndReturnsToDepot(t *testing.T) {
	bot := Bot{ID: "Bot-1", Home: Cell{X: 0, Y: 0}}
	plan := PlanSingle(7, bot, []Stop{{Name: "Milk", Cell: Cell{X: 1, Y: 1}}})

	require.Equal(t, int64(7), plan.OrderID)
	require.Equal(t, "Milk", plan.RouteName)
	require.Equal(t, []Cell{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: 0},
	}, plan.Path)
}

func TestPlanSingle_VisitsNearestFirstButNamesInSubmittedOrder(t *testing.T) {
	bot := Bot{ID: "Bot-1", Home: Cell{X: 0, Y: 0}}
	plan := PlanSingle(1, bot, []Stop{
		{Name: "Far", Cell: Cell{X: 4, Y: 0}},
		{Name: "Near", Cell: Cell{X: 1, Y: 0}},
	})

	require.Equal(t, "Far, Near", plan.RouteName)
	require.Equal(t, Cell{X: 1, Y: 0}, plan.Path[1], "nearest stop is visited first")
	require.Equal(t, Depot, plan.Path[len(plan.Path)-1])
}

func TestPlanParallel_OneStopPerBotWhenFleetCovers(t *testing.T) {
	fleet := DefaultFleet()
	plans, err := PlanParallel(1, fleet, []Stop{
		{Name: "Milk", Cell: Cell{X: 2, Y: 1}},
		{Name: "Bread", Cell: Cell{X: 6, Y: 2}},
	})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "Milk", plans[0].RouteName)
	require.Equal(t, "Bread", plans[1].RouteName)
	for _, plan := range plans {
		require.Equal(t, Depot, plan.Path[len(plan.Path)-1])
	}
}

func TestPlanParallel_PairsWhenStopsOutnumberBots(t *testing.T) {
	fleet := []Bot{{ID: "Bot-1", Home: Cell{X: 0, Y: 0}}}
	plans, err := PlanParallel(1, fleet, []Stop{
		{Name: "C", Cell: Cell{X: 3, Y: 0}},
		{Name: "A", Cell: Cell{X: 1, Y: 0}},
		{Name: "B", Cell: Cell{X: 2, Y: 0}},
	})
	require.NoError(t, err)
	require.Len(t, plans, 2, "three stops over one bot pair up")
	require.Equal(t, "A B", plans[0].RouteName, "stops are sorted by x before pairing")
	require.Equal(t, "C", plans[1].RouteName)
}

func TestPlanParallel_EmptyFleet(t *testing.T) {
	_, err := PlanParallel(1, nil, []Stop{{Name: "Milk", Cell: Cell{X: 1, Y: 1}}})
	require.ErrorIs(t, err, ErrNoBots)
}

func TestPlanParallel_NoStops(t *testing.T) {
	plans, err := PlanParallel(1, DefaultFleet(), nil)
	require.NoError(t, err)
	require.Empty(t, plans)
}
