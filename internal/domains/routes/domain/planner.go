package domain

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNoBots = errors.New("no bots available")

// Stop is one product pickup: the display name that labels the route and
// the cell the bot must reach.
type Stop struct {
	Name string
	Cell Cell
}

// Plan is one computed bot route. The path starts at the bot's home cell,
// steps through every cell the bot crosses, and ends at the depot.
type Plan struct {
	OrderID   int64
	RouteName string
	Path      []Cell
}

// PlanSingle routes one bot through every stop. The bot starts at its home,
// always walks to the nearest remaining stop by Manhattan distance, and
// returns to the depot after the last pickup. The route is named after the
// stops in their submitted order, comma-joined.
func PlanSingle(orderID int64, bot Bot, stops []Stop) *Plan {
	path := []Cell{bot.Home}
	current := bot.Home

	remaining := append([]Stop(nil), stops...)
	for len(remaining) > 0 {
		next := 0
		for i := 1; i < len(remaining); i++ {
			if current.ManhattanDistance(remaining[i].Cell) < current.ManhattanDistance(remaining[next].Cell) {
				next = i
			}
		}
		path = append(path, stepsBetween(current, remaining[next].Cell)...)
		current = remaining[next].Cell
		remaining = append(remaining[:next], remaining[next+1:]...)
	}
	path = append(path, stepsBetween(current, Depot)...)

	names := make([]string, 0, len(stops))
	for _, stop := range stops {
		names = append(names, stop.Name)
	}
	return &Plan{OrderID: orderID, RouteName: strings.Join(names, ", "), Path: path}
}

// PlanParallel splits the stops across the fleet. Stops are sorted by x and
// paired two-per-bot when they outnumber the bots, otherwise each bot takes
// one. Each bot walks home, through its pickups, then to the depot. Routes
// are computed concurrently, one goroutine per assignment, bounded by fleet
// size; the returned order follows the pairing, so output is deterministic.
func PlanParallel(orderID int64, fleet []Bot, stops []Stop) ([]*Plan, error) {
	if len(fleet) == 0 {
		return nil, ErrNoBots
	}
	if len(stops) == 0 {
		return []*Plan{}, nil
	}

	sorted := append([]Stop(nil), stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Cell.X < sorted[j].Cell.X })

	// Bots closest to the low-x end of the grid take the first pickups.
	bots := append([]Bot(nil), fleet...)
	sort.SliceStable(bots, func(i, j int) bool { return bots[i].Home.X < bots[j].Home.X })

	pairs := pairStops(sorted, len(bots))
	plans := make([]*Plan, len(pairs))

	var wg sync.WaitGroup
	slots := make(chan struct{}, len(bots))
	for i, pair := range pairs {
		wg.Add(1)
		slots <- struct{}{}
		go func(i int, bot Bot, pair []Stop) {
			defer wg.Done()
			defer func() { <-slots }()
			plans[i] = planLeg(orderID, bot, pair)
		}(i, bots[i%len(bots)], pair)
	}
	wg.Wait()
	return plans, nil
}

// pairStops groups stops two-per-bot only when there are more stops than
// bots; otherwise every stop travels alone.
func pairStops(stops []Stop, fleetSize int) [][]Stop {
	var pairs [][]Stop
	if len(stops) > fleetSize {
		for i := 0; i < len(stops); i += 2 {
			if i+1 < len(stops) {
				pairs = append(pairs, []Stop{stops[i], stops[i+1]})
			} else {
				pairs = append(pairs, []Stop{stops[i]})
			}
		}
		return pairs
	}
	for _, stop := range stops {
		pairs = append(pairs, []Stop{stop})
	}
	return pairs
}

func planLeg(orderID int64, bot Bot, stops []Stop) *Plan {
	path := []Cell{bot.Home}
	current := bot.Home
	names := make([]string, 0, len(stops))
	for _, stop := range stops {
		path = append(path, stepsBetween(current, stop.Cell)...)
		current = stop.Cell
		names = append(names, stop.Name)
	}
	path = append(path, stepsBetween(current, Depot)...)
	return &Plan{OrderID: orderID, RouteName: strings.Join(names, " "), Path: path}
}

// stepsBetween walks cell by cell from start to end, x axis first, then y.
// The start cell itself is not included.
func stepsBetween(start, end Cell) []Cell {
	var steps []Cell
	current := start
	for current != end {
		if current.X != end.X {
			if end.X > current.X {
				current.X++
			} else {
				current.X--
			}
		} else {
			if end.Y > current.Y {
				current.Y++
			} else {
				current.Y--
			}
		}
		steps = append(steps, current)
	}
	return steps
}
