package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFleetSpec places three bots along the x axis.
const DefaultFleetSpec = "0:0,5:0,9:0"

// Cell is one warehouse grid coordinate.
type Cell struct {
	X int
	Y int
}

// Depot is the shared drop-off point every route finishes at.
var Depot = Cell{X: 0, Y: 0}

// ManhattanDistance is the grid walking distance between two cells.
func (c Cell) ManhattanDistance(other Cell) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bot is one picking robot with a fixed home cell.
type Bot struct {
	ID   string
	Home Cell
}

// ParseFleet builds the bot fleet from a "x:y,x:y,..." home list. Bots are
// numbered Bot-1..Bot-N in list order.
func ParseFleet(spec string) ([]Bot, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, fmt.Errorf("fleet spec is empty")
	}
	homes := strings.Split(trimmed, ",")
	fleet := make([]Bot, 0, len(homes))
	for i, home := range homes {
		parts := strings.Split(strings.TrimSpace(home), ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("fleet spec %q: home %q must be x:y", spec, home)
		}
		x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("fleet spec %q: home %q: %w", spec, home, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("fleet spec %q: home %q: %w", spec, home, err)
		}
		fleet = append(fleet, Bot{ID: fmt.Sprintf("Bot-%d", i+1), Home: Cell{X: x, Y: y}})
	}
	return fleet, nil
}

// DefaultFleet parses the default fleet spec.
func DefaultFleet() []Bot {
	fleet, err := ParseFleet(DefaultFleetSpec)
	if err != nil {
		panic(err)
	}
	return fleet
}
