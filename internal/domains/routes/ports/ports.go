package ports

import (
	"context"
	"errors"

	"github.com/pickbotics/storefront/internal/domains/routes/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository stores the computed plans for an order. Plans are recomputed
// on every request, so Replace swaps the full set atomically.
type Repository interface {
	Replace(ctx context.Context, orderID int64, plans []*domain.Plan) error
	FindByOrderID(ctx context.Context, orderID int64) ([]*domain.Plan, error)
}

// OrderPicks resolves an order into the stops its bots must visit, in the
// order the lines were submitted. Returns ErrOrderNotFound for unknown ids.
type OrderPicks interface {
	StopsForOrder(ctx context.Context, orderID int64) ([]domain.Stop, error)
}

// PlanRequest identifies one planning run.
type PlanRequest struct {
	OrderID  int64
	Parallel bool
}

// Planner computes and stores the plans for an order. It is the unit of
// work the durable workflow executes.
type Planner interface {
	ComputeAndStore(ctx context.Context, request PlanRequest) error
}

// WorkflowOrchestrator runs a planning request, either on a Temporal
// cluster or inline when no cluster is reachable.
type WorkflowOrchestrator interface {
	PlanRoutes(ctx context.Context, request PlanRequest) error
}

// Service exposes the route use cases to the transport layer.
type Service interface {
	Routes(ctx context.Context, orderID int64, parallel bool) ([]*domain.Plan, error)
}
