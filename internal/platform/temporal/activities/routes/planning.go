package routes

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	routesports "github.com/pickbotics/storefront/internal/domains/routes/ports"
)

const (
	// PlanRoutesActivityName computes and stores the bot routes for an order.
	PlanRoutesActivityName = "routes.activities.PlanRoutes"
	// OrderNotFoundErrorType marks unknown-order failures as non-retryable.
	OrderNotFoundErrorType = "OrderNotFound"
)

// Activities groups activities that operate on the routes bounded context.
type Activities struct {
	planner routesports.Planner
}

// NewActivities wires the route planner into the Temporal activities bundle.
func NewActivities(planner routesports.Planner) *Activities {
	return &Activities{planner: planner}
}

// PlanRoutes runs one planning pass for an order.
func (a *Activities) PlanRoutes(ctx context.Context, request routesports.PlanRequest) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.planner == nil {
		logger.Error("route planning activity not initialized", "orderId", request.OrderID)
		return errors.New("route planning activity not initialized")
	}
	logger.Info("PlanRoutes activity started", "orderId", request.OrderID, "parallel", request.Parallel)
	if err := a.planner.ComputeAndStore(ctx, request); err != nil {
		if errors.Is(err, routesports.ErrOrderNotFound) {
			return temporal.NewNonRetryableApplicationError(err.Error(), OrderNotFoundErrorType, err)
		}
		logger.Error("PlanRoutes activity failed", "orderId", request.OrderID, "error", err)
		return err
	}
	logger.Info("PlanRoutes activity completed", "orderId", request.OrderID)
	return nil
}
