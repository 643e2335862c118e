package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	routesports "github.com/pickbotics/storefront/internal/domains/routes/ports"
	routeactivities "github.com/pickbotics/storefront/internal/platform/temporal/activities/routes"
)

// RunRoutePlanningSequence executes the ordered set of activities needed to
// plan and persist the bot routes for an order.
func RunRoutePlanningSequence(ctx workflow.Context, request routesports.PlanRequest) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("route planning sequence started", "orderId", request.OrderID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			// An unknown order id never heals on retry.
			NonRetryableErrorTypes: []string{routeactivities.OrderNotFoundErrorType},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	if err := workflow.ExecuteActivity(ctx, routeactivities.PlanRoutesActivityName, request).Get(ctx, nil); err != nil {
		logger.Error("route planning sequence failed", "orderId", request.OrderID, "error", err)
		return err
	}
	logger.Info("route planning sequence completed", "orderId", request.OrderID)
	return nil
}
