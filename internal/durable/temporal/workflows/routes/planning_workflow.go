package routes

import (
	"go.temporal.io/sdk/workflow"

	routesports "github.com/pickbotics/storefront/internal/domains/routes/ports"
	"github.com/pickbotics/storefront/internal/durable/temporal/sequences"
)

const (
	// PlanningWorkflowName is the public identifier for registering the workflow.
	PlanningWorkflowName = "routes.workflows.Planning"
	// PlanningTaskQueue is the queue consumed by the worker processing route workflows.
	PlanningTaskQueue = "ROUTE_PLANNING"
)

// PlanningWorkflowInput captures the payload for one planning run.
type PlanningWorkflowInput struct {
	Request routesports.PlanRequest
	TraceID string
}

// PlanningWorkflow orchestrates the activities that compute and store the
// bot routes for an order.
func PlanningWorkflow(ctx workflow.Context, input PlanningWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("PlanningWorkflow started",
		withTraceID(input.TraceID, "orderId", input.Request.OrderID, "parallel", input.Request.Parallel)...)
	if err := sequences.RunRoutePlanningSequence(ctx, input.Request); err != nil {
		logger.Error("PlanningWorkflow failed",
			withTraceID(input.TraceID, "orderId", input.Request.OrderID, "error", err)...)
		return err
	}
	logger.Info("PlanningWorkflow completed", withTraceID(input.TraceID, "orderId", input.Request.OrderID)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
