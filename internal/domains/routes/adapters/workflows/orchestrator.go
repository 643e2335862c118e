package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/pickbotics/storefront/internal/domains/routes/ports"
	routeworkflows "github.com/pickbotics/storefront/internal/durable/temporal/workflows/routes"
	routeactivities "github.com/pickbotics/storefront/internal/platform/temporal/activities/routes"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalRouteWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineRouteWorkflows)(nil)
)

// TemporalRouteWorkflows starts planning workflows on a Temporal cluster.
type TemporalRouteWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalRouteWorkflows wires a Temporal client into the orchestrator.
func NewTemporalRouteWorkflows(c client.Client) *TemporalRouteWorkflows {
	return &TemporalRouteWorkflows{client: c, taskQueue: routeworkflows.PlanningTaskQueue}
}

// PlanRoutes executes the planning workflow and waits for its result.
func (o *TemporalRouteWorkflows) PlanRoutes(ctx context.Context, request ports.PlanRequest) error {
	if o == nil || o.client == nil {
		return errors.New("temporal route workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        buildPlanningWorkflowID(request, traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		routeworkflows.PlanningWorkflow,
		routeworkflows.PlanningWorkflowInput{Request: request, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, options.ID, alreadyStarted.RunId)
			return unwrapWorkflowError(existingRun.Get(ctx, nil))
		}
		return err
	}
	return unwrapWorkflowError(run.Get(ctx, nil))
}

// unwrapWorkflowError restores the unknown-order sentinel after its trip
// through Temporal's error encoding.
func unwrapWorkflowError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() == routeactivities.OrderNotFoundErrorType {
		return ports.ErrOrderNotFound
	}
	return err
}

// InlineRouteWorkflows executes the planner directly without Temporal,
// useful for tests or dev fallbacks.
type InlineRouteWorkflows struct {
	planner ports.Planner
}

// NewInlineRouteWorkflows wraps the route planner for synchronous execution.
func NewInlineRouteWorkflows(planner ports.Planner) *InlineRouteWorkflows {
	return &InlineRouteWorkflows{planner: planner}
}

// PlanRoutes delegates to the planner without durable orchestration.
func (o *InlineRouteWorkflows) PlanRoutes(ctx context.Context, request ports.PlanRequest) error {
	if o == nil || o.planner == nil {
		return errors.New("inline route workflows not configured")
	}
	return o.planner.ComputeAndStore(ctx, request)
}

func buildPlanningWorkflowID(request ports.PlanRequest, traceComponent string) string {
	return fmt.Sprintf("route-planning-%d-%t-%s", request.OrderID, request.Parallel, traceComponent)
}

func workflowTraceComponent(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span != nil {
		spanCtx := span.SpanContext()
		if spanCtx.IsValid() && spanCtx.TraceID().IsValid() {
			return spanCtx.TraceID().String()
		}
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
