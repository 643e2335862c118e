package application

import (
	"context"
	"errors"

	"github.com/pickbotics/storefront/internal/domains/routes/domain"
	"github.com/pickbotics/storefront/internal/domains/routes/ports"
)

// Service computes bot routes for placed orders. Every request recomputes
// the plans and replaces what was stored before, so the stored set always
// reflects the latest dispatch mode.
type Service struct {
	repo      ports.Repository
	picks     ports.OrderPicks
	fleet     []domain.Bot
	workflows ports.WorkflowOrchestrator
}

type Option func(*Service)

// WithOrchestrator routes planning runs through a workflow orchestrator
// instead of executing them in-process.
func WithOrchestrator(orchestrator ports.WorkflowOrchestrator) Option {
	return func(s *Service) {
		s.workflows = orchestrator
	}
}

func NewService(repo ports.Repository, picks ports.OrderPicks, fleet []domain.Bot, opts ...Option) *Service {
	s := &Service{repo: repo, picks: picks, fleet: fleet}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Routes plans the order's pickup paths and returns the stored result.
func (s *Service) Routes(ctx context.Context, orderID int64, parallel bool) ([]*domain.Plan, error) {
	request := ports.PlanRequest{OrderID: orderID, Parallel: parallel}
	if s.workflows != nil {
		if err := s.workflows.PlanRoutes(ctx, request); err != nil {
			return nil, err
		}
	} else if err := s.ComputeAndStore(ctx, request); err != nil {
		return nil, err
	}
	return s.repo.FindByOrderID(ctx, orderID)
}

// ComputeAndStore runs one planning pass. Exposed separately so the
// durable workflow activity can invoke it.
func (s *Service) ComputeAndStore(ctx context.Context, request ports.PlanRequest) error {
	stops, err := s.picks.StopsForOrder(ctx, request.OrderID)
	if err != nil {
		return err
	}

	var plans []*domain.Plan
	if request.Parallel {
		plans, err = domain.PlanParallel(request.OrderID, s.fleet, stops)
		if err != nil {
			return err
		}
	} else {
		if len(s.fleet) == 0 {
			return domain.ErrNoBots
		}
		plans = []*domain.Plan{domain.PlanSingle(request.OrderID, s.fleet[0], stops)}
	}
	return s.repo.Replace(ctx, request.OrderID, plans)
}

// IsNotFound reports whether err marks an unknown order id.
func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrOrderNotFound)
}

var (
	_ ports.Service = (*Service)(nil)
	_ ports.Planner = (*Service)(nil)
)
