package memory

import (
	"context"
	"sync"

	"github.com/pickbotics/storefront/internal/domains/routes/domain"
	"github.com/pickbotics/storefront/internal/domains/routes/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory route plan store.
type Repository struct {
	mu    sync.RWMutex
	plans map[int64][]*domain.Plan
}

func NewRepository() *Repository {
	return &Repository{plans: map[int64][]*domain.Plan{}}
}

func clonePlan(plan *domain.Plan) *domain.Plan {
	clone := *plan
	clone.Path = append([]domain.Cell(nil), plan.Path...)
	return &clone
}

func clonePlans(plans []*domain.Plan) []*domain.Plan {
	cloned := make([]*domain.Plan, 0, len(plans))
	for _, plan := range plans {
		cloned = append(cloned, clonePlan(plan))
	}
	return cloned
}

func (r *Repository) Replace(_ context.Context, orderID int64, plans []*domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[orderID] = clonePlans(plans)
	return nil
}

func (r *Repository) FindByOrderID(_ context.Context, orderID int64) ([]*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonePlans(r.plans[orderID]), nil
}
