package ports

import (
	"context"

	"github.com/pickbotics/storefront/internal/domains/orders/domain"
)

// Service exposes the order use cases to the transport layer.
type Service interface {
	PlaceOrder(ctx context.Context, lines []domain.OrderLine) (*domain.Placement, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
}
