package ports

import (
	"context"

	"github.com/pickbotics/storefront/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
}
