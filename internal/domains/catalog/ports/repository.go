package ports

import (
	"context"
	"errors"

	"github.com/pickbotics/storefront/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists the product catalog. Save assigns the id on insert.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	GetByLocation(ctx context.Context, location domain.GridCell) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// UsageChecker answers whether a product is referenced by any placed order.
// The orders bounded context supplies the implementation.
type UsageChecker interface {
	IsProductOrdered(ctx context.Context, productID int64) (bool, error)
}
