package ports

import (
	"context"
	"errors"

	"github.com/pickbotics/storefront/internal/domains/orders/domain"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrStockNotFound = errors.New("product not found in catalog")
)

// Repository persists order aggregates.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// ContainsProduct reports whether any stored order references the product.
	ContainsProduct(ctx context.Context, productID int64) (bool, error)
}

// StockItem is the slice of the catalog an order placement needs: identity,
// the display name used in shortage reports, and current availability.
type StockItem struct {
	ProductID int64
	Name      string
	Available int
}

// Inventory is the catalog-facing port. Reserve decrements stock for every
// line at once and is only called after availability has been checked.
type Inventory interface {
	GetStock(ctx context.Context, productID int64) (*StockItem, error)
	Reserve(ctx context.Context, lines []domain.OrderLine) error
}
