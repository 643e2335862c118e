package inventory

import (
	"context"
	"errors"
	"fmt"

	catalogports "github.com/pickbotics/storefront/internal/domains/catalog/ports"
	"github.com/pickbotics/storefront/internal/domains/orders/domain"
	"github.com/pickbotics/storefront/internal/domains/orders/ports"
)

// CatalogInventory adapts the catalog repository to the orders inventory
// port, keeping the two contexts coupled only through this seam.
type CatalogInventory struct {
	products catalogports.Repository
}

func NewCatalogInventory(products catalogports.Repository) *CatalogInventory {
	return &CatalogInventory{products: products}
}

func (a *CatalogInventory) GetStock(ctx context.Context, productID int64) (*ports.StockItem, error) {
	product, err := a.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, ports.ErrStockNotFound
		}
		return nil, err
	}
	return &ports.StockItem{
		ProductID: product.ID,
		Name:      product.Name,
		Available: product.Quantity,
	}, nil
}

// Reserve decrements stock for every line. Callers check availability first;
// a shortfall here means the catalog changed underneath us and is an error.
func (a *CatalogInventory) Reserve(ctx context.Context, lines []domain.OrderLine) error {
	for _, line := range lines {
		product, err := a.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, catalogports.ErrNotFound) {
				return ports.ErrStockNotFound
			}
			return err
		}
		if err := product.Reserve(line.Quantity); err != nil {
			return fmt.Errorf("reserve %q: %w", product.Name, err)
		}
		if _, err := a.products.Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

var _ ports.Inventory = (*CatalogInventory)(nil)
