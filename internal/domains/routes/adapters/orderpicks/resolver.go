// Package orderpicks resolves order lines into planner stops by joining
// the orders and catalog contexts.
package orderpicks

import (
	"context"
	"errors"

	catalogports "github.com/pickbotics/storefront/internal/domains/catalog/ports"
	ordersports "github.com/pickbotics/storefront/internal/domains/orders/ports"
	"github.com/pickbotics/storefront/internal/domains/routes/domain"
	"github.com/pickbotics/storefront/internal/domains/routes/ports"
)

var _ ports.OrderPicks = (*Resolver)(nil)

type Resolver struct {
	orders   ordersports.Repository
	products catalogports.Repository
}

func NewResolver(orders ordersports.Repository, products catalogports.Repository) *Resolver {
	return &Resolver{orders: orders, products: products}
}

// StopsForOrder yields one stop per order line, preserving line order so
// single-mode route names match the submitted item sequence.
func (r *Resolver) StopsForOrder(ctx context.Context, orderID int64) ([]domain.Stop, error) {
	order, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ordersports.ErrNotFound) {
			return nil, ports.ErrOrderNotFound
		}
		return nil, err
	}
	stops := make([]domain.Stop, 0, len(order.Lines))
	for _, line := range order.Lines {
		product, err := r.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, catalogports.ErrNotFound) {
				// The product was removed after the order was placed;
				// there is nothing left to pick up for this line.
				continue
			}
			return nil, err
		}
		stops = append(stops, domain.Stop{
			Name: product.Name,
			Cell: domain.Cell{X: product.Location.X, Y: product.Location.Y},
		})
	}
	return stops, nil
}
