package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pickbotics/storefront/internal/domains/orders/domain"
	"github.com/pickbotics/storefront/internal/domains/orders/ports"
	apperrors "github.com/pickbotics/storefront/internal/shared/errors"
)

// Service orchestrates order placement against the catalog's stock.
type Service struct {
	repo      ports.Repository
	inventory ports.Inventory
}

func NewService(repo ports.Repository, inventory ports.Inventory) *Service {
	return &Service{repo: repo, inventory: inventory}
}

// PlaceOrder checks availability for every line before touching stock. When
// any line falls short the whole order is rejected and no stock changes; the
// returned placement lists every shortage found. A confirmed order reserves
// stock and is persisted in one pass.
func (s *Service) PlaceOrder(ctx context.Context, lines []domain.OrderLine) (*domain.Placement, error) {
	order := &domain.Order{Lines: lines, CreatedAt: time.Now().UTC()}
	if err := order.Validate(); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoItems):
			return nil, apperrors.Single(apperrors.FieldInvalid, "Order must contain at least one item")
		case errors.Is(err, domain.ErrNonPositiveCount):
			return nil, apperrors.Single(apperrors.FieldQuantity, "Item quantity must be positive")
		default:
			return nil, err
		}
	}

	requested := make(map[int64]int, len(lines))
	for _, line := range lines {
		requested[line.ProductID] += line.Quantity
	}

	var missing []domain.Shortage
	for _, line := range lines {
		total, pending := requested[line.ProductID]
		if !pending {
			continue
		}
		delete(requested, line.ProductID)

		stock, err := s.inventory.GetStock(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, ports.ErrStockNotFound) {
				return nil, apperrors.Single(apperrors.FieldNotFound,
					fmt.Sprintf("Product with id %d not found", line.ProductID)).
					WithStatus(http.StatusNotFound)
			}
			return nil, err
		}
		if total > stock.Available {
			missing = append(missing, domain.Shortage{
				ProductName: stock.Name,
				Requested:   total,
				Available:   stock.Available,
			})
		}
	}
	if len(missing) > 0 {
		return domain.Rejected(missing), nil
	}

	if err := s.inventory.Reserve(ctx, order.Lines); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	return domain.Confirmed(saved.ID), nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, apperrors.NotFound("Order", id)
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// IsProductOrdered lets the catalog context block deleting products that
// appear in existing orders.
func (s *Service) IsProductOrdered(ctx context.Context, productID int64) (bool, error) {
	return s.repo.ContainsProduct(ctx, productID)
}

var _ ports.Service = (*Service)(nil)
