package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/pickbotics/storefront/internal/domains/catalog/domain"
	"github.com/pickbotics/storefront/internal/domains/catalog/ports"
	apperrors "github.com/pickbotics/storefront/internal/shared/errors"
)

// Service orchestrates catalog use cases. Validation failures surface as
// field-keyed errors so the transport can return them verbatim.
type Service struct {
	repo  ports.Repository
	usage ports.UsageChecker
}

// NewService wires the catalog service. usage may be nil, in which case
// deletes skip the in-order check.
func NewService(repo ports.Repository, usage ports.UsageChecker) *Service {
	return &Service{repo: repo, usage: usage}
}

func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	fieldErrs := apperrors.NewFieldErrors()
	s.collectInvariantErrors(product, fieldErrs)

	if existing, err := s.repo.GetByName(ctx, product.Name); err == nil && existing != nil {
		fieldErrs.Add(apperrors.FieldName, "Product with this name already exists")
	} else if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	if err := s.checkLocationFree(ctx, product, 0, fieldErrs); err != nil {
		return nil, err
	}
	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}
	product.ID = 0
	return s.repo.Save(ctx, product)
}

func (s *Service) Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if id <= 0 {
		return nil, apperrors.Single(apperrors.FieldInvalid, "Invalid product ID")
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, apperrors.Single(apperrors.FieldNotFound, "Product not found").
				WithStatus(http.StatusNotFound)
		}
		return nil, err
	}

	fieldErrs := apperrors.NewFieldErrors()
	s.collectInvariantErrors(product, fieldErrs)
	if err := s.checkLocationFree(ctx, product, id, fieldErrs); err != nil {
		return nil, err
	}
	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}
	product.ID = id
	return s.repo.Save(ctx, product)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.Single(apperrors.FieldInvalid, "Invalid product ID")
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return apperrors.Single(apperrors.FieldInvalid, "Product not found")
		}
		return err
	}
	if s.usage != nil {
		ordered, err := s.usage.IsProductOrdered(ctx, id)
		if err != nil {
			return err
		}
		if ordered {
			return apperrors.Single(apperrors.FieldInvalid, "Cannot delete product. It is part of an existing order.")
		}
	}
	return s.repo.Delete(ctx, id)
}

// FindAll returns the full catalog. An empty catalog is a valid result.
func (s *Service) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, apperrors.NotFound("Product", id)
		}
		return nil, err
	}
	return product, nil
}

// collectInvariantErrors maps domain sentinels onto their field keys.
func (s *Service) collectInvariantErrors(product *domain.Product, fieldErrs *apperrors.FieldErrors) {
	switch err := product.Validate(); {
	case err == nil:
	case errors.Is(err, domain.ErrEmptyName):
		fieldErrs.Add(apperrors.FieldName, "Product name is required")
	case errors.Is(err, domain.ErrNegativeQuantity):
		fieldErrs.Add(apperrors.FieldQuantity, "Quantity must be zero or greater")
	case errors.Is(err, domain.ErrNegativePrice):
		fieldErrs.Add(apperrors.FieldPrice, "Price must be zero or greater")
	case errors.Is(err, domain.ErrReservedLocation):
		fieldErrs.Add(apperrors.FieldLocation, "Location can't be {0:0}")
	default:
		fieldErrs.Add(apperrors.FieldGeneral, err.Error())
	}
}

// checkLocationFree flags the grid cell when another product occupies it.
// selfID excludes the product being updated from the conflict check.
func (s *Service) checkLocationFree(ctx context.Context, product *domain.Product, selfID int64, fieldErrs *apperrors.FieldErrors) error {
	occupant, err := s.repo.GetByLocation(ctx, product.Location)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		return err
	}
	if occupant != nil && occupant.ID != selfID {
		fieldErrs.Add(apperrors.FieldLocationOccupied, "Location is already occupied by another product")
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
