package application

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	catalogmemory "github.com/pickbotics/storefront/internal/domains/catalog/adapters/memory"
	"github.com/pickbotics/storefront/internal/domains/catalog/domain"
	apperrors "github.com/pickbotics/storefront/internal/shared/errors"
)

type stubUsage struct {
	ordered map[int64]bool
}

func (s *stubUsage) IsProductOrdered(_ context.Context, productID int64) (bool, error) {
	return s.ordered[productID], nil
}

func seedProduct(t *testing.T, svc *Service, name string, x, y int) *domain.Product {
	t.Helper()
	saved, err := svc.Create(context.Background(), &domain.Product{
		Name:     name,
		Quantity: 5,
		Price:    2.5,
		Location: domain.GridCell{X: x, Y: y},
	})
	require.NoError(t, err)
	return saved
}

func TestCreate_AssignsID(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), nil)
	saved := seedProduct(t, svc, "Milk", 1, 2)
	require.Equal(t, int64(1), saved.ID)
	require.Equal(t, "Milk", saved.Name)
}

func TestCreate_RejectsDepotCell(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), nil)
	_, err := svc.Create(context.Background(), &domain.Product{
		Name: "Milk", Quantity: 1, Price: 1, Location: domain.GridCell{X: 0, Y: 0},
	})
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	msg, ok := fieldErrs.Field(apperrors.FieldLocation)
	require.True(t, ok)
	require.Equal(t, "Location can't be {0:0}", msg)
}

func TestCreate_DuplicateNameAndLocationAggregate(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), nil)
	seedProduct(t, svc, "Milk", 1, 2)

	_, err := svc.Create(context.Background(), &domain.Product{
		Name: "milk", Quantity: 1, Price: 1, Location: domain.GridCell{X: 1, Y: 2},
	})
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	_, hasName := fieldErrs.Field(apperrors.FieldName)
	_, hasLocation := fieldErrs.Field(apperrors.FieldLocationOccupied)
	require.True(t, hasName)
	require.True(t, hasLocation, "both conflicts must be reported in one round trip")
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), nil)
	_, err := svc.Update(context.Background(), 99, &domain.Product{
		Name: "Milk", Quantity: 1, Price: 1, Location: domain.GridCell{X: 1, Y: 1},
	})
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, http.StatusNotFound, fieldErrs.Status)
}

func TestUpdate_OwnLocationIsNotAConflict(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), nil)
	saved := seedProduct(t, svc, "Milk", 1, 2)

	updated, err := svc.Update(context.Background(), saved.ID, &domain.Product{
		Name: "Milk", Quantity: 9, Price: 2, Location: domain.GridCell{X: 1, Y: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 9, updated.Quantity)
}

func TestUpdate_OccupiedLocationConflicts(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), nil)
	seedProduct(t, svc, "Milk", 1, 2)
	bread := seedProduct(t, svc, "Bread", 3, 4)

	_, err := svc.Update(context.Background(), bread.ID, &domain.Product{
		Name: "Bread", Quantity: 1, Price: 1, Location: domain.GridCell{X: 1, Y: 2},
	})
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	_, ok := fieldErrs.Field(apperrors.FieldLocationOccupied)
	require.True(t, ok)
}

func TestDelete_ProductInOrderIsBlocked(t *testing.T) {
	repo := catalogmemory.NewRepository()
	svc := NewService(repo, &stubUsage{ordered: map[int64]bool{1: true}})
	seedProduct(t, svc, "Milk", 1, 2)

	err := svc.Delete(context.Background(), 1)
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	msg, ok := fieldErrs.Field(apperrors.FieldInvalid)
	require.True(t, ok)
	require.Equal(t, "Cannot delete product. It is part of an existing order.", msg)
}

func TestDelete_RemovesProduct(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), &stubUsage{})
	saved := seedProduct(t, svc, "Milk", 1, 2)

	require.NoError(t, svc.Delete(context.Background(), saved.ID))
	_, err := svc.FindByID(context.Background(), saved.ID)
	require.Error(t, err)
}

func TestFindAll_EmptyCatalogIsValid(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository(), nil)
	products, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, products)
}
