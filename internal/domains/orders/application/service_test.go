package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	catalogmemory "github.com/pickbotics/storefront/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/pickbotics/storefront/internal/domains/catalog/domain"
	"github.com/pickbotics/storefront/internal/domains/orders/adapters/inventory"
	ordersmemory "github.com/pickbotics/storefront/internal/domains/orders/adapters/memory"
	"github.com/pickbotics/storefront/internal/domains/orders/domain"
	apperrors "github.com/pickbotics/storefront/internal/shared/errors"
)

func newFixture(t *testing.T, products ...*catalogdomain.Product) (*Service, *catalogmemory.Repository) {
	t.Helper()
	catalog := catalogmemory.NewRepository()
	for _, product := range products {
		_, err := catalog.Save(context.Background(), product)
		require.NoError(t, err)
	}
	svc := NewService(ordersmemory.NewRepository(), inventory.NewCatalogInventory(catalog))
	return svc, catalog
}

func milk(quantity int) *catalogdomain.Product {
	return &catalogdomain.Product{Name: "Milk", Quantity: quantity, Price: 1.5, Location: catalogdomain.GridCell{X: 1, Y: 2}}
}

func bread(quantity int) *catalogdomain.Product {
	return &catalogdomain.Product{Name: "Bread", Quantity: quantity, Price: 2, Location: catalogdomain.GridCell{X: 3, Y: 4}}
}

func TestPlaceOrder_ConfirmsAndDecrementsStock(t *testing.T) {
	svc, catalog := newFixture(t, milk(5), bread(2))

	placement, err := svc.PlaceOrder(context.Background(), []domain.OrderLine{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 2},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusSuccess, placement.Status)
	require.Equal(t, int64(1), placement.OrderID)
	require.Equal(t, "Order ready! Please collect it at the desk", placement.Message)
	require.Empty(t, placement.MissingItems)

	remaining, err := catalog.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, remaining.Quantity)
	remaining, err = catalog.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 0, remaining.Quantity)
}

func TestPlaceOrder_ShortfallRejectsWithoutTouchingStock(t *testing.T) {
	svc, catalog := newFixture(t, milk(2), bread(5))

	placement, err := svc.PlaceOrder(context.Background(), []domain.OrderLine{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusFail, placement.Status)
	require.Equal(t, "Insufficient availability", placement.Message)
	require.Equal(t, []domain.Shortage{{ProductName: "Milk", Requested: 3, Available: 2}}, placement.MissingItems)

	remaining, err := catalog.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 5, remaining.Quantity, "rejected orders must not reserve any line")
}

func TestPlaceOrder_ReportsEveryShortfall(t *testing.T) {
	svc, _ := newFixture(t, milk(1), bread(0))

	placement, err := svc.PlaceOrder(context.Background(), []domain.OrderLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusFail, placement.Status)
	require.Len(t, placement.MissingItems, 2)
}

func TestPlaceOrder_MergesDuplicateLinesForAvailability(t *testing.T) {
	svc, _ := newFixture(t, milk(3))

	placement, err := svc.PlaceOrder(context.Background(), []domain.OrderLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 2},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusFail, placement.Status)
	require.Equal(t, []domain.Shortage{{ProductName: "Milk", Requested: 4, Available: 3}}, placement.MissingItems)
}

func TestPlaceOrder_EmptyOrderIsAFieldError(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.PlaceOrder(context.Background(), nil)
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	_, ok := fieldErrs.Field(apperrors.FieldInvalid)
	require.True(t, ok)
}

func TestPlaceOrder_UnknownProductIsNotFound(t *testing.T) {
	svc, _ := newFixture(t, milk(5))

	_, err := svc.PlaceOrder(context.Background(), []domain.OrderLine{{ProductID: 42, Quantity: 1}})
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	_, ok := fieldErrs.Field(apperrors.FieldNotFound)
	require.True(t, ok)
}

func TestIsProductOrdered(t *testing.T) {
	svc, _ := newFixture(t, milk(5), bread(5))

	_, err := svc.PlaceOrder(context.Background(), []domain.OrderLine{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	ordered, err := svc.IsProductOrdered(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ordered)

	ordered, err = svc.IsProductOrdered(context.Background(), 2)
	require.NoError(t, err)
	require.False(t, ordered)
}

func TestFindByID_Missing(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.FindByID(context.Background(), 9)
	var fieldErrs *apperrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
}
