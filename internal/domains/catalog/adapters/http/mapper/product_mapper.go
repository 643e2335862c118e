// Package mapper converts between the catalog wire payloads and the domain
// aggregate. Locations travel as {x,y} objects.
package mapper

import (
	"github.com/pickbotics/storefront/internal/domains/catalog/domain"
)

// Location is the wire form of a grid cell.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Product is the wire form of a catalog entry.
type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Location Location `json:"location"`
}

// MutationProduct is the id-less payload for create and update calls.
type MutationProduct struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Location Location `json:"location"`
}

// ToDomain builds the aggregate from a mutation payload without validating;
// validation stays in the application layer so field errors aggregate.
func ToDomain(payload MutationProduct) *domain.Product {
	return &domain.Product{
		Name:     payload.Name,
		Quantity: payload.Quantity,
		Price:    payload.Price,
		Location: domain.GridCell{X: payload.Location.X, Y: payload.Location.Y},
	}
}

// FromDomain maps the aggregate onto the wire form.
func FromDomain(product *domain.Product) Product {
	return Product{
		ID:       product.ID,
		Name:     product.Name,
		Quantity: product.Quantity,
		Price:    product.Price,
		Location: Location{X: product.Location.X, Y: product.Location.Y},
	}
}

// FromDomainList maps a catalog slice, always yielding a non-nil slice so
// an empty catalog serializes as [].
func FromDomainList(products []*domain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomain(product))
	}
	return result
}
