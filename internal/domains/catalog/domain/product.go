package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("product name is required")
	ErrNegativeQuantity = errors.New("quantity must be zero or greater")
	ErrNegativePrice    = errors.New("price must be zero or greater")
	ErrReservedLocation = errors.New("location can't be {0:0}")
)

// GridCell is one warehouse grid coordinate.
type GridCell struct {
	X int
	Y int
}

// IsDepot reports whether the cell is the bots' shared drop-off point,
// which no product may occupy.
func (c GridCell) IsDepot() bool { return c.X == 0 && c.Y == 0 }

// Product is the catalog aggregate. Each product occupies exactly one grid
// cell; cell uniqueness across the catalog is enforced by the repositories.
type Product struct {
	ID       int64
	Name     string
	Quantity int
	Price    float64
	Location GridCell
}

// NewProduct validates and constructs a product aggregate.
func NewProduct(id int64, name string, quantity int, price float64, location GridCell) (*Product, error) {
	product := &Product{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Price:    price,
		Location: location,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces the aggregate invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Location.IsDepot() {
		return ErrReservedLocation
	}
	return nil
}

// Reserve decrements available stock by the requested quantity.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errors.New("reserved quantity must be positive")
	}
	if quantity > p.Quantity {
		return errors.New("reserved quantity exceeds availability")
	}
	p.Quantity -= quantity
	return nil
}
