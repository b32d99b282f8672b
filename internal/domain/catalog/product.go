package catalog

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item. Stock may be tracked globally on the
// product and, independently, per warehouse (see inventory.WarehouseStock).
type Product struct {
	shared.BaseAggregateRoot
	Name          string
	Barcode       *string // unique when present
	Price         decimal.Decimal
	LastBuyPrice  decimal.Decimal
	StockQuantity decimal.Decimal
	Unit          string
	CategoryID    *uuid.UUID
}

// NewProduct creates a new product
func NewProduct(name string, price decimal.Decimal, unit string) (*Product, error) {
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Product name cannot exceed 200 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Product price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Price:             price,
		LastBuyPrice:      decimal.Zero,
		StockQuantity:     decimal.Zero,
		Unit:              unit,
	}, nil
}

// SetBarcode sets the product barcode. Uniqueness is enforced by the store.
func (p *Product) SetBarcode(barcode string) error {
	if barcode == "" {
		return shared.NewValidationError("Barcode cannot be empty")
	}
	p.Barcode = &barcode
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Rename updates the product name
func (p *Product) Rename(name string) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Product name cannot exceed 200 characters")
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetUnit updates the unit of measure
func (p *Product) SetUnit(unit string) {
	p.Unit = unit
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetCategory assigns the product to a category
func (p *Product) SetCategory(categoryID uuid.UUID) {
	p.CategoryID = &categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPrice updates the sale price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewValidationError("Product price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// RecordBuyPrice records the most recent purchase price
func (p *Product) RecordBuyPrice(price decimal.Decimal) {
	p.LastBuyPrice = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetStock sets the global stock quantity directly
func (p *Product) SetStock(quantity decimal.Decimal) {
	p.StockQuantity = quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IncrementStock adds quantity to the global stock.
// The result is not checked for sign; callers needing a guarantee pre-check.
func (p *Product) IncrementStock(quantity decimal.Decimal) {
	p.StockQuantity = p.StockQuantity.Add(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// DecrementStock removes quantity from the global stock. May go negative.
func (p *Product) DecrementStock(quantity decimal.Decimal) {
	p.StockQuantity = p.StockQuantity.Sub(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
