package inventory

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseStock tracks the quantity of one product in one warehouse.
// A row is created on first write; the only deletion path is warehouse deletion.
type WarehouseStock struct {
	shared.BaseAggregateRoot
	WarehouseID uuid.UUID
	ProductID   uuid.UUID
	Quantity    decimal.Decimal
}

// NewWarehouseStock creates a stock row for a warehouse-product pair
func NewWarehouseStock(warehouseID, productID uuid.UUID, quantity decimal.Decimal) (*WarehouseStock, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewValidationError("Warehouse ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}

	return &WarehouseStock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarehouseID:       warehouseID,
		ProductID:         productID,
		Quantity:          quantity,
	}, nil
}

// SetQuantity sets the quantity directly
func (s *WarehouseStock) SetQuantity(quantity decimal.Decimal) {
	s.Quantity = quantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Increment adds quantity. The result is not checked for sign; only the
// transfer path pre-checks availability.
func (s *WarehouseStock) Increment(quantity decimal.Decimal) {
	s.Quantity = s.Quantity.Add(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Decrement removes quantity. May go negative.
func (s *WarehouseStock) Decrement(quantity decimal.Decimal) {
	s.Quantity = s.Quantity.Sub(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// HasAtLeast returns true if the row holds at least the given quantity
func (s *WarehouseStock) HasAtLeast(quantity decimal.Decimal) bool {
	return s.Quantity.GreaterThanOrEqual(quantity)
}
