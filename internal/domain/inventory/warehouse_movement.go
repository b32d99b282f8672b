package inventory

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseMovement is an immutable audit record of quantity moved between
// warehouse buckets. A nil source or target denotes an external endpoint
// (initial load, write-off).
type WarehouseMovement struct {
	shared.BaseEntity
	SourceWarehouseID *uuid.UUID
	TargetWarehouseID *uuid.UUID
	ProductID         uuid.UUID
	Quantity          decimal.Decimal
	Description       string
	UserID            *uuid.UUID
	MovementDate      time.Time
}

// NewWarehouseMovement creates a new warehouse movement record
func NewWarehouseMovement(
	sourceWarehouseID *uuid.UUID,
	targetWarehouseID *uuid.UUID,
	productID uuid.UUID,
	quantity decimal.Decimal,
	description string,
	userID *uuid.UUID,
) (*WarehouseMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Movement quantity must be positive")
	}
	if sourceWarehouseID == nil && targetWarehouseID == nil {
		return nil, shared.NewValidationError("Movement must reference at least one warehouse")
	}

	return &WarehouseMovement{
		BaseEntity:        shared.NewBaseEntity(),
		SourceWarehouseID: sourceWarehouseID,
		TargetWarehouseID: targetWarehouseID,
		ProductID:         productID,
		Quantity:          quantity,
		Description:       description,
		UserID:            userID,
		MovementDate:      time.Now(),
	}, nil
}

// IsTransfer returns true when both endpoints are warehouses
func (m *WarehouseMovement) IsTransfer() bool {
	return m.SourceWarehouseID != nil && m.TargetWarehouseID != nil
}
