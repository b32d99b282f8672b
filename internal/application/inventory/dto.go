package inventory

import (
	"time"

	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockRequest addresses a stock bucket: a product globally, or a product
// within one warehouse when WarehouseID is set.
type StockRequest struct {
	ProductID   uuid.UUID       `json:"product_id" validate:"required"`
	WarehouseID *uuid.UUID      `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// TransferRequest represents a request to move quantity between two warehouses
type TransferRequest struct {
	SourceWarehouseID uuid.UUID       `json:"source_warehouse_id" validate:"required"`
	TargetWarehouseID uuid.UUID       `json:"target_warehouse_id" validate:"required"`
	ProductID         uuid.UUID       `json:"product_id" validate:"required"`
	Quantity          decimal.Decimal `json:"quantity" validate:"required"`
	Description       string          `json:"description" validate:"max=500"`
	UserID            *uuid.UUID      `json:"user_id"`
}

// StockResponse represents the quantity of one stock bucket
type StockResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	WarehouseID *uuid.UUID      `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// MovementResponse represents a warehouse movement in responses
type MovementResponse struct {
	ID                uuid.UUID       `json:"id"`
	SourceWarehouseID *uuid.UUID      `json:"source_warehouse_id"`
	TargetWarehouseID *uuid.UUID      `json:"target_warehouse_id"`
	ProductID         uuid.UUID       `json:"product_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	Description       string          `json:"description"`
	UserID            *uuid.UUID      `json:"user_id"`
	MovementDate      time.Time       `json:"movement_date"`
}

// NewMovementResponse converts a domain warehouse movement to a response
func NewMovementResponse(m *inventory.WarehouseMovement) *MovementResponse {
	return &MovementResponse{
		ID:                m.ID,
		SourceWarehouseID: m.SourceWarehouseID,
		TargetWarehouseID: m.TargetWarehouseID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		Description:       m.Description,
		UserID:            m.UserID,
		MovementDate:      m.MovementDate,
	}
}
