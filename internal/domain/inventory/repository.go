package inventory

import (
	"context"

	"github.com/google/uuid"
)

// WarehouseStockRepository defines persistence operations for warehouse stock rows
type WarehouseStockRepository interface {
	FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*WarehouseStock, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]WarehouseStock, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]WarehouseStock, error)
	Save(ctx context.Context, stock *WarehouseStock) error
	DeleteByWarehouse(ctx context.Context, warehouseID uuid.UUID) error
}

// WarehouseMovementRepository defines persistence operations for the
// append-only movement audit trail
type WarehouseMovementRepository interface {
	Append(ctx context.Context, movement *WarehouseMovement) error
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]WarehouseMovement, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]WarehouseMovement, error)
}
