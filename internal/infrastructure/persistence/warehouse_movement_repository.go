package persistence

import (
	"context"

	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/backoffice/core/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWarehouseMovementRepository implements WarehouseMovementRepository using
// GORM. The movement trail is append-only.
type GormWarehouseMovementRepository struct {
	db *gorm.DB
}

// NewGormWarehouseMovementRepository creates a new GormWarehouseMovementRepository
func NewGormWarehouseMovementRepository(db *gorm.DB) *GormWarehouseMovementRepository {
	return &GormWarehouseMovementRepository{db: db}
}

// Append persists a new warehouse movement record
func (r *GormWarehouseMovementRepository) Append(ctx context.Context, movement *inventory.WarehouseMovement) error {
	var model models.WarehouseMovementModel
	model.FromDomain(movement)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByWarehouse finds all movements touching a warehouse as source or
// target, newest first
func (r *GormWarehouseMovementRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]inventory.WarehouseMovement, error) {
	var list []models.WarehouseMovementModel
	if err := r.db.WithContext(ctx).
		Where("source_warehouse_id = ? OR target_warehouse_id = ?", warehouseID, warehouseID).
		Order("movement_date DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toWarehouseMovements(list), nil
}

// FindByProduct finds all movements of a product, newest first
func (r *GormWarehouseMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.WarehouseMovement, error) {
	var list []models.WarehouseMovementModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("movement_date DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toWarehouseMovements(list), nil
}

func toWarehouseMovements(list []models.WarehouseMovementModel) []inventory.WarehouseMovement {
	result := make([]inventory.WarehouseMovement, 0, len(list))
	for i := range list {
		result = append(result, *list[i].ToDomain())
	}
	return result
}

// Ensure GormWarehouseMovementRepository implements WarehouseMovementRepository
var _ inventory.WarehouseMovementRepository = (*GormWarehouseMovementRepository)(nil)
