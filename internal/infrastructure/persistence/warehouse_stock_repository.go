package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWarehouseStockRepository implements WarehouseStockRepository using GORM
type GormWarehouseStockRepository struct {
	db *gorm.DB
}

// NewGormWarehouseStockRepository creates a new GormWarehouseStockRepository
func NewGormWarehouseStockRepository(db *gorm.DB) *GormWarehouseStockRepository {
	return &GormWarehouseStockRepository{db: db}
}

// FindByWarehouseAndProduct finds the stock row for a warehouse-product pair
func (r *GormWarehouseStockRepository) FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*inventory.WarehouseStock, error) {
	var model models.WarehouseStockModel
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByWarehouse finds all stock rows of a warehouse
func (r *GormWarehouseStockRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]inventory.WarehouseStock, error) {
	var list []models.WarehouseStockModel
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ?", warehouseID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toWarehouseStocks(list), nil
}

// FindByProduct finds all stock rows of a product across warehouses
func (r *GormWarehouseStockRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.WarehouseStock, error) {
	var list []models.WarehouseStockModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toWarehouseStocks(list), nil
}

// Save creates or updates a stock row
func (r *GormWarehouseStockRepository) Save(ctx context.Context, stock *inventory.WarehouseStock) error {
	var model models.WarehouseStockModel
	model.FromDomain(stock)
	return r.db.WithContext(ctx).Save(&model).Error
}

// DeleteByWarehouse deletes all stock rows of a warehouse
func (r *GormWarehouseStockRepository) DeleteByWarehouse(ctx context.Context, warehouseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.WarehouseStockModel{}, "warehouse_id = ?", warehouseID).Error
}

func toWarehouseStocks(list []models.WarehouseStockModel) []inventory.WarehouseStock {
	result := make([]inventory.WarehouseStock, 0, len(list))
	for i := range list {
		result = append(result, *list[i].ToDomain())
	}
	return result
}

// Ensure GormWarehouseStockRepository implements WarehouseStockRepository
var _ inventory.WarehouseStockRepository = (*GormWarehouseStockRepository)(nil)
