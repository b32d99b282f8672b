package persistence

import (
	"context"

	appinv "github.com/backoffice/core/internal/application/inventory"
	"github.com/backoffice/core/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. A transfer's two stock writes and its audit
// append commit or roll back together.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

type gormInventoryRepositories struct {
	tx *gorm.DB
}

// StockRepo returns the warehouse stock repository scoped to the current transaction
func (r *gormInventoryRepositories) StockRepo() inventory.WarehouseStockRepository {
	return NewGormWarehouseStockRepository(r.tx)
}

// MovementRepo returns the warehouse movement repository scoped to the current transaction
func (r *gormInventoryRepositories) MovementRepo() inventory.WarehouseMovementRepository {
	return NewGormWarehouseMovementRepository(r.tx)
}

var _ appinv.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*gormInventoryRepositories)(nil)
