package persistence

import (
	"context"

	apppartner "github.com/backoffice/core/internal/application/partner"
	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/backoffice/core/internal/domain/partner"
	"gorm.io/gorm"
)

// GormWarehouseTransactionScope implements the warehouse TransactionScope
// using GORM transactions. Deleting a warehouse and its stock rows commits
// or rolls back together.
type GormWarehouseTransactionScope struct {
	db *gorm.DB
}

// NewGormWarehouseTransactionScope creates a new GormWarehouseTransactionScope
func NewGormWarehouseTransactionScope(db *gorm.DB) *GormWarehouseTransactionScope {
	return &GormWarehouseTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormWarehouseTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormWarehouseRepositories{tx: tx})
	})
}

type gormWarehouseRepositories struct {
	tx *gorm.DB
}

// WarehouseRepo returns the warehouse repository scoped to the current transaction
func (r *gormWarehouseRepositories) WarehouseRepo() partner.WarehouseRepository {
	return NewGormWarehouseRepository(r.tx)
}

// StockRepo returns the warehouse stock repository scoped to the current transaction
func (r *gormWarehouseRepositories) StockRepo() inventory.WarehouseStockRepository {
	return NewGormWarehouseStockRepository(r.tx)
}

var _ apppartner.TransactionScope = (*GormWarehouseTransactionScope)(nil)
var _ apppartner.TransactionalRepositories = (*gormWarehouseRepositories)(nil)
