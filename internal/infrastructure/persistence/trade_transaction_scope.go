package persistence

import (
	"context"

	apptrade "github.com/backoffice/core/internal/application/trade"
	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTradeTransactionScope implements the trade TransactionScope using GORM
// transactions. Purchase and sales operations span documents, products, and
// the counterparty ledger; all writes commit or roll back together.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTradeRepositories{tx: tx})
	})
}

type gormTradeRepositories struct {
	tx *gorm.DB
}

// DocumentRepo returns the purchase document repository scoped to the current transaction
func (r *gormTradeRepositories) DocumentRepo() trade.PurchaseDocumentRepository {
	return NewGormPurchaseDocumentRepository(r.tx)
}

// SalesRepo returns the sales line repository scoped to the current transaction
func (r *gormTradeRepositories) SalesRepo() trade.SalesLineRepository {
	return NewGormSalesLineRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormTradeRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// CounterpartyRepo returns the counterparty repository scoped to the current transaction
func (r *gormTradeRepositories) CounterpartyRepo() partner.CounterpartyRepository {
	return NewGormCounterpartyRepository(r.tx)
}

// LedgerMovementRepo returns the ledger movement repository scoped to the current transaction
func (r *gormTradeRepositories) LedgerMovementRepo() partner.LedgerMovementRepository {
	return NewGormLedgerMovementRepository(r.tx)
}

var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)
var _ apptrade.TransactionalRepositories = (*gormTradeRepositories)(nil)
