package persistence

import (
	"context"

	appledger "github.com/backoffice/core/internal/application/ledger"
	"github.com/backoffice/core/internal/domain/partner"
	"gorm.io/gorm"
)

// GormLedgerTransactionScope implements the ledger TransactionScope using
// GORM transactions
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormLedgerRepositories{tx: tx})
	})
}

type gormLedgerRepositories struct {
	tx *gorm.DB
}

// CounterpartyRepo returns the counterparty repository scoped to the current transaction
func (r *gormLedgerRepositories) CounterpartyRepo() partner.CounterpartyRepository {
	return NewGormCounterpartyRepository(r.tx)
}

// MovementRepo returns the ledger movement repository scoped to the current transaction
func (r *gormLedgerRepositories) MovementRepo() partner.LedgerMovementRepository {
	return NewGormLedgerMovementRepository(r.tx)
}

var _ appledger.TransactionScope = (*GormLedgerTransactionScope)(nil)
var _ appledger.TransactionalRepositories = (*gormLedgerRepositories)(nil)
