package trade

import (
	"context"

	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories touched
// by purchase and sales operations. A purchase invoice writes the document,
// product stock, and the supplier ledger; all of it commits or rolls back as
// one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the trade-side repositories
// within a transaction
type TransactionalRepositories interface {
	// DocumentRepo returns the purchase document repository scoped to the current transaction
	DocumentRepo() trade.PurchaseDocumentRepository
	// SalesRepo returns the sales line repository scoped to the current transaction
	SalesRepo() trade.SalesLineRepository
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// CounterpartyRepo returns the counterparty repository scoped to the current transaction
	CounterpartyRepo() partner.CounterpartyRepository
	// LedgerMovementRepo returns the ledger movement repository scoped to the current transaction
	LedgerMovementRepo() partner.LedgerMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	documentRepo       trade.PurchaseDocumentRepository
	salesRepo          trade.SalesLineRepository
	productRepo        catalog.ProductRepository
	counterpartyRepo   partner.CounterpartyRepository
	ledgerMovementRepo partner.LedgerMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	documentRepo trade.PurchaseDocumentRepository,
	salesRepo trade.SalesLineRepository,
	productRepo catalog.ProductRepository,
	counterpartyRepo partner.CounterpartyRepository,
	ledgerMovementRepo partner.LedgerMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		documentRepo:       documentRepo,
		salesRepo:          salesRepo,
		productRepo:        productRepo,
		counterpartyRepo:   counterpartyRepo,
		ledgerMovementRepo: ledgerMovementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// DocumentRepo returns the purchase document repository.
func (s *NoOpTransactionScope) DocumentRepo() trade.PurchaseDocumentRepository {
	return s.documentRepo
}

// SalesRepo returns the sales line repository.
func (s *NoOpTransactionScope) SalesRepo() trade.SalesLineRepository {
	return s.salesRepo
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// CounterpartyRepo returns the counterparty repository.
func (s *NoOpTransactionScope) CounterpartyRepo() partner.CounterpartyRepository {
	return s.counterpartyRepo
}

// LedgerMovementRepo returns the ledger movement repository.
func (s *NoOpTransactionScope) LedgerMovementRepo() partner.LedgerMovementRepository {
	return s.ledgerMovementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
