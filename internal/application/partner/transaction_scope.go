package partner

import (
	"context"

	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/backoffice/core/internal/domain/partner"
)

// TransactionScope provides transactional access to the warehouse and stock
// repositories. Deleting a warehouse removes the warehouse row and all of
// its stock rows atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction
type TransactionalRepositories interface {
	// WarehouseRepo returns the warehouse repository scoped to the current transaction
	WarehouseRepo() partner.WarehouseRepository
	// StockRepo returns the warehouse stock repository scoped to the current transaction
	StockRepo() inventory.WarehouseStockRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	warehouseRepo partner.WarehouseRepository
	stockRepo     inventory.WarehouseStockRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	warehouseRepo partner.WarehouseRepository,
	stockRepo inventory.WarehouseStockRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// WarehouseRepo returns the warehouse repository.
func (s *NoOpTransactionScope) WarehouseRepo() partner.WarehouseRepository {
	return s.warehouseRepo
}

// StockRepo returns the warehouse stock repository.
func (s *NoOpTransactionScope) StockRepo() inventory.WarehouseStockRepository {
	return s.stockRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
