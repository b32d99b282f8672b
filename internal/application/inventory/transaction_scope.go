package inventory

import (
	"context"

	"github.com/backoffice/core/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and are committed or
// rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction
type TransactionalRepositories interface {
	// StockRepo returns the warehouse stock repository scoped to the current transaction
	StockRepo() inventory.WarehouseStockRepository
	// MovementRepo returns the warehouse movement repository scoped to the current transaction
	MovementRepo() inventory.WarehouseMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	stockRepo    inventory.WarehouseStockRepository
	movementRepo inventory.WarehouseMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	stockRepo inventory.WarehouseStockRepository,
	movementRepo inventory.WarehouseMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockRepo returns the warehouse stock repository.
func (s *NoOpTransactionScope) StockRepo() inventory.WarehouseStockRepository {
	return s.stockRepo
}

// MovementRepo returns the warehouse movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.WarehouseMovementRepository {
	return s.movementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
