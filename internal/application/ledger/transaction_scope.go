package ledger

import (
	"context"

	"github.com/backoffice/core/internal/domain/partner"
)

// TransactionScope provides transactional access to ledger repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and are committed or
// rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories within
// a transaction. Both repositories share the same underlying transaction.
type TransactionalRepositories interface {
	// CounterpartyRepo returns the counterparty repository scoped to the current transaction
	CounterpartyRepo() partner.CounterpartyRepository
	// MovementRepo returns the ledger movement repository scoped to the current transaction
	MovementRepo() partner.LedgerMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	counterpartyRepo partner.CounterpartyRepository
	movementRepo     partner.LedgerMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	counterpartyRepo partner.CounterpartyRepository,
	movementRepo partner.LedgerMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		counterpartyRepo: counterpartyRepo,
		movementRepo:     movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CounterpartyRepo returns the counterparty repository.
func (s *NoOpTransactionScope) CounterpartyRepo() partner.CounterpartyRepository {
	return s.counterpartyRepo
}

// MovementRepo returns the ledger movement repository.
func (s *NoOpTransactionScope) MovementRepo() partner.LedgerMovementRepository {
	return s.movementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
