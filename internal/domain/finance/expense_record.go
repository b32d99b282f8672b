package finance

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseRecord represents money spent outside the counterparty ledger
// (rent, utilities, consumables). Expenses always count as cash out in the
// cash-flow projection.
type ExpenseRecord struct {
	shared.BaseAggregateRoot
	Category    string
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
}

// NewExpenseRecord creates a new expense record
func NewExpenseRecord(category string, amount decimal.Decimal, description string, expenseDate time.Time) (*ExpenseRecord, error) {
	if category == "" {
		return nil, shared.NewValidationError("Expense category cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Expense amount must be positive")
	}
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	return &ExpenseRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Category:          category,
		Amount:            amount,
		Description:       description,
		ExpenseDate:       expenseDate,
	}, nil
}

// SetDescription updates the description
func (e *ExpenseRecord) SetDescription(description string) {
	e.Description = description
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}
