package finance

import (
	"time"

	"github.com/backoffice/core/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest represents a request to record an expense.
// Amount is a decimal string and must parse to a positive value.
type CreateExpenseRequest struct {
	Category    string    `json:"category" validate:"required,max=100"`
	Amount      string    `json:"amount" validate:"required"`
	Description string    `json:"description" validate:"max=500"`
	ExpenseDate time.Time `json:"expense_date"`
}

// ExpenseResponse represents an expense record in responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ExpenseDate time.Time       `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewExpenseResponse converts a domain expense record to a response
func NewExpenseResponse(e *finance.ExpenseRecord) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
	}
}
