package ledger

import (
	"time"

	"github.com/backoffice/core/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCounterpartyRequest represents a request to create a counterparty.
// InitialBalance is a decimal string; an empty string means zero.
type CreateCounterpartyRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Phone          string `json:"phone" validate:"max=50"`
	Address        string `json:"address" validate:"max=500"`
	InitialBalance string `json:"initial_balance"`
	Type           string `json:"type"`
}

// UpdateCounterpartyRequest represents a request to update contact details
type UpdateCounterpartyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"max=50"`
	Address string `json:"address" validate:"max=500"`
}

// ApplyMovementRequest represents a request to apply a ledger movement.
// Amount is a decimal string and must parse to a positive value.
type ApplyMovementRequest struct {
	CounterpartyID uuid.UUID `json:"counterparty_id" validate:"required"`
	Kind           string    `json:"kind" validate:"required,oneof=COLLECTION PAYMENT DEBT CREDIT"`
	Amount         string    `json:"amount" validate:"required"`
	Note           string    `json:"note" validate:"max=500"`
}

// CounterpartyResponse represents a counterparty in responses
type CounterpartyResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MovementResponse represents a ledger movement in responses
type MovementResponse struct {
	ID             uuid.UUID       `json:"id"`
	CounterpartyID uuid.UUID       `json:"counterparty_id"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	BalanceBefore  decimal.Decimal `json:"balance_before"`
	BalanceAfter   decimal.Decimal `json:"balance_after"`
	Note           string          `json:"note"`
	MovementDate   time.Time       `json:"movement_date"`
}

// TotalsResponse represents the aggregate receivable/payable totals.
// The two sums are independent aggregates, not complements.
type TotalsResponse struct {
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
}

// NewCounterpartyResponse converts a domain counterparty to a response
func NewCounterpartyResponse(c *partner.Counterparty) *CounterpartyResponse {
	return &CounterpartyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Balance:   c.Balance,
		Type:      c.Type.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewMovementResponse converts a domain ledger movement to a response
func NewMovementResponse(m *partner.LedgerMovement) *MovementResponse {
	return &MovementResponse{
		ID:             m.ID,
		CounterpartyID: m.CounterpartyID,
		Kind:           m.Kind.String(),
		Amount:         m.Amount,
		BalanceBefore:  m.BalanceBefore,
		BalanceAfter:   m.BalanceAfter,
		Note:           m.Note,
		MovementDate:   m.MovementDate,
	}
}
