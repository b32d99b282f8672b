package partner

import (
	"fmt"
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CounterpartyType classifies a counterparty for aggregate totals.
// It has no effect on movement sign behavior.
type CounterpartyType string

const (
	CounterpartyTypeReceivable CounterpartyType = "RECEIVABLE" // customer owing money
	CounterpartyTypePayable    CounterpartyType = "PAYABLE"    // supplier owed money
)

// IsValid checks if the type is a valid CounterpartyType
func (t CounterpartyType) IsValid() bool {
	switch t {
	case CounterpartyTypeReceivable, CounterpartyTypePayable:
		return true
	}
	return false
}

// String returns the string representation of CounterpartyType
func (t CounterpartyType) String() string {
	return string(t)
}

// NormalizeCounterpartyType returns the type when valid, receivable otherwise
func NormalizeCounterpartyType(t CounterpartyType) CounterpartyType {
	if t.IsValid() {
		return t
	}
	return CounterpartyTypeReceivable
}

// Counterparty represents an external party (customer/supplier) with a running balance.
// The balance is mutated only through movement application; it is written directly
// only on creation (initial balance).
type Counterparty struct {
	shared.BaseAggregateRoot
	Name    string
	Phone   string
	Address string
	Balance decimal.Decimal
	Type    CounterpartyType
}

// NewCounterparty creates a new counterparty with an initial balance.
// An invalid type falls back to receivable.
func NewCounterparty(name, phone, address string, initialBalance valueobject.Money, cpType CounterpartyType) (*Counterparty, error) {
	if name == "" {
		return nil, shared.NewValidationError("Counterparty name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Counterparty name cannot exceed 200 characters")
	}

	return &Counterparty{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Address:           address,
		Balance:           initialBalance.Amount(),
		Type:              NormalizeCounterpartyType(cpType),
	}, nil
}

// ApplyMovement applies a signed movement to the balance and returns the
// append-only record explaining the change. The amount must be positive;
// the direction comes from the movement kind's sign table.
func (c *Counterparty) ApplyMovement(kind MovementKind, amount valueobject.Money, note string) (*LedgerMovement, error) {
	if !kind.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid movement kind: %s", kind))
	}
	if amount.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Movement amount must be positive")
	}

	before := c.Balance
	after := before.Add(amount.Amount().Mul(kind.Sign()))

	movement, err := NewLedgerMovement(c.ID, kind, amount.Amount(), before, after, note)
	if err != nil {
		return nil, err
	}

	c.Balance = after
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return movement, nil
}

// ResetBalance sets the balance directly. Corrective use only; every normal
// change goes through ApplyMovement.
func (c *Counterparty) ResetBalance(balance decimal.Decimal) {
	c.Balance = balance
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Rename updates the counterparty name
func (c *Counterparty) Rename(name string) error {
	if name == "" {
		return shared.NewValidationError("Counterparty name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// UpdateContact updates phone and address
func (c *Counterparty) UpdateContact(phone, address string) {
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsReceivable returns true for receivable-type counterparties
func (c *Counterparty) IsReceivable() bool {
	return c.Type == CounterpartyTypeReceivable
}

// IsPayable returns true for payable-type counterparties
func (c *Counterparty) IsPayable() bool {
	return c.Type == CounterpartyTypePayable
}

// GetBalanceMoney returns the balance as Money
func (c *Counterparty) GetBalanceMoney() valueobject.Money {
	return valueobject.NewMoneyTRY(c.Balance)
}
