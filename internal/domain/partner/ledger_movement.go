package partner

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementKind represents the kind of a ledger movement
type MovementKind string

const (
	// MovementKindCollection represents money received from the counterparty (balance decrease)
	MovementKindCollection MovementKind = "COLLECTION"
	// MovementKindPayment represents money paid to the counterparty (balance increase)
	MovementKindPayment MovementKind = "PAYMENT"
	// MovementKindDebt represents a balance-decreasing correction
	MovementKindDebt MovementKind = "DEBT"
	// MovementKindCredit represents a balance-increasing correction
	MovementKindCredit MovementKind = "CREDIT"
)

// String returns the string representation of MovementKind
func (k MovementKind) String() string {
	return string(k)
}

// IsValid returns true if the movement kind is valid
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementKindCollection, MovementKindPayment, MovementKindDebt, MovementKindCredit:
		return true
	}
	return false
}

// Sign returns the balance effect multiplier for the kind.
// Collection and debt decrease the balance; payment and credit increase it,
// independent of the counterparty type.
func (k MovementKind) Sign() decimal.Decimal {
	switch k {
	case MovementKindCollection, MovementKindDebt:
		return decimal.NewFromInt(-1)
	default:
		return decimal.NewFromInt(1)
	}
}

// IsCashIn returns true for kinds that represent cash flowing into the store
func (k MovementKind) IsCashIn() bool {
	return k == MovementKindCollection
}

// IsCashOut returns true for kinds that represent cash flowing out of the store
func (k MovementKind) IsCashOut() bool {
	return k == MovementKindPayment
}

// LedgerMovement is an immutable, append-only record of a counterparty balance change.
// Corrections are made with new movements, never by editing existing ones.
type LedgerMovement struct {
	shared.BaseEntity
	CounterpartyID uuid.UUID
	Kind           MovementKind
	Amount         decimal.Decimal // always positive, direction determined by Kind
	BalanceBefore  decimal.Decimal
	BalanceAfter   decimal.Decimal
	Note           string
	MovementDate   time.Time
}

// NewLedgerMovement creates a new ledger movement record
func NewLedgerMovement(
	counterpartyID uuid.UUID,
	kind MovementKind,
	amount decimal.Decimal,
	balanceBefore decimal.Decimal,
	balanceAfter decimal.Decimal,
	note string,
) (*LedgerMovement, error) {
	if counterpartyID == uuid.Nil {
		return nil, shared.NewValidationError("Counterparty ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewValidationError("Invalid movement kind")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Movement amount must be positive")
	}

	return &LedgerMovement{
		BaseEntity:     shared.NewBaseEntity(),
		CounterpartyID: counterpartyID,
		Kind:           kind,
		Amount:         amount,
		BalanceBefore:  balanceBefore,
		BalanceAfter:   balanceAfter,
		Note:           note,
		MovementDate:   time.Now(),
	}, nil
}

// SignedAmount returns the amount with the sign applied by the kind
func (m *LedgerMovement) SignedAmount() decimal.Decimal {
	return m.Amount.Mul(m.Kind.Sign())
}

// BalanceChange returns the net balance change recorded by this movement
func (m *LedgerMovement) BalanceChange() decimal.Decimal {
	return m.BalanceAfter.Sub(m.BalanceBefore)
}
