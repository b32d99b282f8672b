package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cash entry types
const (
	EntryTypeSale       = "SALE"
	EntryTypeCollection = "COLLECTION"
	EntryTypePayment    = "PAYMENT"
	EntryTypeExpense    = "EXPENSE"
)

// Cash flow directions
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// CashEntry is one row of the merged cash ledger: a cash sale line, a
// collection or payment movement, or an expense
type CashEntry struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Description string          `json:"description"`
}

// DailySummary aggregates one day's cash flow. Balance always equals In
// minus Out.
type DailySummary struct {
	Date    time.Time       `json:"date"`
	In      decimal.Decimal `json:"in"`
	Out     decimal.Decimal `json:"out"`
	Balance decimal.Decimal `json:"balance"`
}
