package trade

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// SalesLine is one sold line. A receipt is the set of lines sharing one
// receipt identifier; all lines of a receipt share payment method and
// canceled state.
type SalesLine struct {
	shared.BaseEntity
	ReceiptID     string
	ProductName   string
	Quantity      decimal.Decimal // fractional for weight-based units
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
	PaymentMethod PaymentMethod
	Canceled      bool
	SoldAt        time.Time
}

// NewSalesLine creates a new sale line
func NewSalesLine(receiptID, productName string, quantity, unitPrice, lineTotal decimal.Decimal, paymentMethod PaymentMethod) (*SalesLine, error) {
	if receiptID == "" {
		return nil, shared.NewValidationError("Receipt ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Sale quantity must be positive")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewValidationError("Invalid payment method")
	}
	if lineTotal.IsZero() {
		lineTotal = quantity.Mul(unitPrice)
	}

	return &SalesLine{
		BaseEntity:    shared.NewBaseEntity(),
		ReceiptID:     receiptID,
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		LineTotal:     lineTotal,
		PaymentMethod: paymentMethod,
		Canceled:      false,
		SoldAt:        time.Now(),
	}, nil
}

// Cancel marks the line canceled
func (l *SalesLine) Cancel() {
	l.Canceled = true
	l.UpdatedAt = time.Now()
}

// IsCash returns true for cash-paid lines
func (l *SalesLine) IsCash() bool {
	return l.PaymentMethod == PaymentMethodCash
}

// ReceiptSummary is the aggregated view of one receipt for the recent
// receipts listing: sum of line totals, latest timestamp, a representative
// payment method, and line count. Canceled lines are excluded.
type ReceiptSummary struct {
	ReceiptID     string
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	LineCount     int
	LastSoldAt    time.Time
}
