package trade

import (
	"time"

	"github.com/backoffice/core/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseLineRequest represents one line of a purchase document request
type PurchaseLineRequest struct {
	ProductID   *uuid.UUID      `json:"product_id"`
	ProductName string          `json:"product_name" validate:"required,max=200"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// CreatePurchaseRequest represents a request to create a purchase document.
// RecordLastBuyPrice controls whether each resolvable line's price becomes
// the product's new last buy price.
type CreatePurchaseRequest struct {
	SupplierID         *uuid.UUID            `json:"supplier_id"`
	DocType            string                `json:"doc_type" validate:"required,oneof=INVOICE DELIVERY_NOTE"`
	DocNumber          string                `json:"doc_number" validate:"required,max=100"`
	DocDate            time.Time             `json:"doc_date"`
	Description        string                `json:"description" validate:"max=500"`
	Lines              []PurchaseLineRequest `json:"lines" validate:"min=1,dive"`
	RecordLastBuyPrice bool                  `json:"record_last_buy_price"`
}

// UpdatePurchaseRequest represents a request to replace a purchase document's
// header and line set
type UpdatePurchaseRequest struct {
	SupplierID         *uuid.UUID            `json:"supplier_id"`
	DocNumber          string                `json:"doc_number" validate:"required,max=100"`
	DocDate            time.Time             `json:"doc_date"`
	Description        string                `json:"description" validate:"max=500"`
	Lines              []PurchaseLineRequest `json:"lines" validate:"min=1,dive"`
	RecordLastBuyPrice bool                  `json:"record_last_buy_price"`
}

// SkippedLine reports a line whose side effect could not be applied or
// undone. The operation still completes; skipped lines are surfaced to the
// caller instead of being silently discarded.
type SkippedLine struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
}

// PurchaseLineResponse represents a purchase line in responses
type PurchaseLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// PurchaseDocumentResponse represents a purchase document in responses
type PurchaseDocumentResponse struct {
	ID           uuid.UUID              `json:"id"`
	SupplierID   *uuid.UUID             `json:"supplier_id"`
	DocType      string                 `json:"doc_type"`
	DocNumber    string                 `json:"doc_number"`
	DocDate      time.Time              `json:"doc_date"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Description  string                 `json:"description"`
	Lines        []PurchaseLineResponse `json:"lines"`
	SkippedLines []SkippedLine          `json:"skipped_lines,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// NewPurchaseDocumentResponse converts a domain document to a response
func NewPurchaseDocumentResponse(d *trade.PurchaseDocument, skipped []SkippedLine) *PurchaseDocumentResponse {
	lines := make([]PurchaseLineResponse, 0, len(d.Lines))
	for i := range d.Lines {
		lines = append(lines, PurchaseLineResponse{
			ID:          d.Lines[i].ID,
			ProductID:   d.Lines[i].ProductID,
			ProductName: d.Lines[i].ProductName,
			Quantity:    d.Lines[i].Quantity,
			Price:       d.Lines[i].Price,
			LineTotal:   d.Lines[i].LineTotal,
		})
	}
	return &PurchaseDocumentResponse{
		ID:           d.ID,
		SupplierID:   d.SupplierID,
		DocType:      d.DocType.String(),
		DocNumber:    d.DocNumber,
		DocDate:      d.DocDate,
		TotalAmount:  d.TotalAmount,
		Description:  d.Description,
		Lines:        lines,
		SkippedLines: skipped,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// DeletePurchaseResponse reports the outcome of a document deletion
type DeletePurchaseResponse struct {
	ID           uuid.UUID     `json:"id"`
	SkippedLines []SkippedLine `json:"skipped_lines,omitempty"`
}

// InsertSaleLineRequest represents a request to append one sale line.
// LineTotal defaults to quantity times unit price when zero.
type InsertSaleLineRequest struct {
	ReceiptID     string          `json:"receipt_id" validate:"required,max=100"`
	ProductName   string          `json:"product_name" validate:"required,max=200"`
	Quantity      decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=CASH CARD"`
}

// SalesLineResponse represents a sale line in responses
type SalesLineResponse struct {
	ID            uuid.UUID       `json:"id"`
	ReceiptID     string          `json:"receipt_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
	PaymentMethod string          `json:"payment_method"`
	Canceled      bool            `json:"canceled"`
	SoldAt        time.Time       `json:"sold_at"`
}

// NewSalesLineResponse converts a domain sale line to a response
func NewSalesLineResponse(l *trade.SalesLine) *SalesLineResponse {
	return &SalesLineResponse{
		ID:            l.ID,
		ReceiptID:     l.ReceiptID,
		ProductName:   l.ProductName,
		Quantity:      l.Quantity,
		UnitPrice:     l.UnitPrice,
		LineTotal:     l.LineTotal,
		PaymentMethod: l.PaymentMethod.String(),
		Canceled:      l.Canceled,
		SoldAt:        l.SoldAt,
	}
}

// CancelReceiptResponse reports the outcome of a receipt cancellation.
// LinesCanceled is zero when the receipt was unknown or already canceled.
type CancelReceiptResponse struct {
	ReceiptID     string        `json:"receipt_id"`
	LinesCanceled int64         `json:"lines_canceled"`
	SkippedLines  []SkippedLine `json:"skipped_lines,omitempty"`
}

// ReceiptSummaryResponse represents one receipt in the recent receipts view
type ReceiptSummaryResponse struct {
	ReceiptID     string          `json:"receipt_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	LineCount     int             `json:"line_count"`
	LastSoldAt    time.Time       `json:"last_sold_at"`
}
