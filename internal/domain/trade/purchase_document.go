package trade

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseDocType represents the subtype of a purchase document.
// Only invoices affect the supplier's ledger balance.
type PurchaseDocType string

const (
	PurchaseDocTypeInvoice      PurchaseDocType = "INVOICE"
	PurchaseDocTypeDeliveryNote PurchaseDocType = "DELIVERY_NOTE"
)

// IsValid checks if the doc type is valid
func (t PurchaseDocType) IsValid() bool {
	switch t {
	case PurchaseDocTypeInvoice, PurchaseDocTypeDeliveryNote:
		return true
	}
	return false
}

// String returns the string representation of PurchaseDocType
func (t PurchaseDocType) String() string {
	return string(t)
}

// PurchaseLine is one line item of a purchase document. The product name is
// a snapshot; the product reference may stop resolving later.
type PurchaseLine struct {
	shared.BaseEntity
	DocumentID  uuid.UUID
	ProductID   *uuid.UUID
	ProductName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	LineTotal   decimal.Decimal
}

// NewPurchaseLine creates a purchase line for the given document
func NewPurchaseLine(documentID uuid.UUID, productID *uuid.UUID, productName string, quantity, price decimal.Decimal) (*PurchaseLine, error) {
	if documentID == uuid.Nil {
		return nil, shared.NewValidationError("Document ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Line quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Line price cannot be negative")
	}

	return &PurchaseLine{
		BaseEntity:  shared.NewBaseEntity(),
		DocumentID:  documentID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
		LineTotal:   quantity.Mul(price),
	}, nil
}

// PurchaseDocument represents a supplier document (invoice or delivery note)
// composed of line items. TotalAmount is derived from the current lines.
type PurchaseDocument struct {
	shared.BaseAggregateRoot
	SupplierID  *uuid.UUID
	DocType     PurchaseDocType
	DocNumber   string
	DocDate     time.Time
	TotalAmount decimal.Decimal
	Description string
	Lines       []PurchaseLine
}

// NewPurchaseDocument creates a new purchase document without lines
func NewPurchaseDocument(supplierID *uuid.UUID, docType PurchaseDocType, docNumber string, docDate time.Time, description string) (*PurchaseDocument, error) {
	if !docType.IsValid() {
		return nil, shared.NewValidationError("Invalid purchase document type")
	}
	if docNumber == "" {
		return nil, shared.NewValidationError("Document number cannot be empty")
	}
	if docDate.IsZero() {
		docDate = time.Now()
	}

	return &PurchaseDocument{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		DocType:           docType,
		DocNumber:         docNumber,
		DocDate:           docDate,
		TotalAmount:       decimal.Zero,
		Description:       description,
		Lines:             make([]PurchaseLine, 0),
	}, nil
}

// AddLine appends a line and recalculates the document total
func (d *PurchaseDocument) AddLine(productID *uuid.UUID, productName string, quantity, price decimal.Decimal) (*PurchaseLine, error) {
	line, err := NewPurchaseLine(d.ID, productID, productName, quantity, price)
	if err != nil {
		return nil, err
	}

	d.Lines = append(d.Lines, *line)
	d.recalculateTotal()
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return &d.Lines[len(d.Lines)-1], nil
}

// ReplaceLines swaps the whole line set and recalculates the total
func (d *PurchaseDocument) ReplaceLines(lines []PurchaseLine) {
	d.Lines = lines
	d.recalculateTotal()
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// UpdateHeader overwrites the document header fields
func (d *PurchaseDocument) UpdateHeader(supplierID *uuid.UUID, docNumber string, docDate time.Time, description string) error {
	if docNumber == "" {
		return shared.NewValidationError("Document number cannot be empty")
	}
	d.SupplierID = supplierID
	d.DocNumber = docNumber
	if !docDate.IsZero() {
		d.DocDate = docDate
	}
	d.Description = description
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// IsInvoice returns true for invoice documents
func (d *PurchaseDocument) IsInvoice() bool {
	return d.DocType == PurchaseDocTypeInvoice
}

// AffectsLedger returns true when the document carries a ledger effect
// (invoice with a supplier reference)
func (d *PurchaseDocument) AffectsLedger() bool {
	return d.IsInvoice() && d.SupplierID != nil
}

func (d *PurchaseDocument) recalculateTotal() {
	total := decimal.Zero
	for _, line := range d.Lines {
		total = total.Add(line.LineTotal)
	}
	d.TotalAmount = total
}

// LineQuantityDeltas computes, per product, the net stock effect of replacing
// oldLines with newLines (new quantity minus old quantity). Lines without a
// product reference carry no stock effect and are excluded.
func LineQuantityDeltas(oldLines, newLines []PurchaseLine) map[uuid.UUID]decimal.Decimal {
	deltas := make(map[uuid.UUID]decimal.Decimal)
	for _, line := range oldLines {
		if line.ProductID == nil {
			continue
		}
		deltas[*line.ProductID] = deltas[*line.ProductID].Sub(line.Quantity)
	}
	for _, line := range newLines {
		if line.ProductID == nil {
			continue
		}
		deltas[*line.ProductID] = deltas[*line.ProductID].Add(line.Quantity)
	}
	for id, delta := range deltas {
		if delta.IsZero() {
			delete(deltas, id)
		}
	}
	return deltas
}
