package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PurchaseDocumentRepository defines persistence operations for purchase
// documents and their lines. The line set is loaded and saved with the
// document aggregate.
type PurchaseDocumentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseDocument, error)
	FindBetween(ctx context.Context, from, to *time.Time) ([]PurchaseDocument, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]PurchaseDocument, error)
	Save(ctx context.Context, document *PurchaseDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalesLineRepository defines persistence operations for sale lines
type SalesLineRepository interface {
	Append(ctx context.Context, line *SalesLine) error
	FindActiveByReceipt(ctx context.Context, receiptID string) ([]SalesLine, error)
	MarkReceiptCanceled(ctx context.Context, receiptID string) (int64, error)
	FindActiveBetween(ctx context.Context, from, to *time.Time) ([]SalesLine, error)
	FindCashLinesBetween(ctx context.Context, from, to *time.Time) ([]SalesLine, error)
	RecentReceipts(ctx context.Context, limit int) ([]ReceiptSummary, error)
}
