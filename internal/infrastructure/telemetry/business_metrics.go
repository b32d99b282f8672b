package telemetry

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a nil meter is supplied
var ErrMeterNil = errors.New("meter cannot be nil")

// BusinessMetrics tracks the core business operations: documents created,
// ledger movements applied, warehouse transfers, and receipt cancellations.
type BusinessMetrics struct {
	meter metric.Meter

	purchaseDocumentTotal *Counter
	purchaseAmountTotal   *Counter
	ledgerMovementTotal   *Counter
	warehouseTransferW    *Counter
	receiptCanceledTotal  *Counter
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	bm := &BusinessMetrics{meter: meter}

	var err error
	bm.purchaseDocumentTotal, err = NewCounter(
		meter,
		"backoffice_purchase_document_total",
		"Total number of purchase documents created",
		"{documents}",
	)
	if err != nil {
		return nil, err
	}

	bm.purchaseAmountTotal, err = NewCounter(
		meter,
		"backoffice_purchase_amount_total",
		"Total purchase amount in kurus",
		"{kurus}",
	)
	if err != nil {
		return nil, err
	}

	bm.ledgerMovementTotal, err = NewCounter(
		meter,
		"backoffice_ledger_movement_total",
		"Total number of ledger movements applied",
		"{movements}",
	)
	if err != nil {
		return nil, err
	}

	bm.warehouseTransferW, err = NewCounter(
		meter,
		"backoffice_warehouse_transfer_total",
		"Total number of warehouse transfers",
		"{transfers}",
	)
	if err != nil {
		return nil, err
	}

	bm.receiptCanceledTotal, err = NewCounter(
		meter,
		"backoffice_receipt_canceled_total",
		"Total number of canceled sale receipts",
		"{receipts}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// RecordPurchaseDocument records a created purchase document with its amount
func (bm *BusinessMetrics) RecordPurchaseDocument(ctx context.Context, docType string, amount decimal.Decimal) {
	if bm == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String("doc_type", docType)}
	bm.purchaseDocumentTotal.Inc(ctx, attrs...)
	bm.purchaseAmountTotal.Add(ctx, amount.Mul(decimal.NewFromInt(100)).IntPart(), attrs...)
}

// RecordLedgerMovement records an applied ledger movement
func (bm *BusinessMetrics) RecordLedgerMovement(ctx context.Context, kind string) {
	if bm == nil {
		return
	}
	bm.ledgerMovementTotal.Inc(ctx, attribute.String("kind", kind))
}

// RecordWarehouseTransfer records a completed warehouse transfer
func (bm *BusinessMetrics) RecordWarehouseTransfer(ctx context.Context) {
	if bm == nil {
		return
	}
	bm.warehouseTransferW.Inc(ctx)
}

// RecordReceiptCanceled records a canceled sale receipt
func (bm *BusinessMetrics) RecordReceiptCanceled(ctx context.Context) {
	if bm == nil {
		return
	}
	bm.receiptCanceledTotal.Inc(ctx)
}
