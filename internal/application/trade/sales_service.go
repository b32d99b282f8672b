package trade

import (
	"context"
	"time"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/domain/trade"
	"github.com/backoffice/core/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// SalesService appends sale lines grouped by receipt identifier and supports
// receipt cancellation with best-effort stock restoration. Inserting a line
// does not decrement stock; the caller drives that through the stock service
// as part of the same logical sale.
type SalesService struct {
	scope   TransactionScope
	logger  *zap.Logger
	metrics *telemetry.BusinessMetrics
}

// NewSalesService creates a new SalesService
func NewSalesService(scope TransactionScope, logger *zap.Logger) *SalesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesService{
		scope:  scope,
		logger: logger,
	}
}

// SetMetrics sets the business metrics recorder
func (s *SalesService) SetMetrics(metrics *telemetry.BusinessMetrics) {
	s.metrics = metrics
}

// InsertLine appends one sale line to a receipt
func (s *SalesService) InsertLine(ctx context.Context, req InsertSaleLineRequest) (*SalesLineResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	line, err := trade.NewSalesLine(req.ReceiptID, req.ProductName, req.Quantity, req.UnitPrice, req.LineTotal, trade.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.SalesRepo().Append(ctx, line)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("sale line appended",
		zap.String("receipt_id", line.ReceiptID),
		zap.String("product_name", line.ProductName))

	return NewSalesLineResponse(line), nil
}

// CancelReceipt cancels all active lines of a receipt and restores stock for
// each line whose product can still be found by name. Products that no
// longer resolve are reported as skipped lines; the cancellation itself still
// completes. Canceling an already-canceled or unknown receipt matches zero
// lines and changes nothing.
func (s *SalesService) CancelReceipt(ctx context.Context, receiptID string) (*CancelReceiptResponse, error) {
	if receiptID == "" {
		return nil, shared.NewValidationError("Receipt ID cannot be empty")
	}

	var (
		skipped  []SkippedLine
		canceled int64
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		lines, err := repos.SalesRepo().FindActiveByReceipt(ctx, receiptID)
		if err != nil {
			return err
		}

		for i := range lines {
			line := &lines[i]
			product, err := repos.ProductRepo().FindByName(ctx, line.ProductName)
			if err != nil {
				if shared.IsNotFound(err) {
					skipped = append(skipped, SkippedLine{
						ProductName: line.ProductName,
						Quantity:    line.Quantity,
						Reason:      "product not found",
					})
					continue
				}
				return err
			}

			product.IncrementStock(line.Quantity)
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		canceled, err = repos.SalesRepo().MarkReceiptCanceled(ctx, receiptID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if canceled > 0 {
		s.metrics.RecordReceiptCanceled(ctx)
	}
	s.logger.Info("receipt canceled",
		zap.String("receipt_id", receiptID),
		zap.Int64("lines_canceled", canceled),
		zap.Int("skipped_lines", len(skipped)))

	return &CancelReceiptResponse{
		ReceiptID:     receiptID,
		LinesCanceled: canceled,
		SkippedLines:  skipped,
	}, nil
}

// ListBetween returns non-canceled sale lines within the optional date window
func (s *SalesService) ListBetween(ctx context.Context, from, to *time.Time) ([]SalesLineResponse, error) {
	var lines []trade.SalesLine
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		lines, err = repos.SalesRepo().FindActiveBetween(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]SalesLineResponse, 0, len(lines))
	for i := range lines {
		responses = append(responses, *NewSalesLineResponse(&lines[i]))
	}
	return responses, nil
}

// ListRecentReceipts returns the most recent receipts aggregated from their
// active lines
func (s *SalesService) ListRecentReceipts(ctx context.Context, limit int) ([]ReceiptSummaryResponse, error) {
	var summaries []trade.ReceiptSummary
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		summaries, err = repos.SalesRepo().RecentReceipts(ctx, limit)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ReceiptSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, ReceiptSummaryResponse{
			ReceiptID:     summary.ReceiptID,
			TotalAmount:   summary.TotalAmount,
			PaymentMethod: summary.PaymentMethod.String(),
			LineCount:     summary.LineCount,
			LastSoldAt:    summary.LastSoldAt,
		})
	}
	return responses, nil
}
