package persistence

import (
	"context"
	"time"

	"github.com/backoffice/core/internal/domain/trade"
	"github.com/backoffice/core/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSalesLineRepository implements SalesLineRepository using GORM. Lines
// are appended at sale time; cancellation flips the canceled flag and is the
// only mutation.
type GormSalesLineRepository struct {
	db *gorm.DB
}

// NewGormSalesLineRepository creates a new GormSalesLineRepository
func NewGormSalesLineRepository(db *gorm.DB) *GormSalesLineRepository {
	return &GormSalesLineRepository{db: db}
}

// Append persists a new sale line
func (r *GormSalesLineRepository) Append(ctx context.Context, line *trade.SalesLine) error {
	var model models.SalesLineModel
	model.FromDomain(line)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindActiveByReceipt finds the non-canceled lines of a receipt
func (r *GormSalesLineRepository) FindActiveByReceipt(ctx context.Context, receiptID string) ([]trade.SalesLine, error) {
	var list []models.SalesLineModel
	if err := r.db.WithContext(ctx).
		Where("receipt_id = ? AND canceled = ?", receiptID, false).
		Order("sold_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return toSalesLines(list), nil
}

// MarkReceiptCanceled marks every active line of a receipt canceled and
// returns the number of lines affected. Zero means the receipt was unknown
// or already canceled.
func (r *GormSalesLineRepository) MarkReceiptCanceled(ctx context.Context, receiptID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SalesLineModel{}).
		Where("receipt_id = ? AND canceled = ?", receiptID, false).
		Updates(map[string]interface{}{
			"canceled":   true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindActiveBetween finds non-canceled lines within the optional date
// window, newest first. Nil bounds leave that side open.
func (r *GormSalesLineRepository) FindActiveBetween(ctx context.Context, from, to *time.Time) ([]trade.SalesLine, error) {
	return r.findActive(ctx, from, to, nil)
}

// FindCashLinesBetween finds non-canceled cash-paid lines within the
// optional date window, newest first
func (r *GormSalesLineRepository) FindCashLinesBetween(ctx context.Context, from, to *time.Time) ([]trade.SalesLine, error) {
	method := trade.PaymentMethodCash
	return r.findActive(ctx, from, to, &method)
}

func (r *GormSalesLineRepository) findActive(ctx context.Context, from, to *time.Time, method *trade.PaymentMethod) ([]trade.SalesLine, error) {
	query := r.db.WithContext(ctx).
		Model(&models.SalesLineModel{}).
		Where("canceled = ?", false)

	if method != nil {
		query = query.Where("payment_method = ?", method.String())
	}
	if from != nil {
		query = query.Where("sold_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("sold_at <= ?", *to)
	}

	var list []models.SalesLineModel
	if err := query.Order("sold_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return toSalesLines(list), nil
}

// RecentReceipts aggregates the most recent receipts from active lines:
// total amount, line count, latest sale time, and a representative payment
// method per receipt.
func (r *GormSalesLineRepository) RecentReceipts(ctx context.Context, limit int) ([]trade.ReceiptSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	type receiptRow struct {
		ReceiptID     string
		TotalAmount   decimal.Decimal
		PaymentMethod string
		LineCount     int
		LastSoldAt    time.Time
	}

	var rows []receiptRow
	if err := r.db.WithContext(ctx).
		Model(&models.SalesLineModel{}).
		Select("receipt_id, SUM(line_total) AS total_amount, MAX(payment_method) AS payment_method, COUNT(*) AS line_count, MAX(sold_at) AS last_sold_at").
		Where("canceled = ?", false).
		Group("receipt_id").
		Order("last_sold_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]trade.ReceiptSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, trade.ReceiptSummary{
			ReceiptID:     row.ReceiptID,
			TotalAmount:   row.TotalAmount,
			PaymentMethod: trade.PaymentMethod(row.PaymentMethod),
			LineCount:     row.LineCount,
			LastSoldAt:    row.LastSoldAt,
		})
	}
	return summaries, nil
}

func toSalesLines(list []models.SalesLineModel) []trade.SalesLine {
	result := make([]trade.SalesLine, 0, len(list))
	for i := range list {
		result = append(result, *list[i].ToDomain())
	}
	return result
}

// Ensure GormSalesLineRepository implements SalesLineRepository
var _ trade.SalesLineRepository = (*GormSalesLineRepository)(nil)
