package report

import (
	"context"
	"sort"
	"time"

	"github.com/backoffice/core/internal/domain/finance"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/trade"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CashFlowService is a read-only projection merging cash sale lines, ledger
// collections and payments, and expense records into one time-ordered cash
// ledger. It never writes.
type CashFlowService struct {
	salesRepo    trade.SalesLineRepository
	movementRepo partner.LedgerMovementRepository
	expenseRepo  finance.ExpenseRecordRepository
	logger       *zap.Logger
}

// NewCashFlowService creates a new CashFlowService
func NewCashFlowService(
	salesRepo trade.SalesLineRepository,
	movementRepo partner.LedgerMovementRepository,
	expenseRepo finance.ExpenseRecordRepository,
	logger *zap.Logger,
) *CashFlowService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CashFlowService{
		salesRepo:    salesRepo,
		movementRepo: movementRepo,
		expenseRepo:  expenseRepo,
		logger:       logger,
	}
}

// Movements merges cash sales (in), collections (in), payments (out), and
// expenses (out) within the optional date window, newest first
func (s *CashFlowService) Movements(ctx context.Context, from, to *time.Time) ([]CashEntry, error) {
	entries := make([]CashEntry, 0)

	salesLines, err := s.salesRepo.FindCashLinesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for i := range salesLines {
		line := &salesLines[i]
		entries = append(entries, CashEntry{
			ID:          line.ID,
			Date:        line.SoldAt,
			Type:        EntryTypeSale,
			Amount:      line.LineTotal,
			Direction:   DirectionIn,
			Description: line.ProductName,
		})
	}

	kinds := []partner.MovementKind{partner.MovementKindCollection, partner.MovementKindPayment}
	movements, err := s.movementRepo.FindByKindsBetween(ctx, kinds, from, to)
	if err != nil {
		return nil, err
	}
	for i := range movements {
		movement := &movements[i]
		entry := CashEntry{
			ID:          movement.ID,
			Date:        movement.MovementDate,
			Amount:      movement.Amount,
			Description: movement.Note,
		}
		if movement.Kind.IsCashIn() {
			entry.Type = EntryTypeCollection
			entry.Direction = DirectionIn
		} else {
			entry.Type = EntryTypePayment
			entry.Direction = DirectionOut
		}
		entries = append(entries, entry)
	}

	expenses, err := s.expenseRepo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		expense := &expenses[i]
		entries = append(entries, CashEntry{
			ID:          expense.ID,
			Date:        expense.ExpenseDate,
			Type:        EntryTypeExpense,
			Amount:      expense.Amount,
			Direction:   DirectionOut,
			Description: expense.Category,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

// Summary returns the in/out/balance aggregate for the given day
func (s *CashFlowService) Summary(ctx context.Context, date time.Time) (*DailySummary, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	entries, err := s.Movements(ctx, &dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}

	in := decimal.Zero
	out := decimal.Zero
	for i := range entries {
		if entries[i].Direction == DirectionIn {
			in = in.Add(entries[i].Amount)
		} else {
			out = out.Add(entries[i].Amount)
		}
	}

	return &DailySummary{
		Date:    dayStart,
		In:      in,
		Out:     out,
		Balance: in.Sub(out),
	}, nil
}

// TodaySummary returns the daily summary for the current date
func (s *CashFlowService) TodaySummary(ctx context.Context) (*DailySummary, error) {
	return s.Summary(ctx, time.Now())
}
