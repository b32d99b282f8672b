package report

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/core/internal/domain/finance"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/shared/valueobject"
	"github.com/backoffice/core/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSalesLineRepository is a mock implementation of trade.SalesLineRepository
type MockSalesLineRepository struct {
	mock.Mock
}

func (m *MockSalesLineRepository) Append(ctx context.Context, line *trade.SalesLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockSalesLineRepository) FindActiveByReceipt(ctx context.Context, receiptID string) ([]trade.SalesLine, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesLine), args.Error(1)
}

func (m *MockSalesLineRepository) MarkReceiptCanceled(ctx context.Context, receiptID string) (int64, error) {
	args := m.Called(ctx, receiptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesLineRepository) FindActiveBetween(ctx context.Context, from, to *time.Time) ([]trade.SalesLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesLine), args.Error(1)
}

func (m *MockSalesLineRepository) FindCashLinesBetween(ctx context.Context, from, to *time.Time) ([]trade.SalesLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesLine), args.Error(1)
}

func (m *MockSalesLineRepository) RecentReceipts(ctx context.Context, limit int) ([]trade.ReceiptSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.ReceiptSummary), args.Error(1)
}

// MockLedgerMovementRepository is a mock implementation of partner.LedgerMovementRepository
type MockLedgerMovementRepository struct {
	mock.Mock
}

func (m *MockLedgerMovementRepository) Append(ctx context.Context, movement *partner.LedgerMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockLedgerMovementRepository) FindByCounterparty(ctx context.Context, counterpartyID uuid.UUID) ([]partner.LedgerMovement, error) {
	args := m.Called(ctx, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.LedgerMovement), args.Error(1)
}

func (m *MockLedgerMovementRepository) FindByKindsBetween(ctx context.Context, kinds []partner.MovementKind, from, to *time.Time) ([]partner.LedgerMovement, error) {
	args := m.Called(ctx, kinds, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.LedgerMovement), args.Error(1)
}

// MockExpenseRecordRepository is a mock implementation of finance.ExpenseRecordRepository
type MockExpenseRecordRepository struct {
	mock.Mock
}

func (m *MockExpenseRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.ExpenseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRecordRepository) FindBetween(ctx context.Context, from, to *time.Time) ([]finance.ExpenseRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRecordRepository) Save(ctx context.Context, record *finance.ExpenseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockExpenseRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestCashFlowService(t *testing.T) (*CashFlowService, *MockSalesLineRepository, *MockLedgerMovementRepository, *MockExpenseRecordRepository) {
	t.Helper()
	salesRepo := new(MockSalesLineRepository)
	movementRepo := new(MockLedgerMovementRepository)
	expenseRepo := new(MockExpenseRecordRepository)
	return NewCashFlowService(salesRepo, movementRepo, expenseRepo, nil), salesRepo, movementRepo, expenseRepo
}

func cashSaleAt(t *testing.T, total int64, at time.Time) trade.SalesLine {
	t.Helper()
	line, err := trade.NewSalesLine("R-1", "Milk 1L", decimal.NewFromInt(1), decimal.NewFromInt(total), decimal.Zero, trade.PaymentMethodCash)
	require.NoError(t, err)
	line.SoldAt = at
	return *line
}

func movementAt(t *testing.T, kind partner.MovementKind, amount int64, note string, at time.Time) partner.LedgerMovement {
	t.Helper()
	cp, err := partner.NewCounterparty("Test", "", "", valueobject.ZeroTRY(), partner.CounterpartyTypeReceivable)
	require.NoError(t, err)
	mv, err := cp.ApplyMovement(kind, valueobject.NewMoneyTRY(decimal.NewFromInt(amount)), note)
	require.NoError(t, err)
	mv.MovementDate = at
	return *mv
}

func expenseAt(t *testing.T, category string, amount int64, at time.Time) finance.ExpenseRecord {
	t.Helper()
	expense, err := finance.NewExpenseRecord(category, decimal.NewFromInt(amount), "", at)
	require.NoError(t, err)
	return *expense
}

func TestCashFlowService_Movements(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("merges all sources newest first", func(t *testing.T) {
		service, salesRepo, movementRepo, expenseRepo := newTestCashFlowService(t)

		salesRepo.On("FindCashLinesBetween", ctx, (*time.Time)(nil), (*time.Time)(nil)).
			Return([]trade.SalesLine{cashSaleAt(t, 40, day.Add(9*time.Hour))}, nil)
		movementRepo.On("FindByKindsBetween", ctx,
			[]partner.MovementKind{partner.MovementKindCollection, partner.MovementKindPayment},
			(*time.Time)(nil), (*time.Time)(nil)).
			Return([]partner.LedgerMovement{
				movementAt(t, partner.MovementKindCollection, 100, "debt collected", day.Add(11*time.Hour)),
				movementAt(t, partner.MovementKindPayment, 60, "supplier paid", day.Add(13*time.Hour)),
			}, nil)
		expenseRepo.On("FindBetween", ctx, (*time.Time)(nil), (*time.Time)(nil)).
			Return([]finance.ExpenseRecord{expenseAt(t, "RENT", 50, day.Add(10*time.Hour))}, nil)

		entries, err := service.Movements(ctx, nil, nil)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		// newest first
		assert.Equal(t, EntryTypePayment, entries[0].Type)
		assert.Equal(t, DirectionOut, entries[0].Direction)
		assert.Equal(t, EntryTypeCollection, entries[1].Type)
		assert.Equal(t, DirectionIn, entries[1].Direction)
		assert.Equal(t, EntryTypeExpense, entries[2].Type)
		assert.Equal(t, "RENT", entries[2].Description)
		assert.Equal(t, EntryTypeSale, entries[3].Type)
		assert.Equal(t, "Milk 1L", entries[3].Description)
	})

	t.Run("empty sources yield empty ledger", func(t *testing.T) {
		service, salesRepo, movementRepo, expenseRepo := newTestCashFlowService(t)

		salesRepo.On("FindCashLinesBetween", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]trade.SalesLine{}, nil)
		movementRepo.On("FindByKindsBetween", ctx, mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return([]partner.LedgerMovement{}, nil)
		expenseRepo.On("FindBetween", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]finance.ExpenseRecord{}, nil)

		entries, err := service.Movements(ctx, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCashFlowService_Summary(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	service, salesRepo, movementRepo, expenseRepo := newTestCashFlowService(t)

	salesRepo.On("FindCashLinesBetween", ctx, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return([]trade.SalesLine{cashSaleAt(t, 200, day)}, nil)
	movementRepo.On("FindByKindsBetween", ctx, mock.Anything, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return([]partner.LedgerMovement{
			movementAt(t, partner.MovementKindCollection, 100, "", day),
			movementAt(t, partner.MovementKindPayment, 80, "", day),
		}, nil)
	expenseRepo.On("FindBetween", ctx, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return([]finance.ExpenseRecord{expenseAt(t, "RENT", 50, day)}, nil)

	summary, err := service.Summary(ctx, day)
	require.NoError(t, err)

	// in = 200 sales + 100 collections, out = 80 payments + 50 expenses
	assert.True(t, summary.In.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.Out.Equal(decimal.NewFromInt(130)))
	assert.True(t, summary.Balance.Equal(summary.In.Sub(summary.Out)))
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), summary.Date)
}
