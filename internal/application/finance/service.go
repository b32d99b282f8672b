package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/finance"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ExpenseService records money spent outside the counterparty ledger
type ExpenseService struct {
	expenseRepo finance.ExpenseRecordRepository
	logger      *zap.Logger
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRecordRepository, logger *zap.Logger) *ExpenseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid expense amount: %s", req.Amount))
	}

	record, err := finance.NewExpenseRecord(req.Category, amount, req.Description, req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("expense recorded",
		zap.String("expense_id", record.ID.String()),
		zap.String("category", record.Category),
		zap.String("amount", record.Amount.String()))

	return NewExpenseResponse(record), nil
}

// Get returns one expense record
func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	record, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewExpenseResponse(record), nil
}

// ListBetween returns expense records within the optional date window
func (s *ExpenseService) ListBetween(ctx context.Context, from, to *time.Time) ([]ExpenseResponse, error) {
	records, err := s.expenseRepo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *NewExpenseResponse(&records[i]))
	}
	return responses, nil
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("expense deleted", zap.String("expense_id", id.String()))
	return nil
}
