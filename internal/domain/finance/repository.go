package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpenseRecordRepository defines persistence operations for expense records
type ExpenseRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExpenseRecord, error)
	FindBetween(ctx context.Context, from, to *time.Time) ([]ExpenseRecord, error)
	Save(ctx context.Context, record *ExpenseRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
