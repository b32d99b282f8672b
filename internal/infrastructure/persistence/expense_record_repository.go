package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/backoffice/core/internal/domain/finance"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormExpenseRecordRepository implements ExpenseRecordRepository using GORM
type GormExpenseRecordRepository struct {
	db *gorm.DB
}

// NewGormExpenseRecordRepository creates a new GormExpenseRecordRepository
func NewGormExpenseRecordRepository(db *gorm.DB) *GormExpenseRecordRepository {
	return &GormExpenseRecordRepository{db: db}
}

// FindByID finds an expense record by its ID
func (r *GormExpenseRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.ExpenseRecord, error) {
	var model models.ExpenseRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBetween finds expense records within the optional date window, newest
// first. Nil bounds leave that side open.
func (r *GormExpenseRecordRepository) FindBetween(ctx context.Context, from, to *time.Time) ([]finance.ExpenseRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpenseRecordModel{})
	if from != nil {
		query = query.Where("expense_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("expense_date <= ?", *to)
	}

	var list []models.ExpenseRecordModel
	if err := query.Order("expense_date DESC").Find(&list).Error; err != nil {
		return nil, err
	}

	result := make([]finance.ExpenseRecord, 0, len(list))
	for i := range list {
		result = append(result, *list[i].ToDomain())
	}
	return result, nil
}

// Save creates or updates an expense record
func (r *GormExpenseRecordRepository) Save(ctx context.Context, record *finance.ExpenseRecord) error {
	var model models.ExpenseRecordModel
	model.FromDomain(record)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes an expense record
func (r *GormExpenseRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExpenseRecordRepository implements ExpenseRecordRepository
var _ finance.ExpenseRecordRepository = (*GormExpenseRecordRepository)(nil)
