package models

import (
	"time"

	"github.com/backoffice/core/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// ExpenseRecordModel is the GORM model for expense records
type ExpenseRecordModel struct {
	AggregateModel
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Description string          `gorm:"type:varchar(500)"`
	ExpenseDate time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for ExpenseRecordModel
func (ExpenseRecordModel) TableName() string {
	return "expense_records"
}

// ToDomain converts the model to a domain expense record
func (m *ExpenseRecordModel) ToDomain() *finance.ExpenseRecord {
	return &finance.ExpenseRecord{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Category:          m.Category,
		Amount:            m.Amount,
		Description:       m.Description,
		ExpenseDate:       m.ExpenseDate,
	}
}

// FromDomain populates the model from a domain expense record
func (m *ExpenseRecordModel) FromDomain(e *finance.ExpenseRecord) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.Category = e.Category
	m.Amount = e.Amount
	m.Description = e.Description
	m.ExpenseDate = e.ExpenseDate
}
