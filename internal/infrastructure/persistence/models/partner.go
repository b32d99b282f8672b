package models

import (
	"time"

	"github.com/backoffice/core/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CounterpartyModel is the GORM model for counterparties
type CounterpartyModel struct {
	AggregateModel
	Name    string          `gorm:"type:varchar(200);not null;index"`
	Phone   string          `gorm:"type:varchar(50)"`
	Address string          `gorm:"type:varchar(500)"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Type    string          `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for CounterpartyModel
func (CounterpartyModel) TableName() string {
	return "counterparties"
}

// ToDomain converts the model to a domain counterparty
func (m *CounterpartyModel) ToDomain() *partner.Counterparty {
	return &partner.Counterparty{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Phone:             m.Phone,
		Address:           m.Address,
		Balance:           m.Balance,
		Type:              partner.CounterpartyType(m.Type),
	}
}

// FromDomain populates the model from a domain counterparty
func (m *CounterpartyModel) FromDomain(c *partner.Counterparty) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Address = c.Address
	m.Balance = c.Balance
	m.Type = c.Type.String()
}

// LedgerMovementModel is the GORM model for counterparty ledger movements
type LedgerMovementModel struct {
	BaseModel
	CounterpartyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind           string          `gorm:"type:varchar(20);not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BalanceBefore  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BalanceAfter   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Note           string          `gorm:"type:varchar(500)"`
	MovementDate   time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for LedgerMovementModel
func (LedgerMovementModel) TableName() string {
	return "ledger_movements"
}

// ToDomain converts the model to a domain ledger movement
func (m *LedgerMovementModel) ToDomain() *partner.LedgerMovement {
	return &partner.LedgerMovement{
		BaseEntity:     m.BaseModel.ToDomain(),
		CounterpartyID: m.CounterpartyID,
		Kind:           partner.MovementKind(m.Kind),
		Amount:         m.Amount,
		BalanceBefore:  m.BalanceBefore,
		BalanceAfter:   m.BalanceAfter,
		Note:           m.Note,
		MovementDate:   m.MovementDate,
	}
}

// FromDomain populates the model from a domain ledger movement
func (m *LedgerMovementModel) FromDomain(mv *partner.LedgerMovement) {
	m.FromDomainBaseEntity(mv.BaseEntity)
	m.CounterpartyID = mv.CounterpartyID
	m.Kind = mv.Kind.String()
	m.Amount = mv.Amount
	m.BalanceBefore = mv.BalanceBefore
	m.BalanceAfter = mv.BalanceAfter
	m.Note = mv.Note
	m.MovementDate = mv.MovementDate
}

// WarehouseModel is the GORM model for warehouses
type WarehouseModel struct {
	AggregateModel
	Name    string `gorm:"type:varchar(100);not null;index"`
	Address string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for WarehouseModel
func (WarehouseModel) TableName() string {
	return "warehouses"
}

// ToDomain converts the model to a domain warehouse
func (m *WarehouseModel) ToDomain() *partner.Warehouse {
	return &partner.Warehouse{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address:           m.Address,
	}
}

// FromDomain populates the model from a domain warehouse
func (m *WarehouseModel) FromDomain(w *partner.Warehouse) {
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	m.Name = w.Name
	m.Address = w.Address
}
