package models

import (
	"time"

	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseStockModel is the GORM model for per-warehouse stock rows
type WarehouseStockModel struct {
	AggregateModel
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_product"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_product"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for WarehouseStockModel
func (WarehouseStockModel) TableName() string {
	return "warehouse_stocks"
}

// ToDomain converts the model to a domain warehouse stock
func (m *WarehouseStockModel) ToDomain() *inventory.WarehouseStock {
	return &inventory.WarehouseStock{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		WarehouseID:       m.WarehouseID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
	}
}

// FromDomain populates the model from a domain warehouse stock
func (m *WarehouseStockModel) FromDomain(s *inventory.WarehouseStock) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.WarehouseID = s.WarehouseID
	m.ProductID = s.ProductID
	m.Quantity = s.Quantity
}

// WarehouseMovementModel is the GORM model for warehouse movement records
type WarehouseMovementModel struct {
	BaseModel
	SourceWarehouseID *uuid.UUID      `gorm:"type:uuid;index"`
	TargetWarehouseID *uuid.UUID      `gorm:"type:uuid;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Description       string          `gorm:"type:varchar(500)"`
	UserID            *uuid.UUID      `gorm:"type:uuid"`
	MovementDate      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for WarehouseMovementModel
func (WarehouseMovementModel) TableName() string {
	return "warehouse_movements"
}

// ToDomain converts the model to a domain warehouse movement
func (m *WarehouseMovementModel) ToDomain() *inventory.WarehouseMovement {
	return &inventory.WarehouseMovement{
		BaseEntity:        m.BaseModel.ToDomain(),
		SourceWarehouseID: m.SourceWarehouseID,
		TargetWarehouseID: m.TargetWarehouseID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		Description:       m.Description,
		UserID:            m.UserID,
		MovementDate:      m.MovementDate,
	}
}

// FromDomain populates the model from a domain warehouse movement
func (m *WarehouseMovementModel) FromDomain(mv *inventory.WarehouseMovement) {
	m.FromDomainBaseEntity(mv.BaseEntity)
	m.SourceWarehouseID = mv.SourceWarehouseID
	m.TargetWarehouseID = mv.TargetWarehouseID
	m.ProductID = mv.ProductID
	m.Quantity = mv.Quantity
	m.Description = mv.Description
	m.UserID = mv.UserID
	m.MovementDate = mv.MovementDate
}
