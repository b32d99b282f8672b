package models

import (
	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM model for products
type ProductModel struct {
	AggregateModel
	Name          string          `gorm:"type:varchar(200);not null;index"`
	Barcode       *string         `gorm:"type:varchar(100);uniqueIndex"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LastBuyPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Unit          string          `gorm:"type:varchar(20)"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Barcode:           m.Barcode,
		Price:             m.Price,
		LastBuyPrice:      m.LastBuyPrice,
		StockQuantity:     m.StockQuantity,
		Unit:              m.Unit,
		CategoryID:        m.CategoryID,
	}
}

// FromDomain populates the model from a domain product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Barcode = p.Barcode
	m.Price = p.Price
	m.LastBuyPrice = p.LastBuyPrice
	m.StockQuantity = p.StockQuantity
	m.Unit = p.Unit
	m.CategoryID = p.CategoryID
}
