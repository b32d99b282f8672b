package models

import (
	"time"

	"github.com/backoffice/core/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseDocumentModel is the GORM model for purchase documents
type PurchaseDocumentModel struct {
	AggregateModel
	SupplierID  *uuid.UUID          `gorm:"type:uuid;index"`
	DocType     string              `gorm:"type:varchar(20);not null;index"`
	DocNumber   string              `gorm:"type:varchar(100);not null"`
	DocDate     time.Time           `gorm:"not null;index"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Description string              `gorm:"type:varchar(500)"`
	Lines       []PurchaseLineModel `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PurchaseDocumentModel
func (PurchaseDocumentModel) TableName() string {
	return "purchase_documents"
}

// ToDomain converts the model to a domain purchase document
func (m *PurchaseDocumentModel) ToDomain() *trade.PurchaseDocument {
	lines := make([]trade.PurchaseLine, 0, len(m.Lines))
	for i := range m.Lines {
		lines = append(lines, *m.Lines[i].ToDomain())
	}
	return &trade.PurchaseDocument{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		SupplierID:        m.SupplierID,
		DocType:           trade.PurchaseDocType(m.DocType),
		DocNumber:         m.DocNumber,
		DocDate:           m.DocDate,
		TotalAmount:       m.TotalAmount,
		Description:       m.Description,
		Lines:             lines,
	}
}

// FromDomain populates the model from a domain purchase document
func (m *PurchaseDocumentModel) FromDomain(d *trade.PurchaseDocument) {
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	m.SupplierID = d.SupplierID
	m.DocType = d.DocType.String()
	m.DocNumber = d.DocNumber
	m.DocDate = d.DocDate
	m.TotalAmount = d.TotalAmount
	m.Description = d.Description
	m.Lines = make([]PurchaseLineModel, 0, len(d.Lines))
	for i := range d.Lines {
		var lm PurchaseLineModel
		lm.FromDomain(&d.Lines[i])
		m.Lines = append(m.Lines, lm)
	}
}

// PurchaseLineModel is the GORM model for purchase document lines
type PurchaseLineModel struct {
	BaseModel
	DocumentID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for PurchaseLineModel
func (PurchaseLineModel) TableName() string {
	return "purchase_lines"
}

// ToDomain converts the model to a domain purchase line
func (m *PurchaseLineModel) ToDomain() *trade.PurchaseLine {
	return &trade.PurchaseLine{
		BaseEntity:  m.BaseModel.ToDomain(),
		DocumentID:  m.DocumentID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Price:       m.Price,
		LineTotal:   m.LineTotal,
	}
}

// FromDomain populates the model from a domain purchase line
func (m *PurchaseLineModel) FromDomain(l *trade.PurchaseLine) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.DocumentID = l.DocumentID
	m.ProductID = l.ProductID
	m.ProductName = l.ProductName
	m.Quantity = l.Quantity
	m.Price = l.Price
	m.LineTotal = l.LineTotal
}

// SalesLineModel is the GORM model for sale lines
type SalesLineModel struct {
	BaseModel
	ReceiptID     string          `gorm:"type:varchar(100);not null;index"`
	ProductName   string          `gorm:"type:varchar(200);not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Canceled      bool            `gorm:"not null;default:false;index"`
	SoldAt        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for SalesLineModel
func (SalesLineModel) TableName() string {
	return "sales_lines"
}

// ToDomain converts the model to a domain sale line
func (m *SalesLineModel) ToDomain() *trade.SalesLine {
	return &trade.SalesLine{
		BaseEntity:    m.BaseModel.ToDomain(),
		ReceiptID:     m.ReceiptID,
		ProductName:   m.ProductName,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		LineTotal:     m.LineTotal,
		PaymentMethod: trade.PaymentMethod(m.PaymentMethod),
		Canceled:      m.Canceled,
		SoldAt:        m.SoldAt,
	}
}

// FromDomain populates the model from a domain sale line
func (m *SalesLineModel) FromDomain(l *trade.SalesLine) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.ReceiptID = l.ReceiptID
	m.ProductName = l.ProductName
	m.Quantity = l.Quantity
	m.UnitPrice = l.UnitPrice
	m.LineTotal = l.LineTotal
	m.PaymentMethod = l.PaymentMethod.String()
	m.Canceled = l.Canceled
	m.SoldAt = l.SoldAt
}
