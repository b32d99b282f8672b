package catalog

import (
	"time"

	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product.
// Price is a decimal string; an empty string means zero.
type CreateProductRequest struct {
	Name       string     `json:"name" validate:"required,max=200"`
	Barcode    string     `json:"barcode" validate:"max=64"`
	Price      string     `json:"price"`
	Unit       string     `json:"unit" validate:"max=20"`
	CategoryID *uuid.UUID `json:"category_id"`
}

// UpdateProductRequest represents a request to update product details.
// Empty fields are left unchanged.
type UpdateProductRequest struct {
	Name    string `json:"name" validate:"max=200"`
	Barcode string `json:"barcode" validate:"max=64"`
	Price   string `json:"price"`
	Unit    string `json:"unit" validate:"max=20"`
}

// ProductResponse represents a product in responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Barcode       *string         `json:"barcode"`
	Price         decimal.Decimal `json:"price"`
	LastBuyPrice  decimal.Decimal `json:"last_buy_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Unit          string          `json:"unit"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProductResponse converts a domain product to a response
func NewProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		Price:         p.Price,
		LastBuyPrice:  p.LastBuyPrice,
		StockQuantity: p.StockQuantity,
		Unit:          p.Unit,
		CategoryID:    p.CategoryID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
