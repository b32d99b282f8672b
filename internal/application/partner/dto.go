package partner

import (
	"time"

	"github.com/backoffice/core/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateWarehouseRequest represents a request to create a warehouse
type CreateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=500"`
}

// UpdateWarehouseRequest represents a request to rename a warehouse or
// change its address
type UpdateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=500"`
}

// WarehouseResponse represents a warehouse in responses
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWarehouseResponse converts a domain warehouse to a response
func NewWarehouseResponse(w *partner.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
