package partner

import (
	"time"

	"github.com/backoffice/core/internal/domain/shared"
)

// Warehouse represents a stock location
type Warehouse struct {
	shared.BaseAggregateRoot
	Name    string
	Address string
}

// NewWarehouse creates a new warehouse
func NewWarehouse(name, address string) (*Warehouse, error) {
	if name == "" {
		return nil, shared.NewValidationError("Warehouse name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewValidationError("Warehouse name cannot exceed 100 characters")
	}

	return &Warehouse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           address,
	}, nil
}

// Rename updates the warehouse name
func (w *Warehouse) Rename(name string) error {
	if name == "" {
		return shared.NewValidationError("Warehouse name cannot be empty")
	}
	w.Name = name
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

// SetAddress updates the warehouse address
func (w *Warehouse) SetAddress(address string) {
	w.Address = address
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}
