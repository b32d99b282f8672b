package partner

import (
	"context"
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
)

// CounterpartyRepository defines persistence operations for counterparties
type CounterpartyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Counterparty, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Counterparty, error)
	FindByType(ctx context.Context, cpType CounterpartyType) ([]Counterparty, error)
	Save(ctx context.Context, counterparty *Counterparty) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LedgerMovementRepository defines persistence operations for the append-only
// movement log. Movements are never updated or deleted.
type LedgerMovementRepository interface {
	Append(ctx context.Context, movement *LedgerMovement) error
	FindByCounterparty(ctx context.Context, counterpartyID uuid.UUID) ([]LedgerMovement, error)
	FindByKindsBetween(ctx context.Context, kinds []MovementKind, from, to *time.Time) ([]LedgerMovement, error)
}

// WarehouseRepository defines persistence operations for warehouses
type WarehouseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Warehouse, error)
	Save(ctx context.Context, warehouse *Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
}
