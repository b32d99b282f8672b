package partner

import (
	"context"
	"fmt"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/partner"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WarehouseService manages stock locations
type WarehouseService struct {
	scope         TransactionScope
	warehouseRepo partner.WarehouseRepository
	logger        *zap.Logger
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(
	scope TransactionScope,
	warehouseRepo partner.WarehouseRepository,
	logger *zap.Logger,
) *WarehouseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WarehouseService{
		scope:         scope,
		warehouseRepo: warehouseRepo,
		logger:        logger,
	}
}

// Create creates a warehouse
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	warehouse, err := partner.NewWarehouse(req.Name, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	s.logger.Info("warehouse created",
		zap.String("warehouse_id", warehouse.ID.String()),
		zap.String("name", warehouse.Name))

	return NewWarehouseResponse(warehouse), nil
}

// Get retrieves a warehouse by id
func (s *WarehouseService) Get(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewWarehouseResponse(warehouse), nil
}

// List lists warehouses matching the filter
func (s *WarehouseService) List(ctx context.Context, filter shared.Filter) ([]WarehouseResponse, error) {
	warehouses, err := s.warehouseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]WarehouseResponse, 0, len(warehouses))
	for i := range warehouses {
		responses = append(responses, *NewWarehouseResponse(&warehouses[i]))
	}
	return responses, nil
}

// Update renames a warehouse and updates its address
func (s *WarehouseService) Update(ctx context.Context, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := warehouse.Rename(req.Name); err != nil {
		return nil, err
	}
	warehouse.SetAddress(req.Address)

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	s.logger.Info("warehouse updated", zap.String("warehouse_id", warehouse.ID.String()))

	return NewWarehouseResponse(warehouse), nil
}

// Delete removes a warehouse together with all of its stock rows. Movement
// records referencing the warehouse are kept as history.
func (s *WarehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.WarehouseRepo().FindByID(ctx, id); err != nil {
			return fmt.Errorf("finding warehouse: %w", err)
		}
		if err := repos.StockRepo().DeleteByWarehouse(ctx, id); err != nil {
			return fmt.Errorf("deleting warehouse stock: %w", err)
		}
		if err := repos.WarehouseRepo().Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting warehouse: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("warehouse deleted", zap.String("warehouse_id", id.String()))
	return nil
}
