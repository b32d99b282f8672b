package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransferService moves quantity between two warehouse buckets. Availability
// is checked before anything is written; on failure no state changes and no
// movement is recorded. The decrement, increment, and audit append run in one
// transaction.
type TransferService struct {
	scope   TransactionScope
	logger  *zap.Logger
	metrics *telemetry.BusinessMetrics
}

// NewTransferService creates a new TransferService
func NewTransferService(scope TransactionScope, logger *zap.Logger) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferService{
		scope:  scope,
		logger: logger,
	}
}

// SetMetrics sets the business metrics recorder
func (s *TransferService) SetMetrics(metrics *telemetry.BusinessMetrics) {
	s.metrics = metrics
}

// Transfer moves quantity from the source warehouse to the target warehouse
// and appends a movement record
func (s *TransferService) Transfer(ctx context.Context, req TransferRequest) (*MovementResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Transfer quantity must be positive")
	}
	if req.SourceWarehouseID == req.TargetWarehouseID {
		return nil, shared.NewValidationError("Source and target warehouses must differ")
	}

	var response *MovementResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		source, err := repos.StockRepo().FindByWarehouseAndProduct(ctx, req.SourceWarehouseID, req.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewInsufficientStockError(
					fmt.Sprintf("Source warehouse has no stock of product %s", req.ProductID))
			}
			return err
		}
		if !source.HasAtLeast(req.Quantity) {
			return shared.NewInsufficientStockError(
				fmt.Sprintf("Requested %s exceeds available %s", req.Quantity, source.Quantity))
		}

		target, err := repos.StockRepo().FindByWarehouseAndProduct(ctx, req.TargetWarehouseID, req.ProductID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			target, err = inventory.NewWarehouseStock(req.TargetWarehouseID, req.ProductID, decimal.Zero)
			if err != nil {
				return err
			}
		}

		source.Decrement(req.Quantity)
		target.Increment(req.Quantity)

		if err := repos.StockRepo().Save(ctx, source); err != nil {
			return err
		}
		if err := repos.StockRepo().Save(ctx, target); err != nil {
			return err
		}

		movement, err := inventory.NewWarehouseMovement(
			&req.SourceWarehouseID, &req.TargetWarehouseID,
			req.ProductID, req.Quantity, req.Description, req.UserID)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Append(ctx, movement); err != nil {
			return err
		}

		response = NewMovementResponse(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordWarehouseTransfer(ctx)
	s.logger.Info("warehouse transfer completed",
		zap.String("source_warehouse_id", req.SourceWarehouseID.String()),
		zap.String("target_warehouse_id", req.TargetWarehouseID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("quantity", req.Quantity.String()))

	return response, nil
}
