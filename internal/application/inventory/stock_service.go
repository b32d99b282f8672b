package inventory

import (
	"context"
	"errors"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/backoffice/core/internal/domain/inventory"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StockService reads and writes stock quantities, globally on the product or
// per warehouse. Results are not checked for sign; only the transfer path
// enforces availability.
type StockService struct {
	productRepo catalog.ProductRepository
	stockRepo   inventory.WarehouseStockRepository
	logger      *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(
	productRepo catalog.ProductRepository,
	stockRepo inventory.WarehouseStockRepository,
	logger *zap.Logger,
) *StockService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		logger:      logger,
	}
}

// GetStock returns the quantity of the addressed bucket. A warehouse bucket
// that was never written reads as zero.
func (s *StockService) GetStock(ctx context.Context, req StockRequest) (*StockResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if req.WarehouseID == nil {
		product, err := s.productRepo.FindByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		return &StockResponse{ProductID: req.ProductID, Quantity: product.StockQuantity}, nil
	}

	stock, err := s.stockRepo.FindByWarehouseAndProduct(ctx, *req.WarehouseID, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &StockResponse{ProductID: req.ProductID, WarehouseID: req.WarehouseID}, nil
		}
		return nil, err
	}
	return &StockResponse{ProductID: req.ProductID, WarehouseID: req.WarehouseID, Quantity: stock.Quantity}, nil
}

// SetStock sets the quantity of the addressed bucket directly
func (s *StockService) SetStock(ctx context.Context, req StockRequest) error {
	return s.write(ctx, req, func(p *catalog.Product) { p.SetStock(req.Quantity) },
		func(ws *inventory.WarehouseStock) { ws.SetQuantity(req.Quantity) })
}

// Increment adds quantity to the addressed bucket
func (s *StockService) Increment(ctx context.Context, req StockRequest) error {
	return s.write(ctx, req, func(p *catalog.Product) { p.IncrementStock(req.Quantity) },
		func(ws *inventory.WarehouseStock) { ws.Increment(req.Quantity) })
}

// Decrement removes quantity from the addressed bucket. The result may go
// negative.
func (s *StockService) Decrement(ctx context.Context, req StockRequest) error {
	return s.write(ctx, req, func(p *catalog.Product) { p.DecrementStock(req.Quantity) },
		func(ws *inventory.WarehouseStock) { ws.Decrement(req.Quantity) })
}

func (s *StockService) write(ctx context.Context, req StockRequest, applyProduct func(*catalog.Product), applyStock func(*inventory.WarehouseStock)) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	if req.WarehouseID == nil {
		product, err := s.productRepo.FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		applyProduct(product)
		return s.productRepo.Save(ctx, product)
	}

	stock, err := s.stockRepo.FindByWarehouseAndProduct(ctx, *req.WarehouseID, req.ProductID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		// First write to this bucket creates the row
		stock, err = inventory.NewWarehouseStock(*req.WarehouseID, req.ProductID, decimal.Zero)
		if err != nil {
			return err
		}
	}
	applyStock(stock)
	return s.stockRepo.Save(ctx, stock)
}

// ListByWarehouse returns all stock rows of a warehouse
func (s *StockService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]StockResponse, error) {
	stocks, err := s.stockRepo.FindByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	responses := make([]StockResponse, 0, len(stocks))
	for i := range stocks {
		wid := stocks[i].WarehouseID
		responses = append(responses, StockResponse{
			ProductID:   stocks[i].ProductID,
			WarehouseID: &wid,
			Quantity:    stocks[i].Quantity,
		})
	}
	return responses, nil
}
