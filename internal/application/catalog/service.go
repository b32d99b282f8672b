package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/backoffice/core/internal/application/validation"
	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService manages the product catalog
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create creates a product. A non-empty barcode must not already be in use.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	price := decimal.Zero
	if req.Price != "" {
		parsed, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, shared.NewValidationError(fmt.Sprintf("Invalid product price: %s", req.Price))
		}
		price = parsed
	}

	product, err := catalog.NewProduct(req.Name, price, req.Unit)
	if err != nil {
		return nil, err
	}

	if req.Barcode != "" {
		if err := s.ensureBarcodeFree(ctx, req.Barcode); err != nil {
			return nil, err
		}
		if err := product.SetBarcode(req.Barcode); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		product.SetCategory(*req.CategoryID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	return NewProductResponse(product), nil
}

// Get retrieves a product by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// GetByBarcode retrieves a product by its barcode
func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*ProductResponse, error) {
	if barcode == "" {
		return nil, shared.NewValidationError("Barcode cannot be empty")
	}
	product, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// GetByName retrieves a product by its name. When several products share the
// name, the oldest one is returned.
func (s *ProductService) GetByName(ctx context.Context, name string) (*ProductResponse, error) {
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	product, err := s.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// List lists products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *NewProductResponse(&products[i]))
	}
	return responses, nil
}

// Update changes product details. Empty request fields are left unchanged;
// a changed barcode must not already belong to another product.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != product.Name {
		if err := product.Rename(req.Name); err != nil {
			return nil, err
		}
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, shared.NewValidationError(fmt.Sprintf("Invalid product price: %s", req.Price))
		}
		if err := product.SetPrice(price); err != nil {
			return nil, err
		}
	}
	if req.Unit != "" {
		product.SetUnit(req.Unit)
	}
	if req.Barcode != "" && (product.Barcode == nil || *product.Barcode != req.Barcode) {
		if err := s.ensureBarcodeFree(ctx, req.Barcode); err != nil {
			return nil, err
		}
		if err := product.SetBarcode(req.Barcode); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.String("product_id", product.ID.String()))

	return NewProductResponse(product), nil
}

// Delete removes a product. Stock rows and past document lines keep their
// recorded names and quantities.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

func (s *ProductService) ensureBarcodeFree(ctx context.Context, barcode string) error {
	existing, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	return shared.NewValidationError(fmt.Sprintf("Barcode %s is already used by product %s", barcode, existing.Name))
}
