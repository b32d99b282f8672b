package catalog

import (
	"context"
	"testing"

	"github.com/backoffice/core/internal/domain/catalog"
	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func mustProduct(t *testing.T, name string, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, decimal.RequireFromString(price), "pcs")
	require.NoError(t, err)
	return product
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product with barcode", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		repo.On("FindByBarcode", ctx, "8690000000011").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			Name:    "Olive Oil 1L",
			Barcode: "8690000000011",
			Price:   "149.90",
			Unit:    "pcs",
		})

		require.NoError(t, err)
		assert.Equal(t, "Olive Oil 1L", resp.Name)
		require.NotNil(t, resp.Barcode)
		assert.Equal(t, "8690000000011", *resp.Barcode)
		assert.True(t, resp.Price.Equal(decimal.RequireFromString("149.90")))
		assert.True(t, resp.StockQuantity.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("rejects a barcode already in use", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		existing := mustProduct(t, "Sunflower Oil 1L", "89.90")
		repo.On("FindByBarcode", ctx, "8690000000011").Return(existing, nil)

		_, err := service.Create(ctx, CreateProductRequest{
			Name:    "Olive Oil 1L",
			Barcode: "8690000000011",
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails with malformed price", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		_, err := service.Create(ctx, CreateProductRequest{Name: "Olive Oil", Price: "abc"})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with empty name", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		_, err := service.Create(ctx, CreateProductRequest{Price: "10"})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and reprices", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		product := mustProduct(t, "Olive Oil", "100")
		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Save", ctx, product).Return(nil)

		resp, err := service.Update(ctx, product.ID, UpdateProductRequest{
			Name:  "Olive Oil 1L",
			Price: "120",
		})

		require.NoError(t, err)
		assert.Equal(t, "Olive Oil 1L", resp.Name)
		assert.True(t, resp.Price.Equal(decimal.NewFromInt(120)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects a barcode owned by another product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		product := mustProduct(t, "Olive Oil", "100")
		other := mustProduct(t, "Sunflower Oil", "80")
		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("FindByBarcode", ctx, "8690000000028").Return(other, nil)

		_, err := service.Update(ctx, product.ID, UpdateProductRequest{Barcode: "8690000000028"})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails when product does not exist", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateProductRequest{Name: "Olive Oil"})

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestProductService_GetByBarcode(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		product := mustProduct(t, "Olive Oil", "100")
		require.NoError(t, product.SetBarcode("8690000000011"))
		repo.On("FindByBarcode", ctx, "8690000000011").Return(product, nil)

		resp, err := service.GetByBarcode(ctx, "8690000000011")

		require.NoError(t, err)
		assert.Equal(t, product.ID, resp.ID)
	})

	t.Run("fails with empty barcode", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		_, err := service.GetByBarcode(ctx, "")

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		repo.AssertNotCalled(t, "FindByBarcode", mock.Anything, mock.Anything)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		product := mustProduct(t, "Olive Oil", "100")
		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Delete", ctx, product.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, product.ID))
		repo.AssertExpectations(t)
	})

	t.Run("fails when product does not exist", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo, nil)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, id)

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
