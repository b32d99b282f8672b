package inventory

import (
	"testing"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouseStock(t *testing.T) {
	t.Run("creates stock bucket", func(t *testing.T) {
		warehouseID := uuid.New()
		productID := uuid.New()
		stock, err := NewWarehouseStock(warehouseID, productID, decimal.NewFromInt(5))
		require.NoError(t, err)

		assert.Equal(t, warehouseID, stock.WarehouseID)
		assert.Equal(t, productID, stock.ProductID)
		assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(5)))
	})

	t.Run("fails with empty warehouse id", func(t *testing.T) {
		_, err := NewWarehouseStock(uuid.Nil, uuid.New(), decimal.Zero)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with empty product id", func(t *testing.T) {
		_, err := NewWarehouseStock(uuid.New(), uuid.Nil, decimal.Zero)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestWarehouseStock_Quantity(t *testing.T) {
	newStock := func(t *testing.T, qty int64) *WarehouseStock {
		stock, err := NewWarehouseStock(uuid.New(), uuid.New(), decimal.NewFromInt(qty))
		require.NoError(t, err)
		return stock
	}

	t.Run("increment and decrement adjust quantity", func(t *testing.T) {
		stock := newStock(t, 10)
		stock.Increment(decimal.NewFromInt(5))
		assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(15)))

		stock.Decrement(decimal.NewFromInt(7))
		assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(8)))
	})

	t.Run("decrement may drive quantity negative", func(t *testing.T) {
		stock := newStock(t, 3)
		stock.Decrement(decimal.NewFromInt(5))
		assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(-2)))
	})

	t.Run("SetQuantity overwrites", func(t *testing.T) {
		stock := newStock(t, 3)
		stock.SetQuantity(decimal.NewFromFloat(1.25))
		assert.True(t, stock.Quantity.Equal(decimal.NewFromFloat(1.25)))
	})

	t.Run("HasAtLeast compares against quantity", func(t *testing.T) {
		stock := newStock(t, 10)
		assert.True(t, stock.HasAtLeast(decimal.NewFromInt(10)))
		assert.True(t, stock.HasAtLeast(decimal.NewFromInt(3)))
		assert.False(t, stock.HasAtLeast(decimal.NewFromInt(11)))
	})
}

func TestNewWarehouseMovement(t *testing.T) {
	source := uuid.New()
	target := uuid.New()
	productID := uuid.New()

	t.Run("creates transfer movement", func(t *testing.T) {
		mv, err := NewWarehouseMovement(&source, &target, productID, decimal.NewFromInt(5), "restock", nil)
		require.NoError(t, err)

		assert.True(t, mv.IsTransfer())
		assert.False(t, mv.MovementDate.IsZero())
	})

	t.Run("one-sided movement is not a transfer", func(t *testing.T) {
		mv, err := NewWarehouseMovement(nil, &target, productID, decimal.NewFromInt(5), "initial load", nil)
		require.NoError(t, err)
		assert.False(t, mv.IsTransfer())
	})

	t.Run("fails with empty product id", func(t *testing.T) {
		_, err := NewWarehouseMovement(&source, &target, uuid.Nil, decimal.NewFromInt(5), "", nil)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		_, err := NewWarehouseMovement(&source, &target, productID, decimal.Zero, "", nil)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails when both endpoints are missing", func(t *testing.T) {
		_, err := NewWarehouseMovement(nil, nil, productID, decimal.NewFromInt(5), "", nil)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}
