package trade

import (
	"testing"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod(t *testing.T) {
	t.Run("IsValid returns true for valid methods", func(t *testing.T) {
		assert.True(t, PaymentMethodCash.IsValid())
		assert.True(t, PaymentMethodCard.IsValid())
	})

	t.Run("IsValid returns false for invalid method", func(t *testing.T) {
		assert.False(t, PaymentMethod("CHECK").IsValid())
	})
}

func TestNewSalesLine(t *testing.T) {
	t.Run("creates line with explicit total", func(t *testing.T) {
		line, err := NewSalesLine("R-100", "Milk 1L", decimal.NewFromInt(2), decimal.NewFromInt(20), decimal.NewFromInt(38), PaymentMethodCash)
		require.NoError(t, err)

		assert.Equal(t, "R-100", line.ReceiptID)
		assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(38)))
		assert.False(t, line.Canceled)
		assert.False(t, line.SoldAt.IsZero())
	})

	t.Run("zero total defaults to quantity times unit price", func(t *testing.T) {
		line, err := NewSalesLine("R-100", "Cheese", decimal.NewFromFloat(0.5), decimal.NewFromInt(300), decimal.Zero, PaymentMethodCard)
		require.NoError(t, err)
		assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(150)))
	})

	t.Run("fails with empty receipt id", func(t *testing.T) {
		_, err := NewSalesLine("", "Milk 1L", decimal.NewFromInt(1), decimal.NewFromInt(20), decimal.Zero, PaymentMethodCash)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with empty product name", func(t *testing.T) {
		_, err := NewSalesLine("R-100", "", decimal.NewFromInt(1), decimal.NewFromInt(20), decimal.Zero, PaymentMethodCash)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		_, err := NewSalesLine("R-100", "Milk 1L", decimal.Zero, decimal.NewFromInt(20), decimal.Zero, PaymentMethodCash)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with invalid payment method", func(t *testing.T) {
		_, err := NewSalesLine("R-100", "Milk 1L", decimal.NewFromInt(1), decimal.NewFromInt(20), decimal.Zero, PaymentMethod("CHECK"))
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestSalesLine_Cancel(t *testing.T) {
	line, err := NewSalesLine("R-100", "Milk 1L", decimal.NewFromInt(1), decimal.NewFromInt(20), decimal.Zero, PaymentMethodCash)
	require.NoError(t, err)

	line.Cancel()
	assert.True(t, line.Canceled)
}

func TestSalesLine_IsCash(t *testing.T) {
	cash, err := NewSalesLine("R-100", "Milk 1L", decimal.NewFromInt(1), decimal.NewFromInt(20), decimal.Zero, PaymentMethodCash)
	require.NoError(t, err)
	assert.True(t, cash.IsCash())

	card, err := NewSalesLine("R-100", "Milk 1L", decimal.NewFromInt(1), decimal.NewFromInt(20), decimal.Zero, PaymentMethodCard)
	require.NoError(t, err)
	assert.False(t, card.IsCash())
}
