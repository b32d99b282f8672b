package finance

import (
	"testing"
	"time"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpenseRecord(t *testing.T) {
	t.Run("creates expense record", func(t *testing.T) {
		date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		expense, err := NewExpenseRecord("RENT", decimal.NewFromInt(5000), "March rent", date)
		require.NoError(t, err)

		assert.Equal(t, "RENT", expense.Category)
		assert.True(t, expense.Amount.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, date, expense.ExpenseDate)
	})

	t.Run("fails with empty category", func(t *testing.T) {
		_, err := NewExpenseRecord("", decimal.NewFromInt(100), "", time.Now())
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with non-positive amount", func(t *testing.T) {
		_, err := NewExpenseRecord("RENT", decimal.Zero, "", time.Now())
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))

		_, err = NewExpenseRecord("RENT", decimal.NewFromInt(-5), "", time.Now())
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("zero date defaults to now", func(t *testing.T) {
		expense, err := NewExpenseRecord("UTILITIES", decimal.NewFromInt(100), "", time.Time{})
		require.NoError(t, err)
		assert.False(t, expense.ExpenseDate.IsZero())
	})
}

func TestExpenseRecord_SetDescription(t *testing.T) {
	expense, err := NewExpenseRecord("RENT", decimal.NewFromInt(100), "old", time.Now())
	require.NoError(t, err)

	expense.SetDescription("new")
	assert.Equal(t, "new", expense.Description)
}
