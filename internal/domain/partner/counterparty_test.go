package partner

import (
	"strings"
	"testing"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/backoffice/core/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterpartyType(t *testing.T) {
	t.Run("IsValid returns true for valid types", func(t *testing.T) {
		assert.True(t, CounterpartyTypeReceivable.IsValid())
		assert.True(t, CounterpartyTypePayable.IsValid())
	})

	t.Run("IsValid returns false for invalid type", func(t *testing.T) {
		assert.False(t, CounterpartyType("CUSTOMER").IsValid())
	})

	t.Run("NormalizeCounterpartyType falls back to receivable", func(t *testing.T) {
		assert.Equal(t, CounterpartyTypePayable, NormalizeCounterpartyType(CounterpartyTypePayable))
		assert.Equal(t, CounterpartyTypeReceivable, NormalizeCounterpartyType(CounterpartyType("")))
		assert.Equal(t, CounterpartyTypeReceivable, NormalizeCounterpartyType(CounterpartyType("BOGUS")))
	})
}

func TestNewCounterparty(t *testing.T) {
	t.Run("creates counterparty with initial balance", func(t *testing.T) {
		balance := valueobject.NewMoneyTRY(decimal.NewFromInt(150))
		cp, err := NewCounterparty("Yilmaz Market", "0212 555 0101", "Istanbul", balance, CounterpartyTypePayable)
		require.NoError(t, err)

		assert.Equal(t, "Yilmaz Market", cp.Name)
		assert.True(t, cp.Balance.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, CounterpartyTypePayable, cp.Type)
		assert.Equal(t, 1, cp.Version)
		assert.NotEqual(t, [16]byte{}, [16]byte(cp.ID))
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCounterparty("", "", "", valueobject.ZeroTRY(), CounterpartyTypeReceivable)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with overlong name", func(t *testing.T) {
		_, err := NewCounterparty(strings.Repeat("a", 201), "", "", valueobject.ZeroTRY(), CounterpartyTypeReceivable)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("invalid type defaults to receivable", func(t *testing.T) {
		cp, err := NewCounterparty("Ali", "", "", valueobject.ZeroTRY(), CounterpartyType("WHOLESALE"))
		require.NoError(t, err)
		assert.Equal(t, CounterpartyTypeReceivable, cp.Type)
	})
}

func TestApplyMovement(t *testing.T) {
	newCP := func(t *testing.T, initial int64) *Counterparty {
		cp, err := NewCounterparty("Test", "", "", valueobject.NewMoneyTRY(decimal.NewFromInt(initial)), CounterpartyTypeReceivable)
		require.NoError(t, err)
		return cp
	}

	t.Run("collection decreases balance", func(t *testing.T) {
		cp := newCP(t, 100)
		mv, err := cp.ApplyMovement(MovementKindCollection, valueobject.NewMoneyTRY(decimal.NewFromInt(30)), "cash received")
		require.NoError(t, err)

		assert.True(t, cp.Balance.Equal(decimal.NewFromInt(70)))
		assert.True(t, mv.BalanceBefore.Equal(decimal.NewFromInt(100)))
		assert.True(t, mv.BalanceAfter.Equal(decimal.NewFromInt(70)))
	})

	t.Run("payment increases balance", func(t *testing.T) {
		cp := newCP(t, 100)
		_, err := cp.ApplyMovement(MovementKindPayment, valueobject.NewMoneyTRY(decimal.NewFromInt(30)), "")
		require.NoError(t, err)
		assert.True(t, cp.Balance.Equal(decimal.NewFromInt(130)))
	})

	t.Run("debt decreases and credit increases balance", func(t *testing.T) {
		cp := newCP(t, 0)
		_, err := cp.ApplyMovement(MovementKindCredit, valueobject.NewMoneyTRY(decimal.NewFromInt(50)), "")
		require.NoError(t, err)
		assert.True(t, cp.Balance.Equal(decimal.NewFromInt(50)))

		_, err = cp.ApplyMovement(MovementKindDebt, valueobject.NewMoneyTRY(decimal.NewFromInt(50)), "")
		require.NoError(t, err)
		assert.True(t, cp.Balance.IsZero())
	})

	t.Run("balance equals initial plus signed movement sum", func(t *testing.T) {
		cp := newCP(t, 200)
		steps := []struct {
			kind   MovementKind
			amount int64
		}{
			{MovementKindCollection, 50},
			{MovementKindCredit, 120},
			{MovementKindPayment, 30},
			{MovementKindDebt, 80},
			{MovementKindCollection, 10},
		}

		expected := decimal.NewFromInt(200)
		for _, step := range steps {
			amount := decimal.NewFromInt(step.amount)
			_, err := cp.ApplyMovement(step.kind, valueobject.NewMoneyTRY(amount), "")
			require.NoError(t, err)
			expected = expected.Add(amount.Mul(step.kind.Sign()))
		}
		assert.True(t, cp.Balance.Equal(expected), "balance %s != expected %s", cp.Balance, expected)
	})

	t.Run("fails with invalid kind", func(t *testing.T) {
		cp := newCP(t, 0)
		_, err := cp.ApplyMovement(MovementKind("TRANSFER"), valueobject.NewMoneyTRY(decimal.NewFromInt(10)), "")
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with non-positive amount", func(t *testing.T) {
		cp := newCP(t, 0)
		_, err := cp.ApplyMovement(MovementKindPayment, valueobject.ZeroTRY(), "")
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))

		_, err = cp.ApplyMovement(MovementKindPayment, valueobject.NewMoneyTRY(decimal.NewFromInt(-5)), "")
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))

		assert.True(t, cp.Balance.IsZero())
	})

	t.Run("increments version on each movement", func(t *testing.T) {
		cp := newCP(t, 0)
		before := cp.Version
		_, err := cp.ApplyMovement(MovementKindCredit, valueobject.NewMoneyTRY(decimal.NewFromInt(1)), "")
		require.NoError(t, err)
		assert.Equal(t, before+1, cp.Version)
	})
}

func TestMovementKindSign(t *testing.T) {
	assert.True(t, MovementKindCollection.Sign().Equal(decimal.NewFromInt(-1)))
	assert.True(t, MovementKindDebt.Sign().Equal(decimal.NewFromInt(-1)))
	assert.True(t, MovementKindPayment.Sign().Equal(decimal.NewFromInt(1)))
	assert.True(t, MovementKindCredit.Sign().Equal(decimal.NewFromInt(1)))
}

func TestMovementKindCashDirection(t *testing.T) {
	assert.True(t, MovementKindCollection.IsCashIn())
	assert.False(t, MovementKindCollection.IsCashOut())
	assert.True(t, MovementKindPayment.IsCashOut())
	assert.False(t, MovementKindPayment.IsCashIn())
	assert.False(t, MovementKindDebt.IsCashIn())
	assert.False(t, MovementKindCredit.IsCashOut())
}
