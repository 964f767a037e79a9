package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from valid decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("15.50"))

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.Equal(t, "15.50", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("should reject more than two fractional digits", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("9.999"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "fractional digits")
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal strings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"10", "10.00"},
			{"10.5", "10.50"},
			{"16.75", "16.75"},
			{"0", "0.00"},
		}

		for _, tc := range testCases {
			m, err := kernel.MoneyFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		}
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten dollars")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum exactly in decimal", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("0.10")
		b, _ := kernel.MoneyFromString("0.20")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "0.30", sum.String())
	})

	t.Run("zero is the identity", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("45.50")

		sum, err := a.Add(kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(a))
	})

	t.Run("should reject unconstructed operands", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("1.00")

		_, err := a.Add(kernel.Money{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_MulInt(t *testing.T) {
	t.Run("should multiply by quantity without drift", func(t *testing.T) {
		unit, _ := kernel.MoneyFromString("10.00")

		subtotal, err := unit.MulInt(3)

		require.NoError(t, err)
		assert.Equal(t, "30.00", subtotal.String())
	})

	t.Run("should compute the sample order total", func(t *testing.T) {
		// 3 x 10.00 + 1 x 15.50 = 45.50
		a, _ := kernel.MoneyFromString("10.00")
		b, _ := kernel.MoneyFromString("15.50")

		subA, err := a.MulInt(3)
		require.NoError(t, err)
		subB, err := b.MulInt(1)
		require.NoError(t, err)

		total, err := subA.Add(subB)
		require.NoError(t, err)
		assert.Equal(t, "45.50", total.String())
	})

	t.Run("should reject negative factors", func(t *testing.T) {
		unit, _ := kernel.MoneyFromString("10.00")

		_, err := unit.MulInt(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("ZeroMoney is valid", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})
}
