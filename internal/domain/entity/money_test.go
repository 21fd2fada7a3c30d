package entity

import (
	"testing"

	errs "wallet/internal/domain/error"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected Money
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"999999.99", 99999999},
			{"0.00", 0},
			{"0", 0},
			{"10.", 1000},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				m, err := ParseMoney(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, m)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"-1.00", "Negative amount"},
			{"+1.00", "Explicit plus sign"},
			{"1.234", "Too many decimal places"},
			{"abc", "Non-numeric"},
			{"1,000.00", "Comma as thousands separator"},
			{"1.00.00", "Multiple decimal points"},
			{"$100", "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseMoney(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("Accepts the maximum amount", func(t *testing.T) {
		m, err := ParseAmount("999999.99")
		assert.NoError(t, err)
		assert.Equal(t, MaxAmount, m)
	})

	t.Run("Rejects amounts above the maximum", func(t *testing.T) {
		_, err := ParseAmount("1000000.00")
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAmountOutOfRange)
	})

	t.Run("Rejects zero", func(t *testing.T) {
		_, err := ParseAmount("0.00")
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAmountOutOfRange)
	})

	t.Run("Rejects negative amounts", func(t *testing.T) {
		_, err := ParseAmount("-5.00")
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Accepts the smallest positive amount", func(t *testing.T) {
		m, err := ParseAmount("0.01")
		assert.NoError(t, err)
		assert.Equal(t, Money(1), m)
	})
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		paise    int64
		expected string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{10, "0.10"},
		{100, "1.00"},
		{1015, "10.15"},
		{99999999, "999999.99"},
		{-150, "-1.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, MoneyFromPaise(tc.paise).String())
		})
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	// String() output must parse back to the same value
	values := []Money{0, 1, 99, 100, 1015, 123456, MaxAmount}
	for _, v := range values {
		parsed, err := ParseMoney(v.String())
		assert.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, Money(300), Money(100).Add(Money(200)))
	})

	t.Run("Sub within balance", func(t *testing.T) {
		result, err := Money(300).Sub(Money(100))
		assert.NoError(t, err)
		assert.Equal(t, Money(200), result)
	})

	t.Run("Sub to exactly zero", func(t *testing.T) {
		result, err := Money(300).Sub(Money(300))
		assert.NoError(t, err)
		assert.Equal(t, Money(0), result)
	})

	t.Run("Sub below zero fails", func(t *testing.T) {
		_, err := Money(100).Sub(Money(101))
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("LessThan", func(t *testing.T) {
		assert.True(t, Money(99).LessThan(Money(100)))
		assert.False(t, Money(100).LessThan(Money(100)))
	})
}
