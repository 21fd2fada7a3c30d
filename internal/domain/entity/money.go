package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "wallet/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount is the largest amount accepted for any single operation (999,999.99)
const MaxAmount Money = 99999999

// Money is a monetary value stored in paise (minor units) to avoid
// floating point precision issues. 1015 represents 10.15.
type Money int64

// ParseMoney parses a decimal-literal string into Money.
// Uses a string-based approach to handle decimal places:
// - If no decimal point: appends "00" to get the paise value
// - If one digit after decimal: appends a "0"
// - If two digits after decimal: just removes the point
// Negative values and values with more than 2 decimal places are rejected
// with ErrInvalidAmount.
func ParseMoney(amount string) (Money, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(amount, "+") {
		return 0, fmt.Errorf("%w: explicit sign not allowed", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string

	if len(parts) == 1 {
		// No decimal point
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10."
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return Money(value), nil
}

// ParseAmount parses an operation amount (fund, pay, product price).
// On top of ParseMoney it enforces the positivity and range contract:
// zero or negative amounts and amounts above MaxAmount fail with
// ErrAmountOutOfRange.
func ParseAmount(amount string) (Money, error) {
	m, err := ParseMoney(amount)
	if err != nil {
		return 0, err
	}
	if m <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrAmountOutOfRange)
	}
	if m > MaxAmount {
		return 0, fmt.Errorf("%w: amount exceeds maximum of %s", errs.ErrAmountOutOfRange, MaxAmount.String())
	}
	return m, nil
}

// MoneyFromPaise wraps a raw paise value as Money.
func MoneyFromPaise(paise int64) Money {
	return Money(paise)
}

// Paise returns the raw minor-unit value.
func (m Money) Paise() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other. Fails with ErrInsufficientFunds when the
// result would be negative; balances never go below zero.
func (m Money) Sub(other Money) (Money, error) {
	if other > m {
		return 0, errs.ErrInsufficientFunds
	}
	return m - other, nil
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m < other
}

// String formats the amount with exactly 2 decimal places, e.g. 1015 -> "10.15".
func (m Money) String() string {
	paise := int64(m)
	isNegative := paise < 0
	if isNegative {
		paise = -paise
	}

	s := strconv.FormatInt(paise, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	decimalPos := len(s) - 2
	wholePart := s[:decimalPos]
	decimalPart := s[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}
