package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the fixed number of fractional digits for all monetary values.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when a Money value was not created via
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is an immutable value object for monetary amounts. Amounts are exact
// decimals with two fractional digits and are never negative; arithmetic is
// performed in decimal so repeated sums carry no rounding drift.
//
// The zero value is invalid - use NewMoney, MoneyFromString, or ZeroMoney.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must be non-negative and carry at most two fractional digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is negative", amount.String()))
	}
	if !amount.Round(MoneyScale).Equal(amount) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s has more than %d fractional digits", amount.String(), MoneyScale))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money value from its decimal string form, e.g. "15.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money value of 0.00, the identity for Add.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the exact sum of two Money values.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Multiplying a two-digit decimal by an integer never requires rounding.
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor is invalid",
			fmt.Errorf("%d is negative", factor))
	}

	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Decimal returns the underlying decimal amount for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits, e.g. "45.50".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Validate returns ErrMoneyIsNotConstructed for zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
