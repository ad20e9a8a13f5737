package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a value object representing monetary amounts.
// It is immutable - all operations return new Money instances.
// All amounts share the single workshop currency; the display suffix
// comes from configuration.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a new Money with the specified amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromFloat creates Money from a float64 value
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d}, nil
}

// ZeroMoney returns a zero-value Money
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns a new Money with the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns a new Money with the difference of both amounts
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Round2 returns the amount rounded to the cent boundary
func (m Money) Round2() Money {
	return Money{amount: Round2(m.amount)}
}

// Format renders the amount with exactly two decimal places and the
// given currency suffix, e.g. "1250.00 MMK".
func (m Money) Format(suffix string) string {
	if suffix == "" {
		return m.amount.StringFixed(2)
	}
	return m.amount.StringFixed(2) + " " + suffix
}

// Round2 rounds to 2 decimal places using round-half-up on the cent
// boundary. decimal scales by integer exponents internally, so repeated
// sums of values like 0.1 and 0.2 stay exact.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Sum adds the given values without floating-point drift
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Percentage returns part/whole as a percentage rounded to 2 places.
// A zero whole yields 0, never a division error.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2)
}
