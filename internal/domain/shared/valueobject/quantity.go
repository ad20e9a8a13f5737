package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is an immutable value object pairing an amount with its
// measurement unit. Arithmetic is only defined between quantities of
// the same unit.
type Quantity struct {
	amount decimal.Decimal
	unit   Unit
}

// NewQuantity creates a quantity, rejecting negative amounts
func NewQuantity(amount decimal.Decimal, unit Unit) (Quantity, error) {
	if amount.IsNegative() {
		return Quantity{}, errors.New("quantity cannot be negative")
	}
	return Quantity{amount: amount, unit: unit}, nil
}

// NewQuantityFromString creates a quantity from a decimal string
func NewQuantityFromString(amount string, unit Unit) (Quantity, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity string: %w", err)
	}
	return NewQuantity(d, unit)
}

// MustNewQuantity creates a quantity and panics on error
func MustNewQuantity(amount decimal.Decimal, unit Unit) Quantity {
	q, err := NewQuantity(amount, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// ZeroQuantity returns a zero quantity of the given unit
func ZeroQuantity(unit Unit) Quantity {
	return Quantity{amount: decimal.Zero, unit: unit}
}

// Amount returns the numeric amount
func (q Quantity) Amount() decimal.Decimal {
	return q.amount
}

// Unit returns the measurement unit
func (q Quantity) Unit() Unit {
	return q.unit
}

// IsZero reports whether the amount is zero
func (q Quantity) IsZero() bool {
	return q.amount.IsZero()
}

// Add returns the sum of two quantities of the same unit
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if !q.unit.Equals(other.unit) {
		return Quantity{}, fmt.Errorf("unit mismatch: %s vs %s", q.unit, other.unit)
	}
	return Quantity{amount: q.amount.Add(other.amount), unit: q.unit}, nil
}

// Sub returns the difference of two quantities of the same unit,
// rejecting results below zero.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if !q.unit.Equals(other.unit) {
		return Quantity{}, fmt.Errorf("unit mismatch: %s vs %s", q.unit, other.unit)
	}
	result := q.amount.Sub(other.amount)
	if result.IsNegative() {
		return Quantity{}, errors.New("quantity cannot go negative")
	}
	return Quantity{amount: result, unit: q.unit}, nil
}

func (q Quantity) String() string {
	return q.amount.String() + " " + q.unit.Code()
}
