package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	pcs := MustNewUnit("PCS", UnitKindCount)

	q, err := NewQuantity(decimal.NewFromInt(25), pcs)
	require.NoError(t, err)
	assert.True(t, q.Amount().Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "PCS", q.Unit().Code())

	_, err = NewQuantity(decimal.NewFromInt(-1), pcs)
	assert.Error(t, err)
}

func TestQuantityFromString(t *testing.T) {
	kg := MustNewUnit("KG", UnitKindMass)

	q, err := NewQuantityFromString("2.5", kg)
	require.NoError(t, err)
	assert.Equal(t, "2.5 KG", q.String())

	_, err = NewQuantityFromString("abc", kg)
	assert.Error(t, err)
}

func TestQuantityArithmetic(t *testing.T) {
	pcs := MustNewUnit("PCS", UnitKindCount)
	kg := MustNewUnit("KG", UnitKindMass)

	a := MustNewQuantity(decimal.NewFromInt(25), pcs)
	b := MustNewQuantity(decimal.NewFromInt(6), pcs)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(31)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(19)))

	_, err = b.Sub(a)
	assert.Error(t, err, "subtraction below zero rejected")

	mixed := MustNewQuantity(decimal.NewFromInt(1), kg)
	_, err = a.Add(mixed)
	assert.Error(t, err, "unit mismatch rejected")

	assert.True(t, ZeroQuantity(pcs).IsZero())
}
