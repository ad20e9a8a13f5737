package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

func mustMaterial(t *testing.T, name string, stock, alert float64) *Material {
	t.Helper()
	m, err := NewMaterial(name, valueobject.MustNewUnit("KG", valueobject.UnitKindMass),
		decimal.NewFromFloat(stock), decimal.NewFromFloat(alert))
	require.NoError(t, err)
	return m
}

func TestNewMaterial(t *testing.T) {
	t.Run("valid material", func(t *testing.T) {
		m := mustMaterial(t, "Oak board", 40, 10)
		assert.Equal(t, "Oak board", m.Name)
		assert.Equal(t, "KG", m.Unit.Code())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewMaterial("  ", valueobject.MustNewUnit("KG", valueobject.UnitKindMass),
			decimal.Zero, decimal.Zero)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("negative alert threshold rejected", func(t *testing.T) {
		_, err := NewMaterial("Glue", valueobject.MustNewUnit("L", valueobject.UnitKindVolume),
			decimal.Zero, decimal.NewFromInt(-1))
		assert.True(t, shared.IsValidation(err))
	})
}

func TestMaterial_StockStatus(t *testing.T) {
	tests := []struct {
		name     string
		stock    float64
		alert    float64
		expected StockStatus
	}{
		{"well above threshold", 100, 10, StockStatusGood},
		{"just above low band", 15.01, 10, StockStatusGood},
		{"inside low band", 15, 10, StockStatusLow},
		{"at threshold", 10, 10, StockStatusCritical},
		{"below threshold", 3, 10, StockStatusCritical},
		{"negative stock", -5, 10, StockStatusCritical},
		{"zero threshold with stock", 5, 0, StockStatusGood},
		{"zero threshold out of stock", 0, 0, StockStatusCritical},
		{"zero threshold negative stock", -1, 0, StockStatusCritical},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMaterial(t, "Pine plank", tc.stock, tc.alert)
			assert.Equal(t, tc.expected, m.StockStatus())
		})
	}
}

func TestStockStatus_IsValid(t *testing.T) {
	assert.True(t, StockStatusCritical.IsValid())
	assert.True(t, StockStatusLow.IsValid())
	assert.True(t, StockStatusGood.IsValid())
	assert.False(t, StockStatus("EMPTY").IsValid())
}
