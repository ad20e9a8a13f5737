package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// StockStatus represents the alert level of a material's stock
type StockStatus string

const (
	StockStatusCritical StockStatus = "CRITICAL" // stock at or below the alert threshold
	StockStatusLow      StockStatus = "LOW"      // stock within 150% of the alert threshold
	StockStatusGood     StockStatus = "GOOD"
)

// IsValid checks if the status is a valid StockStatus
func (s StockStatus) IsValid() bool {
	switch s {
	case StockStatusCritical, StockStatusLow, StockStatusGood:
		return true
	}
	return false
}

// String returns the string representation of StockStatus
func (s StockStatus) String() string {
	return string(s)
}

// lowStockFactor is the LOW band ceiling relative to MinStockAlert (150%)
var lowStockFactor = decimal.NewFromFloat(1.5)

// Material represents a raw material tracked by the stock ledger.
// CurrentStock is the snapshot persisted by the upstream API at last
// sync; for any filtered view the ledger recomputes stock from the
// purchase/consumption event stream instead of trusting it.
type Material struct {
	shared.BaseEntity
	Name          string           `json:"name"`
	Unit          valueobject.Unit `json:"unit"`
	CurrentStock  decimal.Decimal  `json:"current_stock"`
	MinStockAlert decimal.Decimal  `json:"min_stock_alert"`
}

// NewMaterial creates a new material record
func NewMaterial(name string, unit valueobject.Unit, currentStock, minStockAlert decimal.Decimal) (*Material, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("material name cannot be empty")
	}
	if minStockAlert.IsNegative() {
		return nil, shared.NewValidationError("minimum stock alert cannot be negative")
	}

	return &Material{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		Unit:          unit,
		CurrentStock:  currentStock,
		MinStockAlert: minStockAlert,
	}, nil
}

// StockStatus classifies the current stock level against the alert
// threshold. With a zero threshold the ratio bands are inapplicable:
// the material is CRITICAL when out of stock and GOOD otherwise.
func (m *Material) StockStatus() StockStatus {
	if m.MinStockAlert.IsZero() {
		if m.CurrentStock.LessThanOrEqual(decimal.Zero) {
			return StockStatusCritical
		}
		return StockStatusGood
	}

	if m.CurrentStock.LessThanOrEqual(m.MinStockAlert) {
		return StockStatusCritical
	}
	if m.CurrentStock.LessThanOrEqual(m.MinStockAlert.Mul(lowStockFactor)) {
		return StockStatusLow
	}
	return StockStatusGood
}
