package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// StockLedger derives stock levels, price averages and valuations from
// immutable purchase/consumption event streams. It never mutates its
// inputs; every query returns a fresh value.
type StockLedger struct {
	ordered      []*Material
	materials    map[uuid.UUID]*Material
	purchases    []PurchaseEvent
	consumptions []ConsumptionEvent
}

// NewStockLedger builds a ledger over the given record collections.
// Material order is preserved for report output.
func NewStockLedger(materials []*Material, purchases []PurchaseEvent, consumptions []ConsumptionEvent) *StockLedger {
	byID := make(map[uuid.UUID]*Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}
	return &StockLedger{
		ordered:      materials,
		materials:    byID,
		purchases:    purchases,
		consumptions: consumptions,
	}
}

// Material returns the material record for the given id
func (l *StockLedger) Material(materialID uuid.UUID) (*Material, error) {
	m, ok := l.materials[materialID]
	if !ok {
		return nil, shared.NewNotFoundError("material", materialID.String())
	}
	return m, nil
}

// EffectiveStock replays the material's purchase and consumption
// events and returns purchased minus consumed quantity. With an
// unbounded range this is the authoritative running total and must
// equal the persisted CurrentStock snapshot.
func (l *StockLedger) EffectiveStock(materialID uuid.UUID, rng valueobject.DateRange) (decimal.Decimal, error) {
	if _, err := l.Material(materialID); err != nil {
		return decimal.Zero, err
	}

	purchased := decimal.Zero
	for _, p := range l.purchases {
		if p.MaterialID == materialID && rng.Contains(p.Date) {
			purchased = purchased.Add(p.Quantity)
		}
	}

	consumed := decimal.Zero
	for _, c := range l.consumptions {
		if c.MaterialID == materialID && rng.Contains(c.Date) {
			consumed = consumed.Add(c.Quantity)
		}
	}

	return purchased.Sub(consumed), nil
}

// AverageUnitPrice returns the unweighted mean of the material's
// purchase unit prices; 0 when the material has no purchases.
//
// NOTE: this deliberately ignores purchased quantities. A
// quantity-weighted average would price the stock more accurately, but
// the unweighted mean is the established behavior of the reports built
// on this ledger, so changing it needs a product decision first.
func (l *StockLedger) AverageUnitPrice(materialID uuid.UUID) (decimal.Decimal, error) {
	if _, err := l.Material(materialID); err != nil {
		return decimal.Zero, err
	}

	prices := make([]decimal.Decimal, 0)
	for _, p := range l.purchases {
		if p.MaterialID == materialID {
			prices = append(prices, p.UnitPrice)
		}
	}
	if len(prices) == 0 {
		return decimal.Zero, nil
	}

	total := valueobject.Sum(prices)
	return total.Div(decimal.NewFromInt(int64(len(prices)))).Round(2), nil
}

// Valuation prices the material's current stock at its average unit
// price. Materials without purchases value at 0.
func (l *StockLedger) Valuation(materialID uuid.UUID) (decimal.Decimal, error) {
	m, err := l.Material(materialID)
	if err != nil {
		return decimal.Zero, err
	}

	avg, err := l.AverageUnitPrice(materialID)
	if err != nil {
		return decimal.Zero, err
	}

	return valueobject.Round2(m.CurrentStock.Mul(avg)), nil
}

// PurchaseTotal sums purchase spend for the material inside the range
func (l *StockLedger) PurchaseTotal(materialID uuid.UUID, rng valueobject.DateRange) (decimal.Decimal, error) {
	if _, err := l.Material(materialID); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range l.purchases {
		if p.MaterialID == materialID && rng.Contains(p.Date) {
			total = total.Add(p.TotalPrice())
		}
	}
	return valueobject.Round2(total), nil
}

// PurchasedQuantity sums the quantity bought for the material inside
// the range, expressed in the material's unit.
func (l *StockLedger) PurchasedQuantity(materialID uuid.UUID, rng valueobject.DateRange) (valueobject.Quantity, error) {
	m, err := l.Material(materialID)
	if err != nil {
		return valueobject.Quantity{}, err
	}

	total := valueobject.ZeroQuantity(m.Unit)
	for _, p := range l.purchases {
		if p.MaterialID != materialID || !rng.Contains(p.Date) {
			continue
		}
		bought, err := valueobject.NewQuantity(p.Quantity, m.Unit)
		if err != nil {
			return valueobject.Quantity{}, err
		}
		total, err = total.Add(bought)
		if err != nil {
			return valueobject.Quantity{}, err
		}
	}
	return total, nil
}

// Materials returns the tracked material records in input order
func (l *StockLedger) Materials() []*Material {
	return l.ordered
}

// Purchases returns the purchase events the ledger was built over
func (l *StockLedger) Purchases() []PurchaseEvent {
	return l.purchases
}

// Consumptions returns the consumption events the ledger was built over
func (l *StockLedger) Consumptions() []ConsumptionEvent {
	return l.consumptions
}
