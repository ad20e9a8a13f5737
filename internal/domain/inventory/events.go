package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// PurchaseEvent records a raw-material purchase. The stored record may
// carry a total price, but the ledger always recomputes it from
// quantity and unit price so edits can never leave it stale.
type PurchaseEvent struct {
	ID         uuid.UUID       `json:"id"`
	MaterialID uuid.UUID       `json:"material_id"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	Date       time.Time       `json:"date"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// NewPurchaseEvent creates a purchase event, rejecting non-positive
// quantities and prices.
func NewPurchaseEvent(materialID, supplierID uuid.UUID, date time.Time, quantity, unitPrice decimal.Decimal) (*PurchaseEvent, error) {
	if materialID == uuid.Nil {
		return nil, shared.NewValidationError("purchase material id cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("purchase quantity must be positive")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("purchase unit price must be positive")
	}

	return &PurchaseEvent{
		ID:         uuid.New(),
		MaterialID: materialID,
		SupplierID: supplierID,
		Date:       date,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	}, nil
}

// TotalPrice returns quantity x unit price at the cent boundary
func (e *PurchaseEvent) TotalPrice() decimal.Decimal {
	return valueobject.Round2(e.Quantity.Mul(e.UnitPrice))
}

// ConsumptionEvent records material drawn from stock, optionally
// attributed to a production order step.
type ConsumptionEvent struct {
	ID         uuid.UUID       `json:"id"`
	MaterialID uuid.UUID       `json:"material_id"`
	Date       time.Time       `json:"date"`
	Quantity   decimal.Decimal `json:"quantity"`
	OrderID    *uuid.UUID      `json:"order_id,omitempty"`
	Step       string          `json:"step,omitempty"`
}

// NewConsumptionEvent creates a consumption event, rejecting
// non-positive quantities.
func NewConsumptionEvent(materialID uuid.UUID, date time.Time, quantity decimal.Decimal, orderID *uuid.UUID, step string) (*ConsumptionEvent, error) {
	if materialID == uuid.Nil {
		return nil, shared.NewValidationError("consumption material id cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("consumption quantity must be positive")
	}

	return &ConsumptionEvent{
		ID:         uuid.New(),
		MaterialID: materialID,
		Date:       date,
		Quantity:   quantity,
		OrderID:    orderID,
		Step:       step,
	}, nil
}
