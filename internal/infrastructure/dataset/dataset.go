// Package dataset decodes the record collections served by the
// operations API (its list endpoints) into domain records. The codec
// is strictly read-only: writes belong to the API and the ledger layer
// is simply re-run on refreshed snapshots.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/finance"
	"github.com/workshop-erp/backend/internal/domain/hr"
	"github.com/workshop-erp/backend/internal/domain/inventory"
	"github.com/workshop-erp/backend/internal/domain/production"
	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// Dataset bundles the in-memory record collections every aggregation
// runs over
type Dataset struct {
	Materials    []*inventory.Material
	Purchases    []inventory.PurchaseEvent
	Consumptions []inventory.ConsumptionEvent
	Payables     []*finance.PayableOrder
	Employees    []*hr.Employee
	Allowances   []hr.AllowanceEvent
	Orders       []*production.Order
}

// validate is shared; validator instances cache struct metadata
var validate = newValidator()

// newValidator builds a validator that understands decimal.Decimal
// fields by validating their float value.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Wire DTOs mirroring the API's list-endpoint payloads.

type materialDTO struct {
	ID            uuid.UUID        `json:"id" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Unit          valueobject.Unit `json:"unit"`
	CurrentStock  decimal.Decimal  `json:"current_stock"`
	MinStockAlert decimal.Decimal  `json:"min_stock_alert" validate:"gte=0"`
}

type purchaseDTO struct {
	ID         uuid.UUID       `json:"id" validate:"required"`
	MaterialID uuid.UUID       `json:"material_id" validate:"required"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	Date       time.Time       `json:"date" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price" validate:"gt=0"`
}

type consumptionDTO struct {
	ID         uuid.UUID       `json:"id" validate:"required"`
	MaterialID uuid.UUID       `json:"material_id" validate:"required"`
	Date       time.Time       `json:"date" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	OrderID    *uuid.UUID      `json:"order_id,omitempty"`
	Step       string          `json:"step,omitempty"`
}

type lineItemDTO struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

type paymentDTO struct {
	ID     uuid.UUID       `json:"id" validate:"required"`
	Date   time.Time       `json:"date" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Method string          `json:"method,omitempty"`
	Notes  string          `json:"notes,omitempty"`
}

type payableDTO struct {
	ID        uuid.UUID     `json:"id" validate:"required"`
	Number    string        `json:"number" validate:"required"`
	OwnerID   uuid.UUID     `json:"owner_id" validate:"required"`
	OwnerKind string        `json:"owner_kind" validate:"required,oneof=SUPPLIER PIECE_WORKER"`
	Date      time.Time     `json:"date" validate:"required"`
	LineItems []lineItemDTO `json:"line_items" validate:"min=1,dive"`
	Payments  []paymentDTO  `json:"payments" validate:"dive"`
}

type employeeDTO struct {
	ID            uuid.UUID       `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	HireDate      time.Time       `json:"hire_date" validate:"required"`
	MonthlySalary decimal.Decimal `json:"monthly_salary" validate:"gte=0"`
	Status        string          `json:"status" validate:"required,oneof=ACTIVE INACTIVE ON_LEAVE"`
}

type allowanceDTO struct {
	ID         uuid.UUID       `json:"id" validate:"required"`
	EmployeeID uuid.UUID       `json:"employee_id" validate:"required"`
	Date       time.Time       `json:"date" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Notes      string          `json:"notes,omitempty"`
}

type stepEntryDTO struct {
	ID       uuid.UUID       `json:"id" validate:"required"`
	Step     string          `json:"step" validate:"required"`
	Date     time.Time       `json:"date" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0"`
	Worker   string          `json:"worker,omitempty"`
}

type orderDTO struct {
	ID       uuid.UUID       `json:"id" validate:"required"`
	Number   string          `json:"number" validate:"required"`
	Product  string          `json:"product" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0"`
	Date     time.Time       `json:"date" validate:"required"`
	Steps    []string        `json:"steps"`
	Entries  []stepEntryDTO  `json:"entries" validate:"dive"`
}

type snapshot struct {
	Materials    []materialDTO    `json:"materials" validate:"dive"`
	Purchases    []purchaseDTO    `json:"purchases" validate:"dive"`
	Consumptions []consumptionDTO `json:"consumptions" validate:"dive"`
	Payables     []payableDTO     `json:"payables" validate:"dive"`
	Employees    []employeeDTO    `json:"employees" validate:"dive"`
	Allowances   []allowanceDTO   `json:"allowances" validate:"dive"`
	Orders       []orderDTO       `json:"orders" validate:"dive"`
}

// Load decodes and validates an API snapshot
func Load(r io.Reader) (*Dataset, error) {
	var snap snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	if err := validate.Struct(&snap); err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("invalid dataset: %v", err))
	}

	return assemble(&snap)
}

// LoadFile is Load over a file on disk
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// assemble maps validated wire records onto domain records
func assemble(snap *snapshot) (*Dataset, error) {
	ds := &Dataset{}

	for _, m := range snap.Materials {
		ds.Materials = append(ds.Materials, &inventory.Material{
			BaseEntity:    shared.BaseEntity{ID: m.ID},
			Name:          m.Name,
			Unit:          m.Unit,
			CurrentStock:  m.CurrentStock,
			MinStockAlert: m.MinStockAlert,
		})
	}

	for _, p := range snap.Purchases {
		ds.Purchases = append(ds.Purchases, inventory.PurchaseEvent{
			ID:         p.ID,
			MaterialID: p.MaterialID,
			SupplierID: p.SupplierID,
			Date:       p.Date,
			Quantity:   p.Quantity,
			UnitPrice:  p.UnitPrice,
		})
	}

	for _, c := range snap.Consumptions {
		ds.Consumptions = append(ds.Consumptions, inventory.ConsumptionEvent{
			ID:         c.ID,
			MaterialID: c.MaterialID,
			Date:       c.Date,
			Quantity:   c.Quantity,
			OrderID:    c.OrderID,
			Step:       c.Step,
		})
	}

	for _, p := range snap.Payables {
		items := make([]finance.LineItem, 0, len(p.LineItems))
		for _, li := range p.LineItems {
			item, err := finance.NewLineItem(li.Description, li.Quantity, li.UnitPrice)
			if err != nil {
				return nil, fmt.Errorf("payable %s: %w", p.Number, err)
			}
			items = append(items, item)
		}

		payments := make([]finance.PaymentEvent, 0, len(p.Payments))
		for _, pay := range p.Payments {
			payments = append(payments, finance.PaymentEvent{
				ID:             pay.ID,
				PayableOrderID: p.ID,
				Date:           pay.Date,
				Amount:         pay.Amount,
				Method:         pay.Method,
				Notes:          pay.Notes,
			})
		}

		order, err := finance.RehydratePayableOrder(p.ID, p.Number, p.OwnerID,
			finance.OwnerKind(p.OwnerKind), p.Date, items, payments)
		if err != nil {
			return nil, fmt.Errorf("payable %s: %w", p.Number, err)
		}
		ds.Payables = append(ds.Payables, order)
	}

	for _, e := range snap.Employees {
		ds.Employees = append(ds.Employees, &hr.Employee{
			BaseEntity:    shared.BaseEntity{ID: e.ID},
			Name:          e.Name,
			HireDate:      e.HireDate,
			MonthlySalary: e.MonthlySalary,
			Status:        hr.EmployeeStatus(e.Status),
		})
	}

	for _, a := range snap.Allowances {
		ds.Allowances = append(ds.Allowances, hr.AllowanceEvent{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			Date:       a.Date,
			Amount:     a.Amount,
			Notes:      a.Notes,
		})
	}

	for _, o := range snap.Orders {
		steps := o.Steps
		if len(steps) == 0 {
			steps = production.DefaultSteps
		}
		entries := make([]production.StepEntry, 0, len(o.Entries))
		for _, e := range o.Entries {
			entries = append(entries, production.StepEntry{
				ID:       e.ID,
				OrderID:  o.ID,
				Step:     e.Step,
				Date:     e.Date,
				Quantity: e.Quantity,
				Worker:   e.Worker,
			})
		}
		ds.Orders = append(ds.Orders, &production.Order{
			BaseEntity: shared.BaseEntity{ID: o.ID},
			Number:     o.Number,
			Product:    o.Product,
			Quantity:   o.Quantity,
			Date:       o.Date,
			Steps:      steps,
			Entries:    entries,
		})
	}

	return ds, nil
}
