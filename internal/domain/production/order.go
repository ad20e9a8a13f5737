package production

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// DefaultSteps is the workshop's standard production sequence. Orders
// may carry their own sequence when a product skips or adds steps.
var DefaultSteps = []string{"Cutting", "Assembly", "Finishing", "Upholstery", "Packing"}

// StepEntry records progress on one production step: a worker reporting
// a quantity finished on a date.
type StepEntry struct {
	ID       uuid.UUID       `json:"id"`
	OrderID  uuid.UUID       `json:"order_id"`
	Step     string          `json:"step"`
	Date     time.Time       `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
	Worker   string          `json:"worker,omitempty"`
}

// Order is a furniture production order progressing through a fixed
// sequence of steps. Progress is derived from step entries, never
// stored. AddEntry returns an updated copy; the receiver is unchanged.
type Order struct {
	shared.BaseEntity
	Number   string          `json:"number"`
	Product  string          `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
	Date     time.Time       `json:"date"`
	Steps    []string        `json:"steps"`
	Entries  []StepEntry     `json:"entries"`
}

// NewOrder creates a production order. An empty steps slice falls back
// to the standard sequence.
func NewOrder(number, product string, quantity decimal.Decimal, orderDate time.Time, steps []string) (*Order, error) {
	number = strings.TrimSpace(number)
	product = strings.TrimSpace(product)
	if number == "" {
		return nil, shared.NewValidationError("order number cannot be empty")
	}
	if product == "" {
		return nil, shared.NewValidationError("order product cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("order quantity must be positive")
	}
	if len(steps) == 0 {
		steps = DefaultSteps
	}

	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		Number:     number,
		Product:    product,
		Quantity:   quantity,
		Date:       orderDate,
		Steps:      append([]string(nil), steps...),
		Entries:    make([]StepEntry, 0),
	}, nil
}

// HasStep reports whether the order's sequence includes the step
func (o *Order) HasStep(step string) bool {
	for _, s := range o.Steps {
		if s == step {
			return true
		}
	}
	return false
}

// AddEntry returns a copy of the order with the progress entry
// appended. Entries for steps outside the order's sequence and
// non-positive quantities are rejected.
func (o *Order) AddEntry(step string, entryDate time.Time, quantity decimal.Decimal, worker string) (*Order, error) {
	if !o.HasStep(step) {
		return nil, shared.NewValidationError("unknown production step: " + step)
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("step entry quantity must be positive")
	}

	next := *o
	next.Steps = append([]string(nil), o.Steps...)
	next.Entries = append(append([]StepEntry(nil), o.Entries...), StepEntry{
		ID:       uuid.New(),
		OrderID:  o.ID,
		Step:     step,
		Date:     entryDate,
		Quantity: quantity,
		Worker:   worker,
	})
	return &next, nil
}

// StepDone returns the quantity finished for one step, capped at the
// ordered quantity so over-reporting cannot push progress past 100%.
func (o *Order) StepDone(step string) decimal.Decimal {
	done := decimal.Zero
	for _, e := range o.Entries {
		if e.Step == step {
			done = done.Add(e.Quantity)
		}
	}
	if done.GreaterThan(o.Quantity) {
		return o.Quantity
	}
	return done
}

// StepProgress returns one step's completion as a percentage
func (o *Order) StepProgress(step string) decimal.Decimal {
	return valueobject.Percentage(o.StepDone(step), o.Quantity)
}

// Progress returns overall completion as the mean of the per-step
// percentages.
func (o *Order) Progress() decimal.Decimal {
	if len(o.Steps) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, s := range o.Steps {
		total = total.Add(o.StepProgress(s))
	}
	return total.Div(decimal.NewFromInt(int64(len(o.Steps)))).Round(2)
}

// CurrentStep returns the first step still below full completion.
// The second return is false once every step is done.
func (o *Order) CurrentStep() (string, bool) {
	for _, s := range o.Steps {
		if o.StepDone(s).LessThan(o.Quantity) {
			return s, true
		}
	}
	return "", false
}

// IsComplete reports whether every step has finished the full quantity
func (o *Order) IsComplete() bool {
	_, pending := o.CurrentStep()
	return !pending
}
