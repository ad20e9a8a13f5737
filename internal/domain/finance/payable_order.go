package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// PaymentStatus represents the tri-state payment standing of a payable order
type PaymentStatus string

const (
	PaymentStatusNotPaid  PaymentStatus = "NOT_PAID"
	PaymentStatusPartPaid PaymentStatus = "PART_PAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusNotPaid, PaymentStatusPartPaid, PaymentStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// ComputeStatus derives the payment status from a total and the amount
// paid so far. PAID is inclusive: exact payment and overpayment both
// count as fully paid.
func ComputeStatus(totalAmount, paidAmount decimal.Decimal) PaymentStatus {
	switch {
	case paidAmount.GreaterThanOrEqual(totalAmount):
		return PaymentStatusPaid
	case paidAmount.GreaterThan(decimal.Zero):
		return PaymentStatusPartPaid
	default:
		return PaymentStatusNotPaid
	}
}

// OwnerKind distinguishes who a payable order is owed to
type OwnerKind string

const (
	OwnerKindSupplier    OwnerKind = "SUPPLIER"
	OwnerKindPieceWorker OwnerKind = "PIECE_WORKER"
)

// IsValid checks if the kind is a valid OwnerKind
func (k OwnerKind) IsValid() bool {
	return k == OwnerKindSupplier || k == OwnerKindPieceWorker
}

// LineItem is a priced line belonging to a payable order or receipt
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// NewLineItem creates a line item, rejecting non-positive quantities
// and negative prices.
func NewLineItem(description string, quantity, unitPrice decimal.Decimal) (LineItem, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return LineItem{}, shared.NewValidationError("line item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return LineItem{}, shared.NewValidationError("line item unit price cannot be negative")
	}
	return LineItem{Description: description, Quantity: quantity, UnitPrice: unitPrice}, nil
}

// LineTotal returns quantity x unit price at the cent boundary
func (li LineItem) LineTotal() decimal.Decimal {
	return valueobject.Round2(li.Quantity.Mul(li.UnitPrice))
}

// PaymentEvent records money paid against a payable order
type PaymentEvent struct {
	ID             uuid.UUID       `json:"id"`
	PayableOrderID uuid.UUID       `json:"payable_order_id"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// PayableOrder is any record with a total owed and a stream of payments
// against it: supplier purchase orders and piece-worker receipts share
// this shape. The aggregate is treated as immutable; AddPayment and
// RemovePayment return updated copies and the caller's order is never
// modified.
type PayableOrder struct {
	shared.BaseEntity
	Number    string         `json:"number"`
	OwnerID   uuid.UUID      `json:"owner_id"`
	OwnerKind OwnerKind      `json:"owner_kind"`
	Date      time.Time      `json:"date"`
	LineItems []LineItem     `json:"line_items"`
	Payments  []PaymentEvent `json:"payments"`

	// Derived fields, recomputed on every change. Stored copies from
	// the API are never trusted.
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Status      PaymentStatus   `json:"status"`
}

// NewPayableOrder creates a payable order from its line items
func NewPayableOrder(number string, ownerID uuid.UUID, kind OwnerKind, orderDate time.Time, items []LineItem) (*PayableOrder, error) {
	return RehydratePayableOrder(uuid.New(), number, ownerID, kind, orderDate, items, nil)
}

// RehydratePayableOrder rebuilds an order record supplied by the API,
// keeping its id and payment stream but recomputing every derived
// field. Stored totals and status are never trusted.
func RehydratePayableOrder(id uuid.UUID, number string, ownerID uuid.UUID, kind OwnerKind, orderDate time.Time, items []LineItem, payments []PaymentEvent) (*PayableOrder, error) {
	if id == uuid.Nil {
		return nil, shared.NewValidationError("order id cannot be empty")
	}
	if number == "" {
		return nil, shared.NewValidationError("order number cannot be empty")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewValidationError("order owner id cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewValidationError("invalid owner kind")
	}
	if len(items) == 0 {
		return nil, shared.NewValidationError("order needs at least one line item")
	}

	o := &PayableOrder{
		BaseEntity: shared.BaseEntity{ID: id, CreatedAt: orderDate},
		Number:     number,
		OwnerID:    ownerID,
		OwnerKind:  kind,
		Date:       orderDate,
		LineItems:  items,
		Payments:   append(make([]PaymentEvent, 0, len(payments)), payments...),
	}
	o.recompute()
	return o, nil
}

// PaymentPolicy controls optional AddPayment behavior
type PaymentPolicy struct {
	// RejectOverpayment refuses payments that would push the paid total
	// past the order total. The default mirrors the established system
	// behavior: overpayment is accepted and simply reads as PAID.
	RejectOverpayment bool
}

// AddPayment returns a copy of the order with the payment appended and
// the derived amounts and status recomputed.
func (o *PayableOrder) AddPayment(paymentDate time.Time, amount decimal.Decimal, method, notes string) (*PayableOrder, error) {
	return o.AddPaymentWithPolicy(paymentDate, amount, method, notes, PaymentPolicy{})
}

// AddPaymentWithPolicy is AddPayment with explicit policy control
func (o *PayableOrder) AddPaymentWithPolicy(paymentDate time.Time, amount decimal.Decimal, method, notes string, policy PaymentPolicy) (*PayableOrder, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("payment amount must be positive")
	}
	if policy.RejectOverpayment && o.PaidAmount.Add(amount).GreaterThan(o.TotalAmount) {
		return nil, shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("payment of %s exceeds remaining %s", amount, o.Remaining()))
	}

	next := o.clone()
	next.Payments = append(next.Payments, PaymentEvent{
		ID:             uuid.New(),
		PayableOrderID: o.ID,
		Date:           paymentDate,
		Amount:         amount,
		Method:         method,
		Notes:          notes,
	})
	next.recompute()
	return next, nil
}

// RemovePayment returns a copy of the order without the identified
// payment. PaidAmount is recomputed from the surviving payments so the
// status can never go stale after a deletion.
func (o *PayableOrder) RemovePayment(paymentID uuid.UUID) (*PayableOrder, error) {
	idx := -1
	for i, p := range o.Payments {
		if p.ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, shared.NewNotFoundError("payment", paymentID.String())
	}

	next := o.clone()
	next.Payments = append(next.Payments[:idx:idx], next.Payments[idx+1:]...)
	next.recompute()
	return next, nil
}

// Remaining returns the unpaid balance, clamped at zero for overpaid
// orders.
func (o *PayableOrder) Remaining() decimal.Decimal {
	remaining := o.TotalAmount.Sub(o.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsPaid returns true when the order is fully paid
func (o *PayableOrder) IsPaid() bool {
	return o.Status == PaymentStatusPaid
}

// recompute derives total, paid and status from line items and payments
func (o *PayableOrder) recompute() {
	total := decimal.Zero
	for _, li := range o.LineItems {
		total = total.Add(li.LineTotal())
	}
	o.TotalAmount = total

	paid := decimal.Zero
	for _, p := range o.Payments {
		paid = paid.Add(p.Amount)
	}
	o.PaidAmount = paid

	o.Status = ComputeStatus(o.TotalAmount, o.PaidAmount)
}

// clone copies the order with fresh line item and payment slices
func (o *PayableOrder) clone() *PayableOrder {
	next := *o
	next.LineItems = append([]LineItem(nil), o.LineItems...)
	next.Payments = append([]PaymentEvent(nil), o.Payments...)
	return &next
}
