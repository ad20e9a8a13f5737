package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workshop-erp/backend/internal/domain/shared"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustOrder(t *testing.T, total float64) *PayableOrder {
	t.Helper()
	item, err := NewLineItem("Dining table", decimal.NewFromInt(1), decimal.NewFromFloat(total))
	require.NoError(t, err)
	o, err := NewPayableOrder("PO-0001", uuid.New(), OwnerKindSupplier, date("2024-03-01"), []LineItem{item})
	require.NoError(t, err)
	return o
}

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		paid     float64
		expected PaymentStatus
	}{
		{"nothing paid", 1000, 0, PaymentStatusNotPaid},
		{"negative paid", 1000, -10, PaymentStatusNotPaid},
		{"partially paid", 1000, 400, PaymentStatusPartPaid},
		{"one cent short", 1000, 999.99, PaymentStatusPartPaid},
		{"exactly paid", 1000, 1000, PaymentStatusPaid},
		{"overpaid", 1000, 1100, PaymentStatusPaid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStatus(decimal.NewFromFloat(tc.total), decimal.NewFromFloat(tc.paid))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewPayableOrder_Validation(t *testing.T) {
	item, err := NewLineItem("Chair", decimal.NewFromInt(4), decimal.NewFromInt(75))
	require.NoError(t, err)

	t.Run("empty number rejected", func(t *testing.T) {
		_, err := NewPayableOrder("", uuid.New(), OwnerKindSupplier, date("2024-03-01"), []LineItem{item})
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("nil owner rejected", func(t *testing.T) {
		_, err := NewPayableOrder("PO-1", uuid.Nil, OwnerKindSupplier, date("2024-03-01"), []LineItem{item})
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("unknown owner kind rejected", func(t *testing.T) {
		_, err := NewPayableOrder("PO-1", uuid.New(), OwnerKind("CUSTOMER"), date("2024-03-01"), []LineItem{item})
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("no line items rejected", func(t *testing.T) {
		_, err := NewPayableOrder("PO-1", uuid.New(), OwnerKindSupplier, date("2024-03-01"), nil)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestNewLineItem_Validation(t *testing.T) {
	_, err := NewLineItem("Chair", decimal.Zero, decimal.NewFromInt(75))
	assert.True(t, shared.IsValidation(err))

	_, err = NewLineItem("Chair", decimal.NewFromInt(1), decimal.NewFromInt(-75))
	assert.True(t, shared.IsValidation(err))
}

func TestPayableOrder_TotalFromLineItems(t *testing.T) {
	chairs, err := NewLineItem("Chair", decimal.NewFromInt(4), decimal.NewFromFloat(75.50))
	require.NoError(t, err)
	table, err := NewLineItem("Table", decimal.NewFromInt(1), decimal.NewFromInt(698))
	require.NoError(t, err)

	o, err := NewPayableOrder("PO-7", uuid.New(), OwnerKindSupplier, date("2024-03-01"), []LineItem{chairs, table})
	require.NoError(t, err)

	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(1000)), "got %s", o.TotalAmount)
	assert.Equal(t, PaymentStatusNotPaid, o.Status)
	assert.True(t, o.Remaining().Equal(decimal.NewFromInt(1000)))
}

// Total 1000, payments [400, 400] -> PART_PAID with remaining
// 200; pay 200 -> PAID remaining 0; remove the 200 -> PART_PAID again.
func TestPayableOrder_PaymentLifecycle(t *testing.T) {
	o := mustOrder(t, 1000)

	o1, err := o.AddPayment(date("2024-03-05"), decimal.NewFromInt(400), "cash", "")
	require.NoError(t, err)
	o2, err := o1.AddPayment(date("2024-03-12"), decimal.NewFromInt(400), "cash", "")
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusPartPaid, o2.Status)
	assert.True(t, o2.Remaining().Equal(decimal.NewFromInt(200)), "got %s", o2.Remaining())

	o3, err := o2.AddPayment(date("2024-03-20"), decimal.NewFromInt(200), "transfer", "final")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, o3.Status)
	assert.True(t, o3.Remaining().IsZero())
	assert.True(t, o3.IsPaid())

	last := o3.Payments[len(o3.Payments)-1]
	o4, err := o3.RemovePayment(last.ID)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPartPaid, o4.Status)
	assert.True(t, o4.Remaining().Equal(decimal.NewFromInt(200)))

	// the aggregate is copy-on-write: earlier versions are untouched
	assert.Equal(t, PaymentStatusPaid, o3.Status)
	assert.Len(t, o2.Payments, 2)
	assert.Equal(t, PaymentStatusNotPaid, o.Status)
}

// Adding then removing the same payment must return the order to its
// prior paid amount and status.
func TestPayableOrder_AddRemoveRoundTrip(t *testing.T) {
	o := mustOrder(t, 500)
	o1, err := o.AddPayment(date("2024-03-05"), decimal.NewFromFloat(123.45), "cash", "")
	require.NoError(t, err)

	added := o1.Payments[len(o1.Payments)-1]
	o2, err := o1.RemovePayment(added.ID)
	require.NoError(t, err)

	assert.True(t, o2.PaidAmount.Equal(o.PaidAmount))
	assert.Equal(t, o.Status, o2.Status)
	assert.Len(t, o2.Payments, 0)
}

func TestPayableOrder_AddPayment_Validation(t *testing.T) {
	o := mustOrder(t, 500)

	_, err := o.AddPayment(date("2024-03-05"), decimal.Zero, "cash", "")
	assert.True(t, shared.IsValidation(err))

	_, err = o.AddPayment(date("2024-03-05"), decimal.NewFromInt(-10), "cash", "")
	assert.True(t, shared.IsValidation(err))
}

// Overpayment is allowed by default and reads as PAID with a zero
// remaining balance; the strict policy rejects it instead.
func TestPayableOrder_Overpayment(t *testing.T) {
	o := mustOrder(t, 500)

	t.Run("permissive default", func(t *testing.T) {
		over, err := o.AddPayment(date("2024-03-05"), decimal.NewFromInt(600), "cash", "")
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPaid, over.Status)
		assert.True(t, over.Remaining().IsZero(), "remaining clamps at zero when overpaid")
		assert.True(t, over.PaidAmount.Equal(decimal.NewFromInt(600)))
	})

	t.Run("reject policy", func(t *testing.T) {
		_, err := o.AddPaymentWithPolicy(date("2024-03-05"), decimal.NewFromInt(600), "cash", "",
			PaymentPolicy{RejectOverpayment: true})
		require.Error(t, err)
		assert.False(t, shared.IsValidation(err))
	})
}

func TestPayableOrder_RemovePayment_Unknown(t *testing.T) {
	o := mustOrder(t, 500)
	_, err := o.RemovePayment(uuid.New())
	assert.True(t, shared.IsNotFound(err))
}
