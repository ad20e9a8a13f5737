package dataset

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workshop-erp/backend/internal/domain/finance"
	"github.com/workshop-erp/backend/internal/domain/shared"
)

const sampleSnapshot = `{
  "materials": [
    {
      "id": "7b1f0a54-3c1d-4f2e-9a7b-111111111111",
      "name": "Teak plank",
      "unit": {"code": "PCS", "kind": "COUNT"},
      "current_stock": "25",
      "min_stock_alert": "10"
    }
  ],
  "purchases": [
    {
      "id": "7b1f0a54-3c1d-4f2e-9a7b-222222222222",
      "material_id": "7b1f0a54-3c1d-4f2e-9a7b-111111111111",
      "supplier_id": "7b1f0a54-3c1d-4f2e-9a7b-333333333333",
      "date": "2024-02-01T00:00:00Z",
      "quantity": "25",
      "unit_price": "150"
    }
  ],
  "consumptions": [
    {
      "id": "7b1f0a54-3c1d-4f2e-9a7b-444444444444",
      "material_id": "7b1f0a54-3c1d-4f2e-9a7b-111111111111",
      "date": "2024-02-10T00:00:00Z",
      "quantity": "6"
    }
  ],
  "payables": [
    {
      "id": "7b1f0a54-3c1d-4f2e-9a7b-555555555555",
      "number": "PO-2024-001",
      "owner_id": "7b1f0a54-3c1d-4f2e-9a7b-333333333333",
      "owner_kind": "SUPPLIER",
      "date": "2024-02-01T00:00:00Z",
      "line_items": [
        {"description": "Teak plank", "quantity": "25", "unit_price": "40"}
      ],
      "payments": [
        {
          "id": "7b1f0a54-3c1d-4f2e-9a7b-666666666666",
          "date": "2024-02-05T00:00:00Z",
          "amount": "400",
          "method": "cash"
        }
      ]
    }
  ],
  "employees": [
    {
      "id": "7b1f0a54-3c1d-4f2e-9a7b-777777777777",
      "name": "Aye Chan",
      "hire_date": "2023-03-25T00:00:00Z",
      "monthly_salary": "300000",
      "status": "ACTIVE"
    }
  ],
  "allowances": [
    {
      "id": "7b1f0a54-3c1d-4f2e-9a7b-888888888888",
      "employee_id": "7b1f0a54-3c1d-4f2e-9a7b-777777777777",
      "date": "2024-02-10T00:00:00Z",
      "amount": "50000"
    }
  ],
  "orders": [
    {
      "id": "7b1f0a54-3c1d-4f2e-9a7b-999999999999",
      "number": "ORD-2024-003",
      "product": "Dining chair",
      "quantity": "20",
      "date": "2024-02-01T00:00:00Z",
      "entries": [
        {
          "id": "7b1f0a54-3c1d-4f2e-9a7b-aaaaaaaaaaaa",
          "step": "Cutting",
          "date": "2024-02-03T00:00:00Z",
          "quantity": "20"
        }
      ]
    }
  ]
}`

func TestLoad(t *testing.T) {
	ds, err := Load(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)

	require.Len(t, ds.Materials, 1)
	assert.Equal(t, "Teak plank", ds.Materials[0].Name)
	assert.Equal(t, "PCS", ds.Materials[0].Unit.Code())

	require.Len(t, ds.Purchases, 1)
	assert.True(t, ds.Purchases[0].Quantity.Equal(decimal.NewFromInt(25)))

	require.Len(t, ds.Consumptions, 1)
	assert.Nil(t, ds.Consumptions[0].OrderID)

	require.Len(t, ds.Payables, 1)
	order := ds.Payables[0]
	assert.Equal(t, "PO-2024-001", order.Number)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(1000)),
		"derived total must be recomputed from line items, got %s", order.TotalAmount)
	assert.True(t, order.PaidAmount.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, finance.PaymentStatusPartPaid, order.Status)

	require.Len(t, ds.Employees, 1)
	require.Len(t, ds.Allowances, 1)

	require.Len(t, ds.Orders, 1)
	assert.Equal(t, []string{"Cutting", "Assembly", "Finishing", "Upholstery", "Packing"},
		ds.Orders[0].Steps, "orders without an explicit sequence get the standard one")
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"materials": [`))
	assert.Error(t, err)
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader(`{"widgets": []}`))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "purchase with zero quantity",
			body: `{"purchases": [{"id": "7b1f0a54-3c1d-4f2e-9a7b-222222222222",
				"material_id": "7b1f0a54-3c1d-4f2e-9a7b-111111111111",
				"date": "2024-02-01T00:00:00Z", "quantity": "0", "unit_price": "150"}]}`,
		},
		{
			name: "payable with unknown owner kind",
			body: `{"payables": [{"id": "7b1f0a54-3c1d-4f2e-9a7b-555555555555",
				"number": "PO-1", "owner_id": "7b1f0a54-3c1d-4f2e-9a7b-333333333333",
				"owner_kind": "CUSTOMER", "date": "2024-02-01T00:00:00Z",
				"line_items": [{"quantity": "1", "unit_price": "10"}]}]}`,
		},
		{
			name: "payable without line items",
			body: `{"payables": [{"id": "7b1f0a54-3c1d-4f2e-9a7b-555555555555",
				"number": "PO-1", "owner_id": "7b1f0a54-3c1d-4f2e-9a7b-333333333333",
				"owner_kind": "SUPPLIER", "date": "2024-02-01T00:00:00Z",
				"line_items": []}]}`,
		},
		{
			name: "employee with negative salary",
			body: `{"employees": [{"id": "7b1f0a54-3c1d-4f2e-9a7b-777777777777",
				"name": "X", "hire_date": "2023-03-25T00:00:00Z",
				"monthly_salary": "-1", "status": "ACTIVE"}]}`,
		},
		{
			name: "allowance with zero amount",
			body: `{"allowances": [{"id": "7b1f0a54-3c1d-4f2e-9a7b-888888888888",
				"employee_id": "7b1f0a54-3c1d-4f2e-9a7b-777777777777",
				"date": "2024-02-10T00:00:00Z", "amount": "0"}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.body))
			require.Error(t, err)
			assert.True(t, shared.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	assert.Error(t, err)
}
