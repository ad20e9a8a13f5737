package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/inventory"
)

// StockAlert is a read model for one material needing attention.
// Purchased is the quantity bought inside the report range, rendered
// with the material's unit ("10 PCS").
type StockAlert struct {
	MaterialID    uuid.UUID             `json:"material_id"`
	Name          string                `json:"name"`
	Unit          string                `json:"unit"`
	CurrentStock  decimal.Decimal       `json:"current_stock"`
	MinStockAlert decimal.Decimal       `json:"min_stock_alert"`
	Purchased     string                `json:"purchased"`
	Status        inventory.StockStatus `json:"status"`
}

// OwnerBalance is a read model for the outstanding balance owed to one
// supplier or piece worker
type OwnerBalance struct {
	OwnerID     uuid.UUID       `json:"owner_id"`
	OwnerKind   string          `json:"owner_kind"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Remaining   decimal.Decimal `json:"remaining"`
	OrderCount  int             `json:"order_count"`
}

// ProductionSummary aggregates order completion for the dashboard
type ProductionSummary struct {
	OrderCount     int             `json:"order_count"`
	CompletedCount int             `json:"completed_count"`
	CompletionRate decimal.Decimal `json:"completion_rate"` // percentage
}

// PayrollSummary aggregates current-cycle salary standing
type PayrollSummary struct {
	ActiveEmployees  int             `json:"active_employees"`
	TotalSalaries    decimal.Decimal `json:"total_salaries"`
	TotalDrawn       decimal.Decimal `json:"total_drawn"`
	TotalRemaining   decimal.Decimal `json:"total_remaining"`
	OverdrawnWorkers int             `json:"overdrawn_workers"`
}

// DashboardSummary is the KPI set the rendering layer consumes. All
// values are plain serializable data; the aggregation never hands out
// live handles.
type DashboardSummary struct {
	PurchaseSpend        decimal.Decimal    `json:"purchase_spend"`
	ConsumptionValue     decimal.Decimal    `json:"consumption_value"`
	SupplierOutstanding  decimal.Decimal    `json:"supplier_outstanding"`
	PieceWorkOutstanding decimal.Decimal    `json:"piece_work_outstanding"`
	StockAlerts          []StockAlert       `json:"stock_alerts"`
	CriticalCount        int                `json:"critical_count"`
	LowCount             int                `json:"low_count"`
	OwnerBalances        []OwnerBalance     `json:"owner_balances"`
	Production           ProductionSummary  `json:"production"`
	Payroll              PayrollSummary     `json:"payroll"`
	TopMaterialsBySpend  []KeyedSum[string] `json:"top_materials_by_spend"`
	SpendByDay           []KeyedSum[string] `json:"spend_by_day"`
}
