// Package report composes the domain ledgers into the dashboard read
// models the rendering layer consumes.
package report

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/workshop-erp/backend/internal/domain/finance"
	"github.com/workshop-erp/backend/internal/domain/hr"
	"github.com/workshop-erp/backend/internal/domain/inventory"
	"github.com/workshop-erp/backend/internal/domain/report"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
	"github.com/workshop-erp/backend/internal/infrastructure/dataset"
)

// topMaterialCount is how many materials the spend ranking keeps
const topMaterialCount = 5

// DashboardService builds dashboard summaries from a loaded dataset
type DashboardService struct {
	logger *zap.Logger
}

// NewDashboardService creates a dashboard service
func NewDashboardService(logger *zap.Logger) *DashboardService {
	return &DashboardService{logger: logger}
}

// Build aggregates the whole dataset into one dashboard summary. The
// range bounds purchases and day buckets; stock alerts, balances and
// payroll always reflect the full dataset, matching what the wall
// dashboard shows. referenceDate anchors the salary cycles.
func (s *DashboardService) Build(ds *dataset.Dataset, rng valueobject.DateRange, referenceDate time.Time) (*report.DashboardSummary, error) {
	ledger := inventory.NewStockLedger(ds.Materials, ds.Purchases, ds.Consumptions)

	summary := &report.DashboardSummary{
		PurchaseSpend:        decimal.Zero,
		ConsumptionValue:     decimal.Zero,
		SupplierOutstanding:  decimal.Zero,
		PieceWorkOutstanding: decimal.Zero,
	}

	var rangedPurchases []inventory.PurchaseEvent
	for _, p := range ds.Purchases {
		if !rng.Contains(p.Date) {
			continue
		}
		rangedPurchases = append(rangedPurchases, p)
		summary.PurchaseSpend = summary.PurchaseSpend.Add(p.TotalPrice())
	}
	summary.PurchaseSpend = valueobject.Round2(summary.PurchaseSpend)

	// Consumption is valued at the material's average purchase price.
	for _, c := range ds.Consumptions {
		if !rng.Contains(c.Date) {
			continue
		}
		avg, err := ledger.AverageUnitPrice(c.MaterialID)
		if err != nil {
			s.logger.Warn("consumption references unknown material",
				zap.String("material_id", c.MaterialID.String()), zap.Error(err))
			continue
		}
		summary.ConsumptionValue = summary.ConsumptionValue.Add(c.Quantity.Mul(avg))
	}
	summary.ConsumptionValue = valueobject.Round2(summary.ConsumptionValue)

	s.buildStockAlerts(ledger, rng, summary)
	s.buildOwnerBalances(ds.Payables, summary)
	s.buildProduction(ds, summary)
	s.buildPayroll(ds, referenceDate, summary)
	s.buildSpendRankings(ledger, rangedPurchases, summary)

	s.logger.Info("dashboard built",
		zap.Int("materials", len(ds.Materials)),
		zap.Int("payables", len(ds.Payables)),
		zap.Int("stock_alerts", len(summary.StockAlerts)),
		zap.String("purchase_spend", summary.PurchaseSpend.StringFixed(2)),
	)

	return summary, nil
}

// buildStockAlerts collects materials that are low or critical,
// critical first, preserving ledger order within each severity. Each
// alert carries the quantity bought inside the range so the reader can
// see whether restocking is already underway.
func (s *DashboardService) buildStockAlerts(ledger *inventory.StockLedger, rng valueobject.DateRange, summary *report.DashboardSummary) {
	var critical, low []report.StockAlert
	for _, m := range ledger.Materials() {
		status := m.StockStatus()
		alert := report.StockAlert{
			MaterialID:    m.ID,
			Name:          m.Name,
			Unit:          m.Unit.Code(),
			CurrentStock:  m.CurrentStock,
			MinStockAlert: m.MinStockAlert,
			Status:        status,
		}
		if purchased, err := ledger.PurchasedQuantity(m.ID, rng); err == nil {
			alert.Purchased = purchased.String()
		}
		switch status {
		case inventory.StockStatusCritical:
			critical = append(critical, alert)
		case inventory.StockStatusLow:
			low = append(low, alert)
		}
	}
	summary.CriticalCount = len(critical)
	summary.LowCount = len(low)
	summary.StockAlerts = append(critical, low...)
}

func (s *DashboardService) buildOwnerBalances(payables []*finance.PayableOrder, summary *report.DashboardSummary) {
	type ownerKey struct {
		id   string
		kind finance.OwnerKind
	}

	groups := report.GroupByKey(payables, func(o *finance.PayableOrder) ownerKey {
		return ownerKey{id: o.OwnerID.String(), kind: o.OwnerKind}
	})

	for _, g := range groups {
		balance := report.OwnerBalance{
			OwnerID:     g.Records[0].OwnerID,
			OwnerKind:   string(g.Key.kind),
			TotalAmount: decimal.Zero,
			PaidAmount:  decimal.Zero,
			Remaining:   decimal.Zero,
			OrderCount:  len(g.Records),
		}
		for _, o := range g.Records {
			balance.TotalAmount = balance.TotalAmount.Add(o.TotalAmount)
			balance.PaidAmount = balance.PaidAmount.Add(o.PaidAmount)
			balance.Remaining = balance.Remaining.Add(o.Remaining())
		}
		summary.OwnerBalances = append(summary.OwnerBalances, balance)

		switch g.Key.kind {
		case finance.OwnerKindSupplier:
			summary.SupplierOutstanding = summary.SupplierOutstanding.Add(balance.Remaining)
		case finance.OwnerKindPieceWorker:
			summary.PieceWorkOutstanding = summary.PieceWorkOutstanding.Add(balance.Remaining)
		}
	}
}

func (s *DashboardService) buildProduction(ds *dataset.Dataset, summary *report.DashboardSummary) {
	prod := report.ProductionSummary{
		OrderCount:     len(ds.Orders),
		CompletionRate: decimal.Zero,
	}
	completionSum := decimal.Zero
	for _, o := range ds.Orders {
		if o.IsComplete() {
			prod.CompletedCount++
		}
		completionSum = completionSum.Add(o.Progress())
	}
	if prod.OrderCount > 0 {
		prod.CompletionRate = completionSum.
			Div(decimal.NewFromInt(int64(prod.OrderCount))).Round(2)
	}
	summary.Production = prod
}

// buildPayroll aggregates current-cycle standing for active employees.
// Inactive and on-leave staff stay out of the totals.
func (s *DashboardService) buildPayroll(ds *dataset.Dataset, referenceDate time.Time, summary *report.DashboardSummary) {
	book := hr.NewSalaryBook(ds.Employees, ds.Allowances)
	payroll := report.PayrollSummary{
		TotalSalaries:  decimal.Zero,
		TotalDrawn:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, e := range book.Employees() {
		if e.Status != hr.EmployeeStatusActive {
			continue
		}
		info, err := book.CycleInfoFor(e.ID, referenceDate)
		if err != nil {
			s.logger.Warn("skipping employee in payroll summary",
				zap.String("employee_id", e.ID.String()), zap.Error(err))
			continue
		}
		payroll.ActiveEmployees++
		payroll.TotalSalaries = payroll.TotalSalaries.Add(e.MonthlySalary)
		payroll.TotalDrawn = payroll.TotalDrawn.Add(info.Drawn)
		payroll.TotalRemaining = payroll.TotalRemaining.Add(info.Remaining)
		if info.Remaining.IsNegative() {
			payroll.OverdrawnWorkers++
		}
	}
	summary.Payroll = payroll
}

// buildSpendRankings fills the top-materials ranking and per-day spend
// series from the range-filtered purchases.
func (s *DashboardService) buildSpendRankings(ledger *inventory.StockLedger, purchases []inventory.PurchaseEvent, summary *report.DashboardSummary) {
	nameOf := func(p inventory.PurchaseEvent) string {
		if m, err := ledger.Material(p.MaterialID); err == nil {
			return m.Name
		}
		return p.MaterialID.String()
	}

	spendOf := func(p inventory.PurchaseEvent) decimal.Decimal { return p.TotalPrice() }

	byMaterial := report.SumByKey(purchases, nameOf, spendOf)
	summary.TopMaterialsBySpend = report.TopN(byMaterial, topMaterialCount)

	summary.SpendByDay = report.SumByKey(purchases,
		func(p inventory.PurchaseEvent) string { return p.Date.Format("2006-01-02") },
		spendOf)
}
