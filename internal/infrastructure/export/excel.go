// Package export renders dashboard summaries to Excel workbooks and
// PDF documents for sharing outside the system.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/workshop-erp/backend/internal/domain/report"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

const (
	overviewSheet = "Overview"
	alertSheet    = "Stock Alerts"
	balanceSheet  = "Balances"
	spendSheet    = "Purchase Spend"
)

// WriteDashboardWorkbook renders a summary into an xlsx workbook
func WriteDashboardWorkbook(w io.Writer, summary *report.DashboardSummary, currencySuffix string) error {
	f := excelize.NewFile()
	defer f.Close()

	money := func(d decimal.Decimal) string {
		return valueobject.NewMoney(d).Format(currencySuffix)
	}

	// Overview sheet replaces the default Sheet1.
	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	overview := [][]interface{}{
		{"Purchase spend", money(summary.PurchaseSpend)},
		{"Consumption value", money(summary.ConsumptionValue)},
		{"Supplier outstanding", money(summary.SupplierOutstanding)},
		{"Piece-work outstanding", money(summary.PieceWorkOutstanding)},
		{"Critical materials", summary.CriticalCount},
		{"Low materials", summary.LowCount},
		{"Production orders", summary.Production.OrderCount},
		{"Completed orders", summary.Production.CompletedCount},
		{"Completion rate (%)", summary.Production.CompletionRate.StringFixed(2)},
		{"Active employees", summary.Payroll.ActiveEmployees},
		{"Salaries this cycle", money(summary.Payroll.TotalSalaries)},
		{"Drawn this cycle", money(summary.Payroll.TotalDrawn)},
	}
	for i, row := range overview {
		f.SetCellValue(overviewSheet, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(overviewSheet, fmt.Sprintf("B%d", i+1), row[1])
	}

	if _, err := f.NewSheet(alertSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	f.SetCellValue(alertSheet, "A1", "Material")
	f.SetCellValue(alertSheet, "B1", "Unit")
	f.SetCellValue(alertSheet, "C1", "Current")
	f.SetCellValue(alertSheet, "D1", "Alert level")
	f.SetCellValue(alertSheet, "E1", "Purchased in range")
	f.SetCellValue(alertSheet, "F1", "Status")
	for i, a := range summary.StockAlerts {
		row := i + 2
		f.SetCellValue(alertSheet, fmt.Sprintf("A%d", row), a.Name)
		f.SetCellValue(alertSheet, fmt.Sprintf("B%d", row), a.Unit)
		f.SetCellValue(alertSheet, fmt.Sprintf("C%d", row), a.CurrentStock.String())
		f.SetCellValue(alertSheet, fmt.Sprintf("D%d", row), a.MinStockAlert.String())
		f.SetCellValue(alertSheet, fmt.Sprintf("E%d", row), a.Purchased)
		f.SetCellValue(alertSheet, fmt.Sprintf("F%d", row), a.Status.String())
	}

	if _, err := f.NewSheet(balanceSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	f.SetCellValue(balanceSheet, "A1", "Owner")
	f.SetCellValue(balanceSheet, "B1", "Kind")
	f.SetCellValue(balanceSheet, "C1", "Orders")
	f.SetCellValue(balanceSheet, "D1", "Total")
	f.SetCellValue(balanceSheet, "E1", "Paid")
	f.SetCellValue(balanceSheet, "F1", "Remaining")
	for i, b := range summary.OwnerBalances {
		row := i + 2
		f.SetCellValue(balanceSheet, fmt.Sprintf("A%d", row), b.OwnerID.String())
		f.SetCellValue(balanceSheet, fmt.Sprintf("B%d", row), b.OwnerKind)
		f.SetCellValue(balanceSheet, fmt.Sprintf("C%d", row), b.OrderCount)
		f.SetCellValue(balanceSheet, fmt.Sprintf("D%d", row), money(b.TotalAmount))
		f.SetCellValue(balanceSheet, fmt.Sprintf("E%d", row), money(b.PaidAmount))
		f.SetCellValue(balanceSheet, fmt.Sprintf("F%d", row), money(b.Remaining))
	}

	if _, err := f.NewSheet(spendSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	f.SetCellValue(spendSheet, "A1", "Material")
	f.SetCellValue(spendSheet, "B1", "Spend")
	rowAt := 2
	for _, s := range summary.TopMaterialsBySpend {
		f.SetCellValue(spendSheet, fmt.Sprintf("A%d", rowAt), s.Key)
		f.SetCellValue(spendSheet, fmt.Sprintf("B%d", rowAt), money(s.Value))
		rowAt++
	}
	rowAt++ // blank separator before the daily series
	f.SetCellValue(spendSheet, fmt.Sprintf("A%d", rowAt), "Day")
	f.SetCellValue(spendSheet, fmt.Sprintf("B%d", rowAt), "Spend")
	rowAt++
	for _, s := range summary.SpendByDay {
		f.SetCellValue(spendSheet, fmt.Sprintf("A%d", rowAt), s.Key)
		f.SetCellValue(spendSheet, fmt.Sprintf("B%d", rowAt), money(s.Value))
		rowAt++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
