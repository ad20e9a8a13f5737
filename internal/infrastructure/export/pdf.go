package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/finance"
	"github.com/workshop-erp/backend/internal/domain/hr"
	"github.com/workshop-erp/backend/internal/domain/report"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// WriteReceiptPDF renders a payable order with its line items and
// payment history.
func WriteReceiptPDF(w io.Writer, order *finance.PayableOrder, currencySuffix string) error {
	money := func(d decimal.Decimal) string {
		return valueobject.NewMoney(d).Format(currencySuffix)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Receipt "+order.Number)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.Date.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Owner: %s (%s)", order.OwnerID, order.OwnerKind))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Items")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range order.LineItems {
		pdf.Cell(0, 7, fmt.Sprintf("%s  %s x %s = %s",
			item.Description, item.Quantity.String(), item.UnitPrice.StringFixed(2),
			money(item.LineTotal())))
		pdf.Ln(7)
	}

	if len(order.Payments) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Payments")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, p := range order.Payments {
			line := fmt.Sprintf("%s  %s", p.Date.Format("2006-01-02"), money(p.Amount))
			if p.Method != "" {
				line += "  " + p.Method
			}
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", money(order.TotalAmount)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Paid: %s", money(order.PaidAmount)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining: %s (%s)", money(order.Remaining()), order.Status))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write receipt pdf: %w", err)
	}
	return nil
}

// WritePayslipPDF renders the current-cycle standing for one employee
func WritePayslipPDF(w io.Writer, info *hr.CycleInfo, currencySuffix string) error {
	money := func(d decimal.Decimal) string {
		return valueobject.NewMoney(d).Format(currencySuffix)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", info.Employee.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Cycle: %s to %s",
		info.Cycle.Start.Format("2006-01-02"), info.Cycle.End.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly salary: %s", money(info.Employee.MonthlySalary)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances drawn: %s", money(info.Drawn)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining: %s", money(info.Remaining)))

	if len(info.Allowances) > 0 {
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Allowances")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, a := range info.Allowances {
			line := fmt.Sprintf("%s  %s", a.Date.Format("2006-01-02"), money(a.Amount))
			if a.Notes != "" {
				line += "  " + a.Notes
			}
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write payslip pdf: %w", err)
	}
	return nil
}

// WriteDashboardPDF renders the headline numbers as a one-page report
func WriteDashboardPDF(w io.Writer, summary *report.DashboardSummary, currencySuffix string) error {
	money := func(d decimal.Decimal) string {
		return valueobject.NewMoney(d).Format(currencySuffix)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Workshop Dashboard")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)

	line := func(format string, args ...interface{}) {
		pdf.Cell(0, 8, fmt.Sprintf(format, args...))
		pdf.Ln(7)
	}

	line("Purchase spend: %s", money(summary.PurchaseSpend))
	line("Consumption value: %s", money(summary.ConsumptionValue))
	line("Supplier outstanding: %s", money(summary.SupplierOutstanding))
	line("Piece-work outstanding: %s", money(summary.PieceWorkOutstanding))
	line("Stock alerts: %d critical, %d low", summary.CriticalCount, summary.LowCount)
	line("Production: %d/%d orders complete (%s%%)",
		summary.Production.CompletedCount, summary.Production.OrderCount,
		summary.Production.CompletionRate.StringFixed(2))
	line("Payroll: %d active, %s remaining",
		summary.Payroll.ActiveEmployees, money(summary.Payroll.TotalRemaining))

	if len(summary.StockAlerts) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Materials needing attention")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, a := range summary.StockAlerts {
			line("%s: %s %s on hand, alert at %s (%s)",
				a.Name, a.CurrentStock.String(), a.Unit, a.MinStockAlert.String(), a.Status.String())
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write dashboard pdf: %w", err)
	}
	return nil
}
