package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	reportapp "github.com/workshop-erp/backend/internal/application/report"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
	"github.com/workshop-erp/backend/internal/infrastructure/config"
	"github.com/workshop-erp/backend/internal/infrastructure/dataset"
	"github.com/workshop-erp/backend/internal/infrastructure/export"
	"github.com/workshop-erp/backend/internal/infrastructure/logger"
)

const dateLayout = "2006-01-02"

func main() {
	var (
		datasetPath = flag.String("dataset", "", "path to the API snapshot (overrides config)")
		fromStr     = flag.String("from", "", "range start, YYYY-MM-DD (inclusive)")
		toStr       = flag.String("to", "", "range end, YYYY-MM-DD (inclusive)")
		asOfStr     = flag.String("as-of", "", "reference date for salary cycles, YYYY-MM-DD (default today)")
		writeXLSX   = flag.Bool("xlsx", false, "write the dashboard workbook")
		writePDF    = flag.Bool("pdf", false, "write the one-page dashboard PDF")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.FromSettings(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(cfg, log, *datasetPath, *fromStr, *toStr, *asOfStr, *writeXLSX, *writePDF); err != nil {
		log.Error("report generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger, datasetPath, fromStr, toStr, asOfStr string, writeXLSX, writePDF bool) error {
	if datasetPath == "" {
		datasetPath = cfg.Dataset.Path
	}

	rng, err := parseRange(fromStr, toStr)
	if err != nil {
		return err
	}

	asOf := time.Now()
	if asOfStr != "" {
		asOf, err = time.Parse(dateLayout, asOfStr)
		if err != nil {
			return fmt.Errorf("invalid -as-of date %q: %w", asOfStr, err)
		}
	}

	ds, err := dataset.LoadFile(datasetPath)
	if err != nil {
		return err
	}
	log.Info("dataset loaded",
		zap.String("path", datasetPath),
		zap.Int("materials", len(ds.Materials)),
		zap.Int("purchases", len(ds.Purchases)),
		zap.Int("payables", len(ds.Payables)),
		zap.Int("employees", len(ds.Employees)),
		zap.Int("orders", len(ds.Orders)),
	)

	svc := reportapp.NewDashboardService(log)
	summary, err := svc.Build(ds, rng, asOf)
	if err != nil {
		return err
	}

	money := func(d decimal.Decimal) string {
		return valueobject.NewMoney(d).Format(cfg.Currency.Suffix)
	}

	fmt.Printf("Purchase spend:         %s\n", money(summary.PurchaseSpend))
	fmt.Printf("Consumption value:      %s\n", money(summary.ConsumptionValue))
	fmt.Printf("Supplier outstanding:   %s\n", money(summary.SupplierOutstanding))
	fmt.Printf("Piece-work outstanding: %s\n", money(summary.PieceWorkOutstanding))
	fmt.Printf("Stock alerts:           %d critical, %d low\n", summary.CriticalCount, summary.LowCount)
	fmt.Printf("Production:             %d/%d orders complete (%s%%)\n",
		summary.Production.CompletedCount, summary.Production.OrderCount,
		summary.Production.CompletionRate.StringFixed(2))
	fmt.Printf("Payroll:                %d active, %s remaining\n",
		summary.Payroll.ActiveEmployees, money(summary.Payroll.TotalRemaining))

	if !writeXLSX && !writePDF {
		return nil
	}

	if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if writeXLSX {
		path := filepath.Join(cfg.Export.OutputDir, cfg.Export.Workbook)
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteDashboardWorkbook(f, summary, cfg.Currency.Suffix)
		}); err != nil {
			return err
		}
		log.Info("workbook written", zap.String("path", path))
	}

	if writePDF {
		path := filepath.Join(cfg.Export.OutputDir, "dashboard.pdf")
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteDashboardPDF(f, summary, cfg.Currency.Suffix)
		}); err != nil {
			return err
		}
		log.Info("pdf written", zap.String("path", path))
	}

	return nil
}

func parseRange(fromStr, toStr string) (valueobject.DateRange, error) {
	var start, end *time.Time
	if fromStr != "" {
		t, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return valueobject.DateRange{}, fmt.Errorf("invalid -from date %q: %w", fromStr, err)
		}
		start = &t
	}
	if toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return valueobject.DateRange{}, fmt.Errorf("invalid -to date %q: %w", toStr, err)
		}
		end = &t
	}
	return valueobject.NewDateRange(start, end)
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
