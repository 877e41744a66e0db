// Package workbook renders the projection results and CapEx table into a
// multi-sheet xlsx workbook.
package workbook

import (
	"fmt"
	"sort"

	"github.com/gridedge/financial-model/internal/config"
	"github.com/gridedge/financial-model/internal/forecast"
	"github.com/gridedge/financial-model/internal/projection"
	"github.com/gridedge/financial-model/pkg/constants"
	"github.com/gridedge/financial-model/pkg/format"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Sheet names, matching the workbook layout consumed downstream.
const (
	SheetCapEx   = "CapEx Breakdown"
	SheetRevenue = "Monthly Revenue Forecast"
	SheetOpex    = "Operating Expenses"
	SheetROI     = "ROI Timeline"
	SheetSummary = "Executive Summary"
)

const (
	currencyNumFmt = `_($* #,##0_);_($* (#,##0);_($* "-"??_);_(@_)`
	percentNumFmt  = "0.0%"
)

// styleSet holds the style IDs registered on one workbook.
type styleSet struct {
	header       int
	bold         int
	currency     int
	boldCurrency int
	percent      int
	paybackFill  int
	sectionTitle int
}

// Builder renders workbooks from projection results.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a workbook builder with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger}
}

// Write builds the workbook and saves it to path.
func (b *Builder) Write(path string, conf config.Configuration, results []forecast.Result) error {
	f, err := b.Build(conf, results)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}
	b.logger.Info("workbook written",
		zap.String("op", "workbook.Write"),
		zap.String("path", path),
	)
	return nil
}

// Build renders the workbook in memory. The first result is treated as the
// primary scenario feeding the revenue, opex, ROI, and summary sheets; the
// CapEx sheet comes from the configuration.
func (b *Builder) Build(conf config.Configuration, results []forecast.Result) (*excelize.File, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no projection results to render")
	}
	primary := results[0]

	f := excelize.NewFile()
	styles, err := registerStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if len(conf.CapEx.Items) > 0 {
		if err := addCapExSheet(f, styles, conf.CapEx); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	if err := addRevenueSheet(f, styles, primary); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := addOpexSheet(f, styles, primary); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := addROISheet(f, styles, primary); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := addSummarySheet(f, styles, conf, primary); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}
	// Sheet indexes shift when Sheet1 is removed, so resolve the summary
	// index afterwards.
	summaryIndex, err := f.GetSheetIndex(SheetSummary)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(summaryIndex)

	b.logger.Debug("workbook built",
		zap.String("op", "workbook.Build"),
		zap.String("primaryScenario", primary.Name),
		zap.Int("months", len(primary.Records)),
	)
	return f, nil
}

func registerStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	currencyFmt := currencyNumFmt
	percentFmt := percentNumFmt

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("failed to register header style: %w", err)
	}
	s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return s, fmt.Errorf("failed to register bold style: %w", err)
	}
	s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFmt})
	if err != nil {
		return s, fmt.Errorf("failed to register currency style: %w", err)
	}
	s.boldCurrency, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &currencyFmt,
	})
	if err != nil {
		return s, fmt.Errorf("failed to register bold currency style: %w", err)
	}
	s.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percentFmt})
	if err != nil {
		return s, fmt.Errorf("failed to register percent style: %w", err)
	}
	s.paybackFill, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"90EE90"}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("failed to register payback style: %w", err)
	}
	s.sectionTitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("failed to register section title style: %w", err)
	}
	return s, nil
}

// cell converts one-based column/row coordinates to a cell name.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeHeaderRow(f *excelize.File, sheet string, styles styleSet, headers []string) error {
	for i, header := range headers {
		name := cell(i+1, 1)
		if err := f.SetCellValue(sheet, name, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, name, name, styles.header); err != nil {
			return err
		}
	}
	return nil
}

// fixedCostColumns returns the fixed opex category names in a deterministic
// order for the Operating Expenses sheet.
func fixedCostColumns(result forecast.Result) []string {
	if len(result.Records) == 0 {
		return nil
	}
	names := make([]string, 0, len(result.Records[0].OpexDetail.Fixed))
	for name := range result.Records[0].OpexDetail.Fixed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// breakEvenText renders the summary break-even value: the period label when
// payback happens, otherwise the not-achieved phrasing for the horizon.
func breakEvenText(result forecast.Result) string {
	if result.Summary.BreakEvenFound {
		return result.Records[result.Summary.BreakEvenMonth].Label
	}
	months := len(result.Records)
	if months%constants.MonthsPerYear == 0 {
		return fmt.Sprintf("Not achieved in %d years", months/constants.MonthsPerYear)
	}
	return fmt.Sprintf("Not achieved in %d months", months)
}

func addSummarySheet(f *excelize.File, styles styleSet, conf config.Configuration, primary forecast.Result) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetSummary, err)
	}

	summary := primary.Summary
	assumption, capacity := primaryAssumption(conf, primary)

	investment := 0.0
	if assumption != nil {
		investment = assumption.InitialInvestment
	}

	type row struct {
		label   string
		value   interface{}
		section bool
	}

	rows := []row{
		{label: fmt.Sprintf("%s - Financial Summary", conf.Project.Name)},
		{},
		{label: "Investment Overview", section: true},
		{label: "Total CapEx", value: investment},
		{label: "Project Capacity", value: fmt.Sprintf("%g MW", capacity)},
		{label: "Location", value: conf.Project.Location},
		{},
		{label: "Revenue Performance (Year 1 Average)", section: true},
		{label: "Monthly Revenue", value: summary.YearOne.Revenue},
		{label: "Annual Revenue", value: summary.YearOne.Revenue * constants.MonthsPerYear},
		{},
		{label: "Operating Performance (Year 1 Average)", section: true},
		{label: "Monthly OpEx", value: summary.YearOne.Opex},
		{label: "Annual OpEx", value: summary.YearOne.Opex * constants.MonthsPerYear},
		{label: "Monthly Net Cash Flow", value: summary.YearOne.NetCashFlow},
		{},
		{label: "Investment Returns", section: true},
		{label: "Break-even Month", value: breakEvenText(primary)},
		{label: "5-Year Cumulative Cash Flow", value: summary.FinalCumulativeCashFlow},
		{label: "5-Year ROI", value: format.Percent(summary.FinalROIRatio)},
	}

	if assumption != nil {
		rows = append(rows,
			row{},
			row{label: "Key Assumptions", section: true},
			row{label: "Energy Cost", value: fmt.Sprintf("$%.2f/kWh", assumption.EnergyCostPerKWh)},
			row{label: "Facility Uptime", value: format.Percent(assumption.UptimeFraction)},
			row{label: "Annual Inflation", value: format.Percent(assumption.AnnualInflationRate)},
		)
	}

	for i, r := range rows {
		rowNum := i + 1
		if r.label != "" {
			if err := f.SetCellValue(SheetSummary, cell(1, rowNum), r.label); err != nil {
				return err
			}
		}
		if r.value != nil {
			if err := f.SetCellValue(SheetSummary, cell(2, rowNum), r.value); err != nil {
				return err
			}
		}
		if r.section {
			if err := f.SetCellStyle(SheetSummary, cell(1, rowNum), cell(1, rowNum), styles.sectionTitle); err != nil {
				return err
			}
		}
		if amount, ok := r.value.(float64); ok && amount > 1000 {
			if err := f.SetCellStyle(SheetSummary, cell(2, rowNum), cell(2, rowNum), styles.currency); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(SheetSummary, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "B", "B", 20); err != nil {
		return err
	}
	return nil
}

// primaryAssumption finds the assumption behind the primary result so the
// summary sheet can report the inputs next to the outputs.
func primaryAssumption(conf config.Configuration, primary forecast.Result) (assumption *projection.Assumption, capacityMW float64) {
	capacityMW = conf.Project.CapacityMW
	scenario, ok := conf.FindScenario(primary.Name)
	if !ok {
		return nil, capacityMW
	}
	if scenario.Assumption.FacilityCapacityMW > 0 {
		capacityMW = scenario.Assumption.FacilityCapacityMW
	}
	return &scenario.Assumption, capacityMW
}
