package workbook

import (
	"fmt"

	"github.com/gridedge/financial-model/internal/capex"
	"github.com/gridedge/financial-model/internal/forecast"
	"github.com/gridedge/financial-model/pkg/constants"
	"github.com/xuri/excelize/v2"
)

func addCapExSheet(f *excelize.File, styles styleSet, table capex.Table) error {
	if _, err := f.NewSheet(SheetCapEx); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetCapEx, err)
	}

	headers := []string{"Category", "Subcategory", "Capacity/Units", "Unit Cost", "Total Cost", "Notes"}
	if err := writeHeaderRow(f, SheetCapEx, styles, headers); err != nil {
		return err
	}

	writeTotalRow := func(row int, label string, amount float64) error {
		if err := f.SetCellValue(SheetCapEx, cell(4, row), label); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetCapEx, cell(5, row), amount); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetCapEx, cell(4, row), cell(4, row), styles.bold); err != nil {
			return err
		}
		return f.SetCellStyle(SheetCapEx, cell(5, row), cell(5, row), styles.boldCurrency)
	}

	row := 2
	subtotals := table.Subtotals()
	for _, subtotal := range subtotals {
		for _, item := range table.Items {
			if item.Category != subtotal.Category {
				continue
			}
			values := []interface{}{item.Category, item.Subcategory, item.CapacityUnits, item.UnitCost, item.TotalCost, item.Notes}
			for col, value := range values {
				if err := f.SetCellValue(SheetCapEx, cell(col+1, row), value); err != nil {
					return err
				}
			}
			if err := f.SetCellStyle(SheetCapEx, cell(4, row), cell(5, row), styles.currency); err != nil {
				return err
			}
			row++
		}
		if err := writeTotalRow(row, fmt.Sprintf("%s Subtotal:", subtotal.Category), subtotal.Total); err != nil {
			return err
		}
		row++
	}

	if err := writeTotalRow(row, "Base Project Cost:", table.BaseCost()); err != nil {
		return err
	}
	row++
	if table.ContingencyRate > 0 {
		percent := table.ContingencyRate * constants.PercentageMultiplier
		if err := f.SetCellValue(SheetCapEx, cell(1, row), "Contingency"); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetCapEx, cell(2, row), fmt.Sprintf("%g%% Buffer", percent)); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetCapEx, cell(5, row), table.Contingency()); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetCapEx, cell(5, row), cell(5, row), styles.currency); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetCapEx, cell(6, row), "Risk mitigation"); err != nil {
			return err
		}
		row++
	}
	if err := writeTotalRow(row, "Total CapEx:", table.GrandTotal()); err != nil {
		return err
	}
	row++
	if table.TargetTotal > 0 {
		if err := writeTotalRow(row, "Target CapEx:", table.TargetTotal); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetCapEx, cell(6, row), "Scaled to budget"); err != nil {
			return err
		}
		row++
	}

	widths := []float64{20, 25, 15, 15, 15, 30}
	for i, width := range widths {
		col := string(rune('A' + i))
		if err := f.SetColWidth(SheetCapEx, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func addRevenueSheet(f *excelize.File, styles styleSet, result forecast.Result) error {
	if _, err := f.NewSheet(SheetRevenue); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetRevenue, err)
	}

	headers := []string{"Month", "GPU Leasing", "ASIC Mining", "Ancillary Income", "Monthly Total", "Annualized"}
	if err := writeHeaderRow(f, SheetRevenue, styles, headers); err != nil {
		return err
	}

	for i, record := range result.Records {
		row := i + 2
		values := []interface{}{
			record.Label,
			record.RevenueDetail.GPU,
			record.RevenueDetail.ASIC,
			record.RevenueDetail.Ancillary,
			record.Revenue,
			record.Revenue * constants.MonthsPerYear,
		}
		for col, value := range values {
			if err := f.SetCellValue(SheetRevenue, cell(col+1, row), value); err != nil {
				return err
			}
		}
	}

	lastRow := len(result.Records) + 1
	if err := f.SetCellStyle(SheetRevenue, cell(2, 2), cell(6, lastRow), styles.currency); err != nil {
		return err
	}
	return f.SetColWidth(SheetRevenue, "A", "F", 15)
}

func addOpexSheet(f *excelize.File, styles styleSet, result forecast.Result) error {
	if _, err := f.NewSheet(SheetOpex); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetOpex, err)
	}

	fixedColumns := fixedCostColumns(result)
	headers := []string{"Month", "Energy"}
	headers = append(headers, fixedColumns...)
	headers = append(headers, "Total OpEx")
	if err := writeHeaderRow(f, SheetOpex, styles, headers); err != nil {
		return err
	}

	for i, record := range result.Records {
		row := i + 2
		values := []interface{}{record.Label, record.OpexDetail.Energy}
		for _, name := range fixedColumns {
			values = append(values, record.OpexDetail.Fixed[name])
		}
		values = append(values, record.Opex)
		for col, value := range values {
			if err := f.SetCellValue(SheetOpex, cell(col+1, row), value); err != nil {
				return err
			}
		}
	}

	lastCol := len(fixedColumns) + 3
	lastRow := len(result.Records) + 1
	if err := f.SetCellStyle(SheetOpex, cell(2, 2), cell(lastCol, lastRow), styles.currency); err != nil {
		return err
	}
	endCol, _ := excelize.ColumnNumberToName(lastCol)
	return f.SetColWidth(SheetOpex, "A", endCol, 15)
}

func addROISheet(f *excelize.File, styles styleSet, result forecast.Result) error {
	if _, err := f.NewSheet(SheetROI); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetROI, err)
	}

	headers := []string{"Month", "Revenue", "OpEx", "Net Cash Flow", "Cumulative CF", "Net Position", "ROI %", "Payback"}
	if err := writeHeaderRow(f, SheetROI, styles, headers); err != nil {
		return err
	}

	for i, record := range result.Records {
		row := i + 2
		values := []interface{}{
			record.Label,
			record.Revenue,
			record.Opex,
			record.NetCashFlow,
			record.CumulativeCashFlow,
			record.NetPosition,
			record.ROIRatio,
			paybackCellValue(record.PaybackAchieved),
		}
		for col, value := range values {
			if err := f.SetCellValue(SheetROI, cell(col+1, row), value); err != nil {
				return err
			}
		}
		if record.PaybackAchieved {
			if err := f.SetCellStyle(SheetROI, cell(8, row), cell(8, row), styles.paybackFill); err != nil {
				return err
			}
		}
	}

	lastRow := len(result.Records) + 1
	if err := f.SetCellStyle(SheetROI, cell(2, 2), cell(6, lastRow), styles.currency); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetROI, cell(7, 2), cell(7, lastRow), styles.percent); err != nil {
		return err
	}
	return f.SetColWidth(SheetROI, "A", "H", 15)
}

func paybackCellValue(achieved bool) string {
	if achieved {
		return "YES"
	}
	return "NO"
}
