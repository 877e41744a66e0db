// Package output provides utilities for formatting and displaying
// projection results on the terminal.
package output

import (
	"fmt"

	"github.com/gridedge/financial-model/internal/forecast"
	"github.com/gridedge/financial-model/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// paybackLabel renders the payback flag the way the workbook does.
func paybackLabel(achieved bool) string {
	if achieved {
		return "YES"
	}
	return "NO"
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []forecast.Result) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)
		fmt.Printf("Month | Revenue | OpEx | Net Cash Flow | Cumulative CF | Net Position | ROI | Payback\n")
		fmt.Printf("_____ | _______ | ____ | _____________ | _____________ | ____________ | ___ | _______\n")
		for _, record := range result.Records {
			_, _ = p.Printf("%s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | %.1f%% | %s\n",
				record.Label,
				record.Revenue,
				record.Opex,
				record.NetCashFlow,
				record.CumulativeCashFlow,
				record.NetPosition,
				record.ROIRatio*100,
				paybackLabel(record.PaybackAchieved),
			)
		}

		summary := result.Summary
		if summary.BreakEvenFound {
			fmt.Printf("Break-even: %s (month %d)\n",
				result.Records[summary.BreakEvenMonth].Label, summary.BreakEvenMonth+1)
		} else {
			fmt.Printf("Break-even: not achieved; maximum loss of %s at %s\n",
				format.Currency(result.Records[summary.MaxLossMonth].CumulativeCashFlow),
				result.Records[summary.MaxLossMonth].Label)
		}
		fmt.Printf("Final cumulative cash flow: %s | Final ROI: %s | Avg monthly net: %s\n",
			format.Millions(summary.FinalCumulativeCashFlow),
			format.Percent(summary.FinalROIRatio),
			format.Thousands(summary.AverageMonthlyNet),
		)
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per
// scenario-month in the record field order consumed by renderers.
func CsvFormat(results []forecast.Result) {
	fmt.Printf(`"scenario","month","revenue","opex","netCashFlow","cumulativeCashFlow","netPosition","roiRatio","payback"`)
	fmt.Printf("\n")
	for _, result := range results {
		for _, record := range result.Records {
			fmt.Printf(`"%s","%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.4f","%s"`,
				result.Name,
				record.Label,
				record.Revenue,
				record.Opex,
				record.NetCashFlow,
				record.CumulativeCashFlow,
				record.NetPosition,
				record.ROIRatio,
				paybackLabel(record.PaybackAchieved),
			)
			fmt.Printf("\n")
		}
	}
}
