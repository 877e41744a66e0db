package projection

import "github.com/gridedge/financial-model/pkg/constants"

// Averages holds arithmetic means of the core monthly figures.
type Averages struct {
	Revenue     float64
	Opex        float64
	NetCashFlow float64
}

// Summary holds the headline figures reported on the executive summary sheet
// and the chart annotations.
type Summary struct {
	FinalCumulativeCashFlow float64
	FinalROIRatio           float64
	AverageMonthlyNet       float64
	YearOne                 Averages
	BreakEvenMonth          int
	BreakEvenFound          bool
	MaxLossMonth            int
}

// FindBreakEvenMonth returns the zero-based index of the first month whose
// payback flag is set. The scan is strictly forward so an earliest crossing
// wins even if the position later regresses below zero.
func FindBreakEvenMonth(records []Record) (int, bool) {
	for i := range records {
		if records[i].PaybackAchieved {
			return i, true
		}
	}
	return 0, false
}

// MaxLossMonth returns the zero-based index of the month with the lowest
// cumulative cash flow. Charts annotate this point when no break-even exists.
func MaxLossMonth(records []Record) (int, bool) {
	if len(records) == 0 {
		return 0, false
	}
	minIndex := 0
	for i := range records {
		if records[i].CumulativeCashFlow < records[minIndex].CumulativeCashFlow {
			minIndex = i
		}
	}
	return minIndex, true
}

// AggregateYearOneAverages computes mean revenue, opex, and net cash flow over
// the first twelve records, or fewer when the horizon is shorter.
func AggregateYearOneAverages(records []Record) Averages {
	n := len(records)
	if n > constants.MonthsPerYear {
		n = constants.MonthsPerYear
	}
	if n == 0 {
		return Averages{}
	}

	var avg Averages
	for _, record := range records[:n] {
		avg.Revenue += record.Revenue
		avg.Opex += record.Opex
		avg.NetCashFlow += record.NetCashFlow
	}
	avg.Revenue /= float64(n)
	avg.Opex /= float64(n)
	avg.NetCashFlow /= float64(n)
	return avg
}

// Summarize reduces a record sequence to its headline figures.
func Summarize(records []Record) Summary {
	var summary Summary
	if len(records) == 0 {
		return summary
	}

	last := records[len(records)-1]
	summary.FinalCumulativeCashFlow = last.CumulativeCashFlow
	summary.FinalROIRatio = last.ROIRatio

	total := 0.0
	for _, record := range records {
		total += record.NetCashFlow
	}
	summary.AverageMonthlyNet = total / float64(len(records))

	summary.YearOne = AggregateYearOneAverages(records)
	summary.BreakEvenMonth, summary.BreakEvenFound = FindBreakEvenMonth(records)
	summary.MaxLossMonth, _ = MaxLossMonth(records)
	return summary
}
