package projection

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestFindBreakEvenMonthFirstCrossingWins(t *testing.T) {
	// Position crosses zero at index 20, regresses negative at index 30, and
	// recovers at index 45. The reported break-even must remain index 20.
	records := make([]Record, 60)
	for i := range records {
		switch {
		case i < 20:
			records[i].NetPosition = -100000
		case i < 30:
			records[i].NetPosition = 50000
		case i < 45:
			records[i].NetPosition = -25000
		default:
			records[i].NetPosition = 75000
		}
		records[i].PaybackAchieved = records[i].NetPosition >= 0
	}

	index, found := FindBreakEvenMonth(records)
	if !found {
		t.Fatal("FindBreakEvenMonth() found no break-even")
	}
	if index != 20 {
		t.Errorf("FindBreakEvenMonth() = %d, expected first crossing at 20", index)
	}
}

func TestFindBreakEvenMonthNotFound(t *testing.T) {
	records := make([]Record, 60)
	for i := range records {
		records[i].NetPosition = -1
	}

	if _, found := FindBreakEvenMonth(records); found {
		t.Error("FindBreakEvenMonth() reported break-even for all-negative positions")
	}
}

func TestFindBreakEvenMonthEmpty(t *testing.T) {
	if _, found := FindBreakEvenMonth(nil); found {
		t.Error("FindBreakEvenMonth(nil) reported break-even")
	}
}

func TestMaxLossMonth(t *testing.T) {
	tests := []struct {
		name       string
		cumulative []float64
		expected   int
	}{
		{"Monotonically decreasing", []float64{-1, -2, -3, -4}, 3},
		{"Dip then recovery", []float64{-1, -5, -3, 2}, 1},
		{"All positive", []float64{1, 2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Record, len(tt.cumulative))
			for i, cf := range tt.cumulative {
				records[i].CumulativeCashFlow = cf
			}
			index, found := MaxLossMonth(records)
			if !found {
				t.Fatal("MaxLossMonth() found nothing")
			}
			if index != tt.expected {
				t.Errorf("MaxLossMonth() = %d, expected %d", index, tt.expected)
			}
		})
	}

	if _, found := MaxLossMonth(nil); found {
		t.Error("MaxLossMonth(nil) reported a result")
	}
}

func TestAggregateYearOneAverages(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	records, err := engine.Project(bearAssumption())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	avg := AggregateYearOneAverages(records)
	if math.Abs(avg.Revenue-110000) > 1e-6 {
		t.Errorf("average revenue = %v, expected 110000", avg.Revenue)
	}
	if math.Abs(avg.Opex-153000) > 1e-6 {
		t.Errorf("average opex = %v, expected 153000", avg.Opex)
	}
	if math.Abs(avg.NetCashFlow-(-43000)) > 1e-6 {
		t.Errorf("average net cash flow = %v, expected -43000", avg.NetCashFlow)
	}
}

func TestAggregateYearOneAveragesShortHorizon(t *testing.T) {
	records := []Record{
		{Revenue: 100, Opex: 50, NetCashFlow: 50},
		{Revenue: 200, Opex: 100, NetCashFlow: 100},
	}

	avg := AggregateYearOneAverages(records)
	if avg.Revenue != 150 || avg.Opex != 75 || avg.NetCashFlow != 75 {
		t.Errorf("short-horizon averages = %+v, expected {150 75 75}", avg)
	}

	if got := AggregateYearOneAverages(nil); got != (Averages{}) {
		t.Errorf("AggregateYearOneAverages(nil) = %+v, expected zero value", got)
	}
}

func TestSummarize(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	t.Run("Bull case", func(t *testing.T) {
		records, err := engine.Project(bullAssumption())
		if err != nil {
			t.Fatalf("Project() error = %v", err)
		}

		summary := Summarize(records)
		if !summary.BreakEvenFound {
			t.Fatal("summary missing break-even for bull case")
		}
		if summary.BreakEvenMonth != 38 {
			t.Errorf("summary break-even month = %d, expected 38", summary.BreakEvenMonth)
		}
		if math.Abs(summary.AverageMonthlyNet-159000) > 1e-6 {
			t.Errorf("average monthly net = %v, expected 159000", summary.AverageMonthlyNet)
		}
		expectedFinal := 159000.0 * 60
		if math.Abs(summary.FinalCumulativeCashFlow-expectedFinal) > 1e-6 {
			t.Errorf("final cumulative = %v, expected %v", summary.FinalCumulativeCashFlow, expectedFinal)
		}
		expectedROI := expectedFinal / 6200000
		if math.Abs(summary.FinalROIRatio-expectedROI) > 1e-9 {
			t.Errorf("final ROI = %v, expected %v", summary.FinalROIRatio, expectedROI)
		}
	})

	t.Run("Bear case hits max loss at horizon end", func(t *testing.T) {
		records, err := engine.Project(bearAssumption())
		if err != nil {
			t.Fatalf("Project() error = %v", err)
		}

		summary := Summarize(records)
		if summary.BreakEvenFound {
			t.Error("summary reported break-even for bear case")
		}
		if summary.MaxLossMonth != 59 {
			t.Errorf("max loss month = %d, expected 59", summary.MaxLossMonth)
		}
	})

	t.Run("Empty records", func(t *testing.T) {
		summary := Summarize(nil)
		if summary.BreakEvenFound || summary.FinalCumulativeCashFlow != 0 {
			t.Errorf("Summarize(nil) = %+v, expected zero value", summary)
		}
	})
}
