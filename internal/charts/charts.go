// Package charts renders the projection results and CapEx table into PNG
// visualizations: break-even timelines, monthly cash-flow detail, and the
// CapEx breakdowns.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridedge/financial-model/internal/capex"
	"github.com/gridedge/financial-model/internal/config"
	"github.com/gridedge/financial-model/internal/forecast"
	"github.com/gridedge/financial-model/pkg/format"
	"github.com/gridedge/financial-model/pkg/mathutil"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

var (
	colorCumulative = drawing.ColorFromHex("1f4e79")
	colorRevenue    = drawing.ColorFromHex("2e8b57")
	colorOpex       = drawing.ColorFromHex("c0392b")
	colorBreakEven  = drawing.ColorFromHex("2ca02c")
	colorMaxLoss    = drawing.ColorFromHex("d62728")

	capexPalette = []drawing.Color{
		drawing.ColorFromHex("1f4e79"),
		drawing.ColorFromHex("2e75b6"),
		drawing.ColorFromHex("4a90c2"),
		drawing.ColorFromHex("7bb3d0"),
		drawing.ColorFromHex("a6d0e4"),
		drawing.ColorFromHex("d4e8f0"),
	}
)

// Renderer produces chart images from projection results.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a chart renderer with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// RenderAll writes the full chart set under dir: a break-even timeline and
// cash-flow chart per result, plus the CapEx pie and bar charts when line
// items are configured. It returns the paths written.
func (r *Renderer) RenderAll(dir string, conf config.Configuration, results []forecast.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create graphs directory %s: %w", dir, err)
	}

	var written []string
	render := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(dir, name)
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create chart file %s: %w", path, err)
		}
		if err := fn(file); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to render %s: %w", name, err)
		}
		if err := file.Close(); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	for _, result := range results {
		result := result
		slug := slugify(result.Name)
		if err := render(fmt.Sprintf("breakeven_%s.png", slug), func(w io.Writer) error {
			return r.BreakEvenChart(w, result)
		}); err != nil {
			return written, err
		}
		if err := render(fmt.Sprintf("cashflow_%s.png", slug), func(w io.Writer) error {
			return r.CashFlowChart(w, result)
		}); err != nil {
			return written, err
		}
	}

	if len(conf.CapEx.Items) > 0 {
		if err := render("capex_breakdown.png", func(w io.Writer) error {
			return r.CapExPieChart(w, conf.CapEx)
		}); err != nil {
			return written, err
		}
		if err := render("capex_detailed.png", func(w io.Writer) error {
			return r.CapExBarChart(w, conf.CapEx)
		}); err != nil {
			return written, err
		}
	}

	r.logger.Info("charts written",
		zap.String("op", "charts.RenderAll"),
		zap.String("dir", dir),
		zap.Int("count", len(written)),
	)
	return written, nil
}

// BreakEvenChart plots cumulative cash flow in millions against the zero
// line, annotating the break-even month or, absent one, the month of
// maximum cumulative loss.
func (r *Renderer) BreakEvenChart(w io.Writer, result forecast.Result) error {
	if len(result.Records) < 2 {
		return fmt.Errorf("scenario %q has too few records to chart", result.Name)
	}

	months := make([]float64, len(result.Records))
	cumulative := make([]float64, len(result.Records))
	zero := make([]float64, len(result.Records))
	for i, record := range result.Records {
		months[i] = float64(i + 1)
		cumulative[i] = record.CumulativeCashFlow / 1e6
	}

	annotation := breakEvenAnnotation(result)

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - Break-even Forecast", result.Name),
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name: "Month",
		},
		YAxis: chart.YAxis{
			Name: "Cumulative Cash Flow (Millions USD)",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.1fM", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Cumulative Cash Flow",
				XValues: months,
				YValues: cumulative,
				Style: chart.Style{
					StrokeColor: colorCumulative,
					StrokeWidth: 3,
				},
			},
			chart.ContinuousSeries{
				Name:    "Break-even Line",
				XValues: months,
				YValues: zero,
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
				},
			},
			annotation,
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("break-even chart for %q: %w", result.Name, err)
	}
	return nil
}

// breakEvenAnnotation marks the break-even month in green or the maximum
// loss month in red when the scenario never pays back.
func breakEvenAnnotation(result forecast.Result) chart.AnnotationSeries {
	summary := result.Summary
	if summary.BreakEvenFound {
		record := result.Records[summary.BreakEvenMonth]
		return chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{
					XValue: float64(summary.BreakEvenMonth + 1),
					YValue: record.CumulativeCashFlow / 1e6,
					Label:  fmt.Sprintf("Break-even: Month %d", summary.BreakEvenMonth+1),
				},
			},
			Style: chart.Style{
				StrokeColor: colorBreakEven,
				FillColor:   colorBreakEven.WithAlpha(64),
			},
		}
	}

	record := result.Records[summary.MaxLossMonth]
	return chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{
				XValue: float64(summary.MaxLossMonth + 1),
				YValue: record.CumulativeCashFlow / 1e6,
				Label: fmt.Sprintf("Max Loss: Month %d (%s)",
					summary.MaxLossMonth+1, format.Millions(record.CumulativeCashFlow)),
			},
		},
		Style: chart.Style{
			StrokeColor: colorMaxLoss,
			FillColor:   colorMaxLoss.WithAlpha(64),
		},
	}
}

// CashFlowChart plots monthly revenue and opex in thousands, with net cash
// flow as a third series.
func (r *Renderer) CashFlowChart(w io.Writer, result forecast.Result) error {
	if len(result.Records) < 2 {
		return fmt.Errorf("scenario %q has too few records to chart", result.Name)
	}

	months := make([]float64, len(result.Records))
	revenue := make([]float64, len(result.Records))
	opex := make([]float64, len(result.Records))
	net := make([]float64, len(result.Records))
	for i, record := range result.Records {
		months[i] = float64(i + 1)
		revenue[i] = record.Revenue / 1e3
		opex[i] = record.Opex / 1e3
		net[i] = record.NetCashFlow / 1e3
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - Monthly Revenue vs Operating Expenses", result.Name),
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name: "Month",
		},
		YAxis: chart.YAxis{
			Name: "Monthly Cash Flow ($K)",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fK", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Monthly Revenue",
				XValues: months,
				YValues: revenue,
				Style: chart.Style{
					StrokeColor: colorRevenue,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Monthly OpEx",
				XValues: months,
				YValues: opex,
				Style: chart.Style{
					StrokeColor: colorOpex,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Net Cash Flow",
				XValues: months,
				YValues: net,
				Style: chart.Style{
					StrokeColor:     colorCumulative,
					StrokeWidth:     2,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("cash flow chart for %q: %w", result.Name, err)
	}
	return nil
}

// CapExPieChart shows the investment share of each CapEx category.
func (r *Renderer) CapExPieChart(w io.Writer, table capex.Table) error {
	subtotals := table.Subtotals()
	if len(subtotals) == 0 {
		return fmt.Errorf("capex table has no categories to chart")
	}

	base := table.BaseCost()
	values := make([]chart.Value, 0, len(subtotals))
	for i, subtotal := range subtotals {
		if subtotal.Total <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: subtotal.Total,
			Label: fmt.Sprintf("%s: %s (%.1f%%)",
				subtotal.Category,
				format.Millions(subtotal.Total),
				mathutil.CalculatePercentage(subtotal.Total, base)),
			Style: chart.Style{
				FillColor: capexPalette[i%len(capexPalette)],
			},
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("CapEx Breakdown by Category - Total %s", format.Millions(base)),
		Width:  1024,
		Height: 768,
		Values: values,
	}

	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("capex pie chart: %w", err)
	}
	return nil
}

// CapExBarChart shows every CapEx line item in millions.
func (r *Renderer) CapExBarChart(w io.Writer, table capex.Table) error {
	if len(table.Items) == 0 {
		return fmt.Errorf("capex table has no line items to chart")
	}

	categoryColor := make(map[string]drawing.Color)
	for i, subtotal := range table.Subtotals() {
		categoryColor[subtotal.Category] = capexPalette[i%len(capexPalette)]
	}

	bars := make([]chart.Value, 0, len(table.Items))
	for _, item := range table.Items {
		bars = append(bars, chart.Value{
			Value: item.TotalCost / 1e6,
			Label: item.Subcategory,
			Style: chart.Style{
				FillColor:   categoryColor[item.Category],
				StrokeColor: categoryColor[item.Category],
			},
		})
	}

	bar := chart.BarChart{
		Title:    "Detailed CapEx Breakdown (Millions USD)",
		Width:    1600,
		Height:   720,
		BarWidth: 60,
		Bars:     bars,
	}

	if err := bar.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("capex bar chart: %w", err)
	}
	return nil
}

// slugify turns a scenario name into a file-name fragment.
func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "_")
	return slug
}
