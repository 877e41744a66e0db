// Package forecast runs the projection engine across the scenario catalogue
// and collects the per-scenario results consumed by the renderers.
package forecast

import (
	"fmt"

	"github.com/gridedge/financial-model/internal/config"
	"github.com/gridedge/financial-model/internal/projection"
	"go.uber.org/zap"
)

// Result holds all information related to one projected scenario.
type Result struct {
	Name    string
	Records []projection.Record
	Summary projection.Summary
}

// GetForecast processes the projections for all active scenarios. Scenario
// order is preserved; inactive scenarios are skipped.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := projection.NewEngine(logger)

	var results []Result
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}

		records, err := engine.Project(scenario.Assumption)
		if err != nil {
			return results, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		summary := projection.Summarize(records)
		logger.Debug("scenario projected",
			zap.String("op", "forecast.GetForecast"),
			zap.String("scenario", scenario.Name),
			zap.Bool("breakEvenFound", summary.BreakEvenFound),
			zap.Float64("finalCumulativeCashFlow", summary.FinalCumulativeCashFlow),
		)

		results = append(results, Result{
			Name:    scenario.Name,
			Records: records,
			Summary: summary,
		})
	}

	return results, nil
}
