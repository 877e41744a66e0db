package config

import (
	"fmt"

	"github.com/gridedge/financial-model/pkg/constants"
)

// Validate performs fail-fast validation of the configuration. Assumption
// errors surface here, before any projection runs.
func (c *Configuration) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("configuration has no scenarios")
	}
	if c.Project.CapacityMW < 0 {
		return fmt.Errorf("project capacity must be non-negative, got %v", c.Project.CapacityMW)
	}

	seen := make(map[string]bool)
	for _, scenario := range c.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario with empty name")
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
		if err := scenario.Assumption.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}

	if len(c.CapEx.Items) > 0 {
		if err := c.CapEx.Validate(); err != nil {
			return fmt.Errorf("capex table: %w", err)
		}
	}

	return nil
}

// ValidateOutputFormat ensures the requested terminal format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q; expected %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// Warnings performs advisory checks of the configuration and returns
// human-readable warnings. None of these block a run.
func (c *Configuration) Warnings() []string {
	var warnings []string

	if len(c.ActiveScenarios()) == 0 {
		warnings = append(warnings, "no active scenarios; nothing will be projected")
	}

	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			warnings = append(warnings,
				fmt.Sprintf("Scenario '%s' is inactive and will be skipped", scenario.Name))
			continue
		}

		a := scenario.Assumption
		revenue := a.GPURevenueBase + a.ASICRevenueBase + a.AncillaryRevenueBase
		if revenue == 0 {
			warnings = append(warnings,
				fmt.Sprintf("Scenario '%s' has no revenue sources configured", scenario.Name))
		}
		if a.InitialInvestment == 0 {
			warnings = append(warnings,
				fmt.Sprintf("Scenario '%s' has zero initial investment; ROI will report as 0", scenario.Name))
		}
		if a.HorizonMonths%constants.MonthsPerYear != 0 {
			warnings = append(warnings,
				fmt.Sprintf("Scenario '%s' horizon of %d months is not a whole number of years",
					scenario.Name, a.HorizonMonths))
		}
	}

	if len(c.CapEx.Items) == 0 {
		warnings = append(warnings, "no CapEx line items; the CapEx sheet and charts will be skipped")
	}

	return warnings
}
