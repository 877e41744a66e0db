// Package constants provides shared constants for the financial model generator.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// HoursPerMonth is the flat hours-per-month approximation used for
	// energy cost derivation (30 days x 24 hours)
	HoursPerMonth = 720

	// KilowattsPerMegawatt converts facility capacity to kW for energy math
	KilowattsPerMegawatt = 1000

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// File and directory constants
const (
	// DefaultWorkbookFile is the default workbook output file name
	DefaultWorkbookFile = "financial_model.xlsx"

	// DefaultGraphsDir is the default directory for chart output
	DefaultGraphsDir = "graphs"

	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
