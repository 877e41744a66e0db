// Package format provides string formatting helpers for currency and
// percentage values used in terminal output and chart labels.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Millions returns a compact currency string in millions (e.g., "$6.2M").
func Millions(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s$%.1fM", sign, math.Abs(amount)/1e6)
}

// Thousands returns a compact currency string in thousands (e.g., "$159K").
func Thousands(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s$%.0fK", sign, math.Abs(amount)/1e3)
}

// Percent renders a fractional ratio as a percentage string (e.g., 0.125 -> "12.5%").
func Percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
