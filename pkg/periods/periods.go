// Package periods provides utilities for the YnMmm period labels used across
// the projection horizon (Y1M01 through Y5M12 for a 60-month model).
package periods

import (
	"fmt"

	"github.com/gridedge/financial-model/pkg/constants"
)

// Label returns the period label for a zero-based month index,
// e.g. index 0 -> "Y1M01" and index 38 -> "Y4M03".
func Label(index int) string {
	return fmt.Sprintf("Y%dM%02d", Year(index), Month(index))
}

// Year returns the one-based projection year for a zero-based month index.
func Year(index int) int {
	return index/constants.MonthsPerYear + 1
}

// Month returns the one-based month within the projection year for a
// zero-based month index.
func Month(index int) int {
	return index%constants.MonthsPerYear + 1
}

// Labels returns period labels for every month in an n-month horizon.
func Labels(n int) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = Label(i)
	}
	return labels
}

// Parse converts a period label back into its zero-based month index.
func Parse(label string) (int, error) {
	var year, month int
	if _, err := fmt.Sscanf(label, "Y%dM%d", &year, &month); err != nil {
		return 0, fmt.Errorf("failed to parse period label %q: %w", label, err)
	}
	if year < 1 || month < 1 || month > constants.MonthsPerYear {
		return 0, fmt.Errorf("period label %q out of range", label)
	}
	return (year-1)*constants.MonthsPerYear + month - 1, nil
}
