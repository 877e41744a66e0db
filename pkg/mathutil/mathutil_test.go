package mathutil

import (
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round up", -1.235, -1.24},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Clearly negative", -43000.0, true},
		{"Clearly positive", 159000.0, false},
		{"Zero", 0.0, false},
		{"Within tolerance of zero", -0.005, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNegative(tt.input); got != tt.expected {
				t.Errorf("IsNegative(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exact match", 100.0, 100.0, 1e-9, true},
		{"Within tolerance", 100.0, 100.0000000005, 1e-9, true},
		{"Outside tolerance", 100.0, 100.01, 1e-9, false},
		{"Negative values within", -43000.0, -43000.0, 1e-9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.val1, tt.val2, tt.tolerance); got != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, got, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(1.5, 1.2); got != 1.2 {
		t.Errorf("Min(1.5, 1.2) = %v, expected 1.2", got)
	}
	if got := Min(1.0, 1.4); got != 1.0 {
		t.Errorf("Min(1.0, 1.4) = %v, expected 1.0", got)
	}
	if got := Max(-1.0, 0.0); got != 0.0 {
		t.Errorf("Max(-1.0, 0.0) = %v, expected 0.0", got)
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Half", 50.0, 100.0, 50.0},
		{"Zero total", 50.0, 0.0, 0.0},
		{"CapEx category share", 28000000.0, 38750000.0, 72.25806451612904},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePercentage(tt.value, tt.total)
			if !WithinTolerance(got, tt.expected, 1e-9) {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v",
					tt.value, tt.total, got, tt.expected)
			}
		})
	}
}
