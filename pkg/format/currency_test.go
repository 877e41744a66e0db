package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small positive", 12.5, "$12.50"},
		{"Thousands separator", 153000, "$153,000.00"},
		{"Millions", 6200000, "$6,200,000.00"},
		{"Negative", -43000, "-$43,000.00"},
		{"Zero", 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %s, expected %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestMillions(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Phase one investment", 6200000, "$6.2M"},
		{"Full build", 32000000, "$32.0M"},
		{"Negative cumulative flow", -2580000, "-$2.6M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Millions(tt.amount); got != tt.expected {
				t.Errorf("Millions(%v) = %s, expected %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestThousands(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Bull net cash flow", 159000, "$159K"},
		{"Bear net cash flow", -43000, "-$43K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Thousands(tt.amount); got != tt.expected {
				t.Errorf("Thousands(%v) = %s, expected %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.125); got != "12.5%" {
		t.Errorf("Percent(0.125) = %s, expected 12.5%%", got)
	}
	if got := Percent(-0.05); got != "-5.0%" {
		t.Errorf("Percent(-0.05) = %s, expected -5.0%%", got)
	}
}
