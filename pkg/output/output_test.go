package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gridedge/financial-model/internal/config"
	"github.com/gridedge/financial-model/internal/forecast"
	"go.uber.org/zap"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func testResults(t *testing.T) []forecast.Result {
	t.Helper()
	results, err := forecast.GetForecast(zap.NewNop(), *config.Default())
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}
	return results
}

func TestPrettyFormat(t *testing.T) {
	results := testResults(t)
	out := captureStdout(t, func() {
		PrettyFormat(results)
	})

	if !strings.Contains(out, "--- Results for scenario Full Build ---") {
		t.Error("PrettyFormat missing Full Build scenario header")
	}
	if !strings.Contains(out, "--- Results for scenario Phase I Bull ---") {
		t.Error("PrettyFormat missing Phase I Bull scenario header")
	}
	if !strings.Contains(out, "Month | Revenue | OpEx | Net Cash Flow | Cumulative CF | Net Position | ROI | Payback") {
		t.Error("PrettyFormat missing table header")
	}
	if !strings.Contains(out, "Y1M01") {
		t.Error("PrettyFormat missing first month label")
	}
	// The bull variant breaks even in the 41st month; the full build reports
	// its maximum loss instead.
	if !strings.Contains(out, "Break-even: Y4M05 (month 41)") {
		t.Error("PrettyFormat missing bull break-even line")
	}
	if !strings.Contains(out, "Break-even: not achieved; maximum loss of -$8,382,121.96 at Y5M12") {
		t.Error("PrettyFormat missing max-loss line for the full build")
	}
}

func TestCsvFormat(t *testing.T) {
	results := testResults(t)
	out := captureStdout(t, func() {
		CsvFormat(results)
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus 4 scenarios x 60 months.
	if len(lines) != 1+4*60 {
		t.Fatalf("CsvFormat produced %d lines, expected %d", len(lines), 1+4*60)
	}
	if lines[0] != `"scenario","month","revenue","opex","netCashFlow","cumulativeCashFlow","netPosition","roiRatio","payback"` {
		t.Errorf("CsvFormat header = %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"Full Build","Y1M01",`) {
		t.Errorf("first data row = %s, expected Full Build Y1M01", lines[1])
	}
	if !strings.Contains(out, `"NO"`) {
		t.Error("CsvFormat missing payback NO values")
	}
	if !strings.Contains(out, `"YES"`) {
		t.Error("CsvFormat missing payback YES values for the bull case")
	}
}

func TestPaybackLabel(t *testing.T) {
	if paybackLabel(true) != "YES" || paybackLabel(false) != "NO" {
		t.Error("paybackLabel should render YES/NO")
	}
}
