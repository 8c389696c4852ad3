package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSpec(t *testing.T) {
	spec, err := parseSpec(map[string]any{
		"model":     "annuity",
		"principal": 10000.0,
		"periods":   12.0,
		"interest":  12.0,
	})
	if err != nil {
		t.Fatalf("parseSpec() returned unexpected error: %v", err)
	}
	if got := spec.Principal.String(); got != "10000.00" {
		t.Errorf("parseSpec() principal = %s, want 10000.00", got)
	}
	if spec.Periods != 12 {
		t.Errorf("parseSpec() periods = %d, want 12", spec.Periods)
	}
	if !spec.AnnualRate.Equal(decimal.NewFromInt(12)) {
		t.Errorf("parseSpec() rate = %s, want 12", spec.AnnualRate)
	}
	if !spec.Payment.IsZero() {
		t.Errorf("parseSpec() payment = %s, want unset", spec.Payment)
	}
}

func TestParseSpecBadArgs(t *testing.T) {
	tests := []map[string]any{
		{"principal": 10000.0},                                        // missing model
		{"model": "balloon", "principal": 10000.0},                    // unknown model
		{"model": "annuity", "principal": "lots", "interest": 12.0},   // wrong type
	}
	for _, args := range tests {
		if _, err := parseSpec(args); err == nil {
			t.Errorf("parseSpec(%v) should fail", args)
		}
	}
}

// The tool functions run the engine locally, no chat session required.
func TestSolveLoanTool(t *testing.T) {
	resp := solveLoan.Func(context.Background(), "id-1", map[string]any{
		"model":     "annuity",
		"principal": 10000.0,
		"periods":   12.0,
		"interest":  12.0,
	})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("SolveLoan response = %v, want an output", resp.Response)
	}
	if !strings.Contains(out, "888.49") {
		t.Errorf("SolveLoan output should contain the monthly payment 888.49:\n%s", out)
	}
}

func TestAmortizationTableTool(t *testing.T) {
	resp := amortizationTable.Func(context.Background(), "id-2", map[string]any{
		"model":     "diff",
		"principal": 10000.0,
		"periods":   10.0,
		"interest":  0.0,
	})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("AmortizationTable response = %v, want an output", resp.Response)
	}
	for _, want := range []string{"1000.00", "Amortization Schedule"} {
		if !strings.Contains(out, want) {
			t.Errorf("AmortizationTable output should contain %q:\n%s", want, out)
		}
	}
}

func TestSolveLoanToolError(t *testing.T) {
	resp := solveLoan.Func(context.Background(), "id-3", map[string]any{
		"model":    "annuity",
		"interest": 12.0,
	})
	if _, ok := resp.Response["error"]; !ok {
		t.Fatalf("SolveLoan with two unknowns should report an error, got %v", resp.Response)
	}
}
