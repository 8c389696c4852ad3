package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/loancalc"
	"github.com/shopspring/decimal"
)

func annuitySchedule(t *testing.T) *loancalc.Schedule {
	t.Helper()
	s, err := loancalc.BuildSchedule(loancalc.LoanSpec{
		Model:      loancalc.Annuity,
		Principal:  loancalc.M(10000, ""),
		Periods:    12,
		AnnualRate: decimal.NewFromInt(12),
	})
	if err != nil {
		t.Fatalf("BuildSchedule() returned unexpected error: %v", err)
	}
	return s
}

func TestScheduleMarkdown(t *testing.T) {
	got := ScheduleMarkdown(annuitySchedule(t))

	for _, want := range []string{
		"# Amortization Schedule (annuity)",
		"| Period | Payment | Principal | Interest | Balance |",
		"888.49",  // the constant annuity payment
		"9211.51", // balance after the first period
		"661.86",  // total interest
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ScheduleMarkdown() output misses %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(annuitySchedule(t), loancalc.Payment)

	for _, want := range []string{
		"# Loan Summary",
		"Your monthly payment = 888.49",
		"Overpayment",
		"661.86",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() output misses %q:\n%s", want, got)
		}
	}
}

func TestRepayDuration(t *testing.T) {
	testCases := []struct {
		periods int
		want    string
	}{
		{0, "0 months"},
		{1, "1 month"},
		{7, "7 months"},
		{12, "1 year"},
		{13, "1 year and 1 month"},
		{30, "2 years and 6 months"},
		{240, "20 years"},
	}
	for _, tc := range testCases {
		if got := RepayDuration(tc.periods); got != tc.want {
			t.Errorf("RepayDuration(%d) = %q, want %q", tc.periods, got, tc.want)
		}
	}
}
