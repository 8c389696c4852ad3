package loancalc

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/etnz/loancalc/date"
)

func buildTestSchedule(t *testing.T, spec LoanSpec) *Schedule {
	t.Helper()
	s, err := BuildSchedule(spec)
	if err != nil {
		t.Fatalf("BuildSchedule() returned unexpected error: %v", err)
	}
	return s
}

func TestExportCSV(t *testing.T) {
	s := buildTestSchedule(t, LoanSpec{
		Model:     Differentiated,
		Principal: M(10000, ""),
		Periods:   10,
	})

	var b strings.Builder
	if err := ExportCSV(&b, s); err != nil {
		t.Fatalf("ExportCSV() returned unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	if got, want := len(records), 11; got != want {
		t.Fatalf("len(records) = %d, want %d (header + 10 rows)", got, want)
	}
	wantHeader := "periodIndex,paymentAmount,principalPortion,interestPortion,remainingBalance"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}
	if got, want := strings.Join(records[1], ","), "1,1000.00,1000.00,0.00,9000.00"; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
	if got, want := strings.Join(records[10], ","), "10,1000.00,1000.00,0.00,0.00"; got != want {
		t.Errorf("row 10 = %q, want %q", got, want)
	}
}

func TestExportCSV_Dated(t *testing.T) {
	s := buildTestSchedule(t, LoanSpec{
		Model:      Annuity,
		Principal:  M(10000, ""),
		Periods:    12,
		AnnualRate: rate(12),
		Start:      date.New(2026, time.March, 1),
	})

	var b strings.Builder
	if err := ExportCSV(&b, s); err != nil {
		t.Fatalf("ExportCSV() returned unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if !strings.HasPrefix(lines[0], "dueDate,periodIndex,") {
		t.Errorf("dated header = %q, want a leading dueDate column", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2026-03-01,1,") {
		t.Errorf("row 1 = %q, want it to start with the first due date", lines[1])
	}
}

func TestExportJSONL(t *testing.T) {
	s := buildTestSchedule(t, LoanSpec{
		Model:      Annuity,
		Principal:  M(10000, ""),
		Periods:    12,
		AnnualRate: rate(12),
	})

	var b strings.Builder
	if err := ExportJSONL(&b, s); err != nil {
		t.Fatalf("ExportJSONL() returned unexpected error: %v", err)
	}

	var count int
	scanner := bufio.NewScanner(strings.NewReader(b.String()))
	for scanner.Scan() {
		count++
		var row struct {
			PeriodIndex      int    `json:"periodIndex"`
			PaymentAmount    string `json:"paymentAmount"`
			PrincipalPortion string `json:"principalPortion"`
			InterestPortion  string `json:"interestPortion"`
			RemainingBalance string `json:"remainingBalance"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			t.Fatalf("line %d does not parse: %v", count, err)
		}
		if row.PeriodIndex != count {
			t.Errorf("line %d has periodIndex %d", count, row.PeriodIndex)
		}
		if count == 1 && row.InterestPortion != "100" {
			t.Errorf("row 1 interestPortion = %q, want %q", row.InterestPortion, "100")
		}
	}
	if count != 12 {
		t.Errorf("exported %d lines, want 12", count)
	}
	// undated schedules must not carry a dueDate property
	if strings.Contains(b.String(), "dueDate") {
		t.Error("undated export contains a dueDate property")
	}
	// field order is part of the format
	if !strings.HasPrefix(b.String(), `{"periodIndex":1,"paymentAmount":`) {
		t.Errorf("unexpected field order: %q", strings.SplitN(b.String(), "\n", 2)[0])
	}
}
