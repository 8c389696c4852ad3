package loancalc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file contains functions to handle the schedule export formats.
// The column contract is fixed: downstream spreadsheets rely on it.

// exportHeader is the stable column order of the tabular export.
var exportHeader = []string{"periodIndex", "paymentAmount", "principalPortion", "interestPortion", "remainingBalance"}

// ExportCSV writes the schedule rows to 'w' as CSV, one row per period.
//
// Columns are periodIndex, paymentAmount, principalPortion, interestPortion
// and remainingBalance, amounts with 2 fractional digits. A dated schedule
// gets a leading dueDate column in ISO-8601.
func ExportCSV(w io.Writer, s *Schedule) error {
	cw := csv.NewWriter(w)

	dated := !s.Spec.Start.IsZero()
	header := exportHeader
	if dated {
		header = append([]string{"dueDate"}, exportHeader...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write schedule header: %w", err)
	}

	for _, r := range s.Rows {
		rec := []string{
			strconv.Itoa(r.PeriodIndex),
			r.PaymentAmount.Round(2).Decimal().StringFixed(2),
			r.PrincipalPortion.Round(2).Decimal().StringFixed(2),
			r.InterestPortion.Round(2).Decimal().StringFixed(2),
			r.RemainingBalance.Round(2).Decimal().StringFixed(2),
		}
		if dated {
			rec = append([]string{r.Due.String()}, rec...)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write schedule row %d: %w", r.PeriodIndex, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSONL writes the schedule to 'w' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one period, fields in the same order as the CSV export, with an optional
// leading 'dueDate' property.
func ExportJSONL(w io.Writer, s *Schedule) error {
	for _, r := range s.Rows {
		var jw jsonObjectWriter
		jw.Optional("dueDate", r.Due)
		jw.Append("periodIndex", r.PeriodIndex)
		jw.Append("paymentAmount", r.PaymentAmount.Round(2).Decimal())
		jw.Append("principalPortion", r.PrincipalPortion.Round(2).Decimal())
		jw.Append("interestPortion", r.InterestPortion.Round(2).Decimal())
		jw.Append("remainingBalance", r.RemainingBalance.Round(2).Decimal())
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal schedule row %d: %w", r.PeriodIndex, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write schedule row %d: %w", r.PeriodIndex, err)
		}
	}
	return nil
}
