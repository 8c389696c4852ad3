// Package renderer turns loancalc results into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/loancalc"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders the full amortization table to a markdown string.
func ScheduleMarkdown(s *loancalc.Schedule) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Amortization Schedule (%s)", s.Spec.Model))
	doc.PlainText(fmt.Sprintf("Principal %s over %s at %s%% per year.",
		s.Spec.Principal, RepayDuration(s.Spec.Periods), s.Spec.AnnualRate))

	dated := !s.Spec.Start.IsZero()

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Payment", "Principal", "Interest", "Balance"},
		Rows:   [][]string{},
	}
	if dated {
		table.Alignment = append([]md.TableAlignment{md.AlignLeft}, table.Alignment...)
		table.Header = append([]string{"Due"}, table.Header...)
	}
	for _, r := range s.Rows {
		row := []string{
			fmt.Sprintf("%d", r.PeriodIndex),
			r.PaymentAmount.String(),
			r.PrincipalPortion.String(),
			r.InterestPortion.String(),
			r.RemainingBalance.String(),
		}
		if dated {
			row = append([]string{r.Due.String()}, row...)
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Paid"), md.Bold(s.TotalPaid.String())},
		Rows: [][]string{
			{"Total Interest", s.TotalInterest.String()},
		},
	})

	return doc.String()
}
