package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/loancalc"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the solved loan and its totals, without the
// period-by-period table.
func SummaryMarkdown(s *loancalc.Schedule, solved loancalc.Variable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loan Summary")
	switch solved {
	case loancalc.Payment:
		doc.PlainText(fmt.Sprintf("Your monthly payment = %s", s.Spec.Payment.Round(2)))
	case loancalc.Principal:
		doc.PlainText(fmt.Sprintf("Your loan principal = %s", s.Spec.Principal.Round(2)))
	case loancalc.Periods:
		doc.PlainText(fmt.Sprintf("It will take %s to repay this loan.", RepayDuration(s.Spec.Periods)))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Model", s.Spec.Model.String()},
			{"Principal", s.Spec.Principal.Round(2).String()},
			{"Periods", RepayDuration(s.Spec.Periods)},
			{"Annual Rate", s.Spec.AnnualRate.String() + "%"},
			{"Total Paid", s.TotalPaid.String()},
			{"Overpayment", s.Overpayment().String()},
		},
	})

	return doc.String()
}

// RepayDuration phrases a number of monthly periods as "N years and M months".
func RepayDuration(periods int) string {
	years, months := periods/12, periods%12
	var parts []string
	if years == 1 {
		parts = append(parts, "1 year")
	} else if years > 1 {
		parts = append(parts, fmt.Sprintf("%d years", years))
	}
	if months == 1 {
		parts = append(parts, "1 month")
	} else if months > 1 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d months", months))
	}
	return strings.Join(parts, " and ")
}
