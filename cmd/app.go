// Package cmd implements the CLI application to compute loan schedules.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/loancalc"
	"github.com/etnz/loancalc/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&annuityCmd{}, "calculations")
	c.Register(&diffCmd{}, "calculations")
	c.Register(&scheduleCmd{}, "calculations")

	c.Register(&exportCmd{}, "export")

	c.Register(&rateCmd{}, "market")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// Names returns the registered subcommand names, for shell completion.
func Names() []string {
	return []string{"annuity", "diff", "schedule", "export", "rate", "topic", "assist"}
}

// loanFlags holds the flags shared by every calculation subcommand.
type loanFlags struct {
	principal float64
	payment   float64
	periods   int
	interest  float64
	currency  string
	start     string
}

func (l *loanFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&l.principal, "principal", 0, "Loan principal; 0 leaves it unknown")
	f.Float64Var(&l.payment, "payment", 0, "Monthly payment; 0 leaves it unknown")
	f.IntVar(&l.periods, "periods", 0, "Number of monthly payments; 0 leaves it unknown")
	f.Float64Var(&l.interest, "interest", 0, "Annual interest rate as a percentage")
	f.StringVar(&l.currency, "currency", "", "Optional ISO currency code used for display (e.g. EUR)")
	f.StringVar(&l.start, "start", "", "Optional first due date (YYYY-MM-DD) to date the schedule")
}

// spec builds the LoanSpec from the flags for the given repayment model.
func (l *loanFlags) spec(model loancalc.Model) (loancalc.LoanSpec, error) {
	spec := loancalc.LoanSpec{
		Model:      model,
		Principal:  loancalc.M(l.principal, l.currency),
		Payment:    loancalc.M(l.payment, l.currency),
		Periods:    l.periods,
		AnnualRate: decimal.NewFromFloat(l.interest),
	}
	if l.start != "" {
		d, err := date.Parse(l.start)
		if err != nil {
			return spec, err
		}
		spec.Start = d
	}
	return spec, nil
}

// exit reports the error on stderr and maps it to an exit status:
// bad parameters are usage errors, everything else is a plain failure.
func exit(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, loancalc.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(source string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(source)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(strings.TrimLeft(out, "\n"))
}
