package cmd

import (
	"context"
	"flag"

	"github.com/etnz/loancalc"
	"github.com/etnz/loancalc/renderer"
	"github.com/google/subcommands"
)

// annuityCmd holds the flags for the 'annuity' subcommand.
type annuityCmd struct {
	loan loanFlags
}

func (*annuityCmd) Name() string { return "annuity" }
func (*annuityCmd) Synopsis() string {
	return "solve an annuity loan and display its summary"
}
func (*annuityCmd) Usage() string {
	return `lcc annuity -interest <rate> [-principal <amount>] [-payment <amount>] [-periods <n>]

  Solves the missing annuity loan variable from the two provided ones, and
  displays the resolved loan with its total cost and overpayment.

Usage Examples:
# Solve the monthly payment.
$ lcc annuity -principal 10000 -periods 12 -interest 12

# Solve how long the repayment takes.
$ lcc annuity -principal 10000 -payment 888.49 -interest 12

`
}

func (c *annuityCmd) SetFlags(f *flag.FlagSet) { c.loan.SetFlags(f) }

func (c *annuityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	spec, err := c.loan.spec(loancalc.Annuity)
	if err != nil {
		return exit(err)
	}
	unknown, err := spec.Unknown()
	if err != nil {
		return exit(err)
	}
	schedule, err := loancalc.BuildSchedule(spec)
	if err != nil {
		return exit(err)
	}
	printMarkdown(renderer.SummaryMarkdown(schedule, unknown))
	return subcommands.ExitSuccess
}
