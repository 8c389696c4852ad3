package cmd

import (
	"context"
	"flag"

	"github.com/etnz/loancalc"
	"github.com/etnz/loancalc/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	loan  loanFlags
	model string
}

func (*scheduleCmd) Name() string { return "schedule" }
func (*scheduleCmd) Synopsis() string {
	return "display the full amortization table of a loan"
}
func (*scheduleCmd) Usage() string {
	return `lcc schedule [-model <annuity|diff>] -interest <rate> [-principal <amount>] [-payment <amount>] [-periods <n>] [-start <date>]

  Displays the period-by-period amortization table: payment, principal and
  interest portions and the remaining balance, with totals. An annuity spec
  with one missing variable is solved first.

Usage Examples:
# A dated annuity schedule.
$ lcc schedule -principal 10000 -periods 12 -interest 12 -start 2026-01-15

`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.loan.SetFlags(f)
	f.StringVar(&c.model, "model", "annuity", "Repayment model (annuity, diff)")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	model, err := loancalc.ParseModel(c.model)
	if err != nil {
		return exit(err)
	}
	spec, err := c.loan.spec(model)
	if err != nil {
		return exit(err)
	}
	schedule, err := loancalc.BuildSchedule(spec)
	if err != nil {
		return exit(err)
	}
	printMarkdown(renderer.ScheduleMarkdown(schedule))
	return subcommands.ExitSuccess
}
