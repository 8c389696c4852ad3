package cmd

import (
	"context"
	"flag"

	"github.com/etnz/loancalc"
	"github.com/etnz/loancalc/renderer"
	"github.com/google/subcommands"
)

// diffCmd holds the flags for the 'diff' subcommand.
type diffCmd struct {
	loan loanFlags
}

func (*diffCmd) Name() string { return "diff" }
func (*diffCmd) Synopsis() string {
	return "display the declining payments of a differentiated loan"
}
func (*diffCmd) Usage() string {
	return `lcc diff -principal <amount> -periods <n> -interest <rate>

  Displays the full payment table of a differentiated loan: the principal
  portion is constant, the payment declines as the balance shrinks.

Usage Examples:
$ lcc diff -principal 10000 -periods 10 -interest 12

`
}

func (c *diffCmd) SetFlags(f *flag.FlagSet) { c.loan.SetFlags(f) }

func (c *diffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	spec, err := c.loan.spec(loancalc.Differentiated)
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
