package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/loancalc"
	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "fetch the latest euro short-term reference rate" }
func (*rateCmd) Usage() string {
	return `lcc rate

  Fetches the latest euro short-term rate (€STR) published by the European
  Central Bank, a starting point for the -interest flag of the calculators.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := loancalc.ReferenceRate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching reference rate: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("€STR: %s%% p.a.\n", rate.StringFixed(3))
	return subcommands.ExitSuccess
}
