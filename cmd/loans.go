package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type loansCmd struct{}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "display outstanding loans" }
func (*loansCmd) Usage() string {
	return `wcs loans

  Displays outstanding loans with their lender, balance, rate and monthly
  payment.
`
}

func (c *loansCmd) SetFlags(f *flag.FlagSet) {}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, opts, err := LoadProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderLoans(renderer.NewDashboard(p, opts)))
	return subcommands.ExitSuccess
}
