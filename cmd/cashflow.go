package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type cashflowCmd struct{}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display monthly income, expenses and projection" }
func (*cashflowCmd) Usage() string {
	return `wcs [-months <n>] [-start <date>] cashflow

  Displays the monthly income and expenses by category, the net cash flow,
  the savings rate, and a flat projection of the next months.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, opts, err := LoadProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderCashFlow(renderer.NewDashboard(p, opts)))
	return subcommands.ExitSuccess
}
