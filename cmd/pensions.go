package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type pensionsCmd struct{}

func (*pensionsCmd) Name() string     { return "pensions" }
func (*pensionsCmd) Synopsis() string { return "display pension plans" }
func (*pensionsCmd) Usage() string {
	return `wcs pensions

  Displays pension plans with their monthly contribution, balance and
  expected payout.
`
}

func (c *pensionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *pensionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, opts, err := LoadProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPensions(renderer.NewDashboard(p, opts)))
	return subcommands.ExitSuccess
}
