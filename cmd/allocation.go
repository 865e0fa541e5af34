package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the split of assets by category" }
func (*allocationCmd) Usage() string {
	return `wcs allocation

  Displays total assets split into real estate, equities, deposits, bonds,
  pensions, gold and crypto, with each category's share.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, opts, err := LoadProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderAllocation(renderer.NewDashboard(p, opts)))
	return subcommands.ExitSuccess
}
