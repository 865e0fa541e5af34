package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type realEstateCmd struct {
	add    bool
	remove int
	print  bool
}

func (*realEstateCmd) Name() string     { return "realestate" }
func (*realEstateCmd) Synopsis() string { return "display and edit real estate holdings" }
func (*realEstateCmd) Usage() string {
	return `wcs realestate [-add] [-remove <index>] [-print]

  Displays real estate holdings with their loan, net value, rent and gross
  yield.

  -add appends a zeroed holding, -remove deletes the holding at the given
  index (as displayed). Edits are never saved: use -print to write the
  edited profile to the standard output.
`
}

func (c *realEstateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a new zeroed holding")
	f.IntVar(&c.remove, "remove", 0, "Remove the holding at this index")
	f.BoolVar(&c.print, "print", false, "Print the edited profile as JSON instead of the report")
}

func (c *realEstateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, opts, err := LoadProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removing := false
	f.Visit(func(fl *flag.Flag) { removing = removing || fl.Name == "remove" })
	if removing {
		if err := p.RemoveRealEstate(c.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		log.Printf("removed real estate holding %d", c.remove)
	}
	if c.add {
		i := p.AddRealEstate()
		log.Printf("added real estate holding %d", i)
	}

	if c.print {
		if err := wealth.EncodeProfile(stdout, p); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderRealEstate(renderer.NewDashboard(p, opts)))
	return subcommands.ExitSuccess
}
