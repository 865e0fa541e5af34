package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type stocksCmd struct {
	by string
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "display stock and fund positions" }
func (*stocksCmd) Usage() string {
	return `wcs [-fx <rate>] stocks [-by integrated|broker|sector]

  Displays domestic stocks, foreign stocks and funds with their value in the
  profile currency. Foreign stocks are converted at the fixed -fx rate.

  -by broker groups positions by broker, -by sector groups stocks (not funds)
  by sector.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", string(renderer.Integrated), "Grouping of the positions: integrated, broker or sector")
}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := renderer.ParseStocksView(c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	p, opts, err := LoadProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderStocks(renderer.NewDashboard(p, opts), view))
	return subcommands.ExitSuccess
}
