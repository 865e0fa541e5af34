package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract derived figures with JSONPath" }
func (*queryCmd) Usage() string {
	return `wcs query <jsonpath>...

  Evaluates each JSONPath expression against the derived metrics of the
  profile and prints the result as JSON. Without argument, prints all the
  metrics. See 'wcs topic metrics' for the available fields.

  Example: wcs query '$.netWorth.amount' '$.byBroker[*].broker'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, opts, err := LoadProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	m := wealth.NewMetrics(p, opts)

	paths := f.Args()
	if len(paths) == 0 {
		paths = []string{"$"}
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	for _, path := range paths {
		v, err := m.Query(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := enc.Encode(v); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
