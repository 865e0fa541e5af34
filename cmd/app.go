// Package cmd implements the wcs command-line application: reports over a
// household financial profile.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/etnz/wealth"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	profileFile = flag.String("profile", "", "Path to the profile file (JSON). Defaults to $WCS_PROFILE_FILE, then to the config file, then to profile.json")
	configFile  = flag.String("config", "", "Path to the config file (TOML). Defaults to $WCS_CONFIG_FILE, then to wealth.toml")
	fxRate      = flag.Float64("fx", 0, "Fixed exchange rate applied to foreign stocks, in local currency per unit")
	months      = flag.Int("months", 0, "Number of months of the cash flow projection")
	start       = flag.String("start", "", "First month of the cash flow projection (YYYY-MM-DD); leaves months undated if empty")
	useSample   = flag.Bool("sample", false, "Use the built-in sample profile instead of a profile file")
	raw         = flag.Bool("raw", false, "Print reports as raw markdown instead of rendering them for the terminal")
	Verbose     = flag.Bool("v", false, "Verbose logging")
)

type entry struct {
	cmd   subcommands.Command
	group string
}

// commands lists every subcommand in help order.
var commands = []entry{
	{&summaryCmd{}, "reports"},
	{&cashflowCmd{}, "reports"},
	{&allocationCmd{}, "reports"},
	{&stocksCmd{}, "reports"},
	{&realEstateCmd{}, "reports"},
	{&pensionsCmd{}, "reports"},
	{&loansCmd{}, "reports"},
	{&queryCmd{}, "tools"},
	{&AssistCmd{}, "tools"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// LoadProfile returns the profile and options selected by the global flags,
// the environment and the config file.
func LoadProfile() (*wealth.Profile, wealth.Options, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, wealth.Options{}, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, wealth.Options{}, err
	}
	if *useSample {
		log.Println("using the sample profile")
		return wealth.SampleProfile(), opts, nil
	}
	log.Printf("loading profile %q", cfg.Profile)
	p, err := wealth.LoadProfile(cfg.Profile)
	if err != nil {
		return nil, wealth.Options{}, fmt.Errorf("%w (use -sample to try wcs without a profile)", err)
	}
	return p, opts, nil
}
