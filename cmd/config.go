package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

const (
	EnvProfileFile = "WCS_PROFILE_FILE"
	EnvConfigFile  = "WCS_CONFIG_FILE"
	EnvFXRate      = "WCS_FX_RATE"
	EnvVerbose     = "WCS_VERBOSE"
)

const (
	defaultProfileFile = "profile.json"
	defaultConfigFile  = "wealth.toml"
)

// Config holds the settings that can be stored in the config file.
type Config struct {
	Profile          string  `toml:"profile"`
	FXRate           float64 `toml:"fx_rate"`
	ProjectionMonths int     `toml:"projection_months"`
	Start            string  `toml:"start"`
}

// NewDefaultConfig returns a Config with the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Profile:          defaultProfileFile,
		FXRate:           wealth.DefaultFXRate,
		ProjectionMonths: wealth.DefaultProjectionMonths,
	}
}

// LoadConfig reads the config file at 'path' over the defaults. A missing
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	log.Printf("loaded config file %q", path)
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvProfileFile); v != "" {
		cfg.Profile = v
	}
	if v := os.Getenv(EnvFXRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvFXRate, v, err)
		}
		cfg.FXRate = rate
	}
	return nil
}

// applyFlagOverrides applies the global flags explicitly set on the command line.
func applyFlagOverrides(cfg *Config, set *flag.FlagSet) {
	set.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "profile":
			cfg.Profile = *profileFile
		case "fx":
			cfg.FXRate = *fxRate
		case "months":
			cfg.ProjectionMonths = *months
		case "start":
			cfg.Start = *start
		}
	})
}

// configPath returns the config file selected by the flag or the environment.
func configPath() string {
	if *configFile != "" {
		return *configFile
	}
	if v := os.Getenv(EnvConfigFile); v != "" {
		return v
	}
	return defaultConfigFile
}

// ResolveConfig merges, by increasing priority, the defaults, the config
// file, the environment and the global flags.
func ResolveConfig() (*Config, error) {
	cfg, err := LoadConfig(configPath())
	if err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	applyFlagOverrides(cfg, flag.CommandLine)
	return cfg, nil
}

// Options converts the config into engine options.
func (c *Config) Options() (wealth.Options, error) {
	opts := wealth.DefaultOptions()
	if c.FXRate < 0 {
		return opts, fmt.Errorf("invalid fx rate %v: must be positive", c.FXRate)
	}
	if c.FXRate > 0 {
		opts.FXRate = decimal.NewFromFloat(c.FXRate)
	}
	if c.ProjectionMonths > 0 {
		opts.ProjectionMonths = c.ProjectionMonths
	}
	if c.Start != "" {
		d, err := date.Parse(c.Start)
		if err != nil {
			return opts, fmt.Errorf("invalid projection start: %w", err)
		}
		opts.Start = d
	}
	return opts, nil
}
