package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external wcs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "wcs-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv(os.Environ())

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}
	return true, 0
}

// extensionEnv appends the resolved settings to 'env'.
func extensionEnv(env []string) []string {
	cfg, err := ResolveConfig()
	if err != nil {
		log.Printf("cannot resolve config for the extension: %v", err)
		cfg = NewDefaultConfig()
	}
	env = append(env, EnvProfileFile+"="+cfg.Profile)
	env = append(env, EnvConfigFile+"="+configPath())
	env = append(env, EnvFXRate+"="+strconv.FormatFloat(cfg.FXRate, 'f', -1, 64))
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	return env
}
