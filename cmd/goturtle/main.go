// Package main is the entry point for the goturtle CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/goturtle/internal/cli"
	"github.com/yaklabco/goturtle/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrProblemsFound only signals the exit code; the diagnostics
		// have already been printed.
		if !errors.Is(err, cli.ErrProblemsFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return 0
}
