// Package cli provides the Cobra command structure for goturtle.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goturtle/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goturtle command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goturtle",
		Short: "A fast, recovering Turtle (TTL) parser and validator",
		Long: `goturtle parses RDF Turtle documents with aggressive error recovery,
reporting every problem it finds in one pass instead of stopping at the
first. Diagnostics come with source snippets, caret underlines, and
fix suggestions, in formats suited to terminals and CI alike.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
