// Package cli provides the Cobra command structure for sentlint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/sentlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sentlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "sentlint",
		Short: "Checks that every sentence in Markdown prose starts on a new line",
		Long: `sentlint enforces the sentence-newline rule in Markdown sources:
each sentence must begin at the start of a line.

Starting sentences on their own lines keeps diffs small. When sentences
begin at arbitrary positions and one of them is amended, the rest of the
paragraph reflows and every following line changes.

The rule can be suspended for a span of lines:

  <!-- ignore(sentence-newline) -->
  ...
  <!-- unignore(sentence-newline) -->

Fenced code blocks are always exempt.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
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
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
