package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sentlint/internal/configloader"
	"github.com/yaklabco/sentlint/internal/logging"
	"github.com/yaklabco/sentlint/pkg/config"
	"github.com/yaklabco/sentlint/pkg/lint"
	"github.com/yaklabco/sentlint/pkg/reporter"
	"github.com/yaklabco/sentlint/pkg/runner"
)

// ErrIssuesFound is returned when the check found rule violations.
var ErrIssuesFound = errors.New("issues found")

type checkFlags struct {
	format string
	ignore []string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <directory>",
		Short: "Check Markdown files for sentences that do not start a line",
		Long:  checkLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")

	return cmd
}

const checkLongDescription = `Recursively check all Markdown files under a directory.

Each violation is reported on the error stream as:

  <path>, line <n>: <message>

The exit status is 0 when no file produced a violation and 1 otherwise.
The whole tree is always scanned; the check never stops at the first
violation.

Examples:
  sentlint check ./docs                 # Check the docs tree
  sentlint check . --ignore 'vendor/**' # Skip vendored files
  sentlint check ./docs --format json   # Machine-readable output for CI`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldPath, loadResult.LoadedFrom)
	}

	// CLI flags take precedence over the config file.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	checker := &lint.Checker{MaxIgnoreLines: cfg.MaxIgnoreLines}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Config:       cfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := runner.New(checker).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	logger.Debug("check run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      cfg.Format,
		Color:       colorMode,
		ShowSummary: true,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}
