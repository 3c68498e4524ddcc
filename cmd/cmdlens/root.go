// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cmdlens/internal/config"
	"cmdlens/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables diagnostic output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// outputFormat selects how classified views are rendered
	outputFormat string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cmdlens",
		Short: "A classifier and inspector for POSIX/GNU command lines",
		Long: TitleStyle.Render("cmdlens") + SubtitleStyle.Render(" - A classifier and inspector for POSIX/GNU command lines") + `

cmdlens takes the raw argument sequence of a command-line invocation and
partitions it into options, option=value definitions, positional arguments,
and double-hyphen trailing arguments, then answers structured questions
about the result.

` + SubtitleStyle.Render("Examples:") + `
  cmdlens inspect -- mytool --level=debug build     Classify an invocation
  cmdlens inspect --format json -- mytool -abc      Machine-readable output
  cmdlens check --valid-options -a,-b -- mytool -c  Validate against an allow-list
  cmdlens config show                               Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cmdlens/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply config values not overridden via flags
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if cfg != nil && outputFormat == "" {
		outputFormat = string(cfg.UI.Format)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
