// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"cmdlens/internal/config"
	"cmdlens/internal/issue"
	"cmdlens/pkg/cmdline"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// inspectCmd classifies a simulated command line and prints the result.
var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] -- ARGV...",
	Short: "Classify a command line into its structured view",
	Long: `Classify the given argument sequence the way a process would see it:
the executable path, options, option=value definitions, positional
boundaries, multi-option short syntax, and double-hyphen trailing arguments.

The simulated command line goes after the terminator so cmdlens's own flags
never interfere with it. The first token is the executable path.

Examples:
  cmdlens inspect -- mytool --level=debug build
  cmdlens inspect --format json -- mytool -abc -- file-with-hyphen`,
	Args: cobra.ArbitraryArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&outputFormat, "format", "", "output format: table or json (default from config)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if len(args) == 0 {
		rendered, _ := issue.Get(issue.EmptyCommandLineId).Render("dark")
		fmt.Fprint(cmd.ErrOrStderr(), rendered)
		return &ExitError{Code: 2, Err: issue.NewActionableError("inspect command line")}
	}

	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	view := cmdline.New(args)
	logger.Debug("classified command line",
		"argc", view.Argc,
		"options", len(view.Options),
		"definitions", len(view.Definitions),
		"mops", view.HasMops(),
		"trailing", view.HasDoubleHyphenArgs(),
	)

	var out string
	switch format {
	case config.FormatJSON:
		out, err = renderJSON(view)
	default:
		out = renderTable(view)
	}
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("render classified view").
			Wrap(err).
			BuildError()
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// resolveFormat picks the output format from the flag or config default and
// validates it.
func resolveFormat(cmd *cobra.Command) (config.OutputFormat, error) {
	format := config.OutputFormat(outputFormat)
	if format == "" {
		format = config.FormatTable
	}
	if err := format.Validate(); err != nil {
		rendered, _ := issue.Get(issue.UnknownFormatId).Render("dark")
		fmt.Fprint(cmd.ErrOrStderr(), rendered)
		return "", &ExitError{Code: 2, Err: err}
	}
	return format, nil
}

// newLogger builds the CLI diagnostic logger. Debug messages appear only in
// verbose mode.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cmdlens",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
