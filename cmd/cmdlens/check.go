// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"

	"cmdlens/internal/issue"
	"cmdlens/pkg/cmdline"

	"github.com/spf13/cobra"
)

var (
	validOptions     []string
	validDefinitions []string
)

// checkCmd validates a command line against caller-supplied allow-lists.
var checkCmd = &cobra.Command{
	Use:   "check [flags] -- ARGV...",
	Short: "Validate a command line against option allow-lists",
	Long: `Check that every classified option and definition of the given command
line appears in the supplied allow-lists. The command exits non-zero when an
unknown option or definition is present.

A command line without options or definitions is always valid.

Examples:
  cmdlens check --valid-options -v,--verbose -- mytool --verbose build
  cmdlens check --valid-definitions --level -- mytool --level=debug`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVar(&validOptions, "valid-options", nil, "allowed option names (comma-separated)")
	checkCmd.Flags().StringSliceVar(&validDefinitions, "valid-definitions", nil, "allowed definition names (comma-separated)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if len(args) == 0 {
		rendered, _ := issue.Get(issue.EmptyCommandLineId).Render("dark")
		fmt.Fprint(cmd.ErrOrStderr(), rendered)
		return &ExitError{Code: 2, Err: issue.NewActionableError("check command line")}
	}

	view := cmdline.New(args)
	logger.Debug("checking command line",
		"options", len(view.Options),
		"definitions", len(view.Definitions),
		"valid_options", len(validOptions),
		"valid_definitions", len(validDefinitions),
	)

	// When no definition allow-list is given, definition names fall back to
	// the option allow-list (a definition is still an option).
	defAllowList := validDefinitions
	if defAllowList == nil {
		defAllowList = validOptions
	}

	badOptions := view.HasInvalidOptions(append(slices.Clone(validOptions), validDefinitions...))
	badDefinitions := view.HasInvalidDefinitions(defAllowList)
	if !badOptions && !badDefinitions {
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("ok: ")+view.String())
		return nil
	}

	for _, opt := range view.Options {
		if !slices.Contains(validOptions, opt) && !slices.Contains(validDefinitions, opt) {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("unknown option: ")+opt)
		}
	}
	for name := range view.Definitions {
		if !slices.Contains(defAllowList, name) {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("unknown definition: ")+name)
		}
	}

	rendered, _ := issue.Get(issue.InvalidOptionsId).Render("dark")
	fmt.Fprint(cmd.ErrOrStderr(), rendered)
	return &ExitError{Code: 1, Err: issue.NewActionableError("check command line")}
}
