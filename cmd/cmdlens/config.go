// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"cmdlens/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `cmdlens config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cmdlens configuration",
	Long: `Manage cmdlens configuration.

Configuration is stored in:
  - Linux: ~/.config/cmdlens/config.toml
  - macOS: ~/Library/Application Support/cmdlens/config.toml
  - Windows: %APPDATA%\cmdlens\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd)
		},
	})
}

func showConfig(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("cmdlens configuration"))
	fmt.Fprintf(out, "  %s %s\n", FieldStyle.Render(fmt.Sprintf("%-14s", "color scheme")), ValueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(out, "  %s %s\n", FieldStyle.Render(fmt.Sprintf("%-14s", "format")), ValueStyle.Render(string(cfg.UI.Format)))
	fmt.Fprintf(out, "  %s %s\n", FieldStyle.Render(fmt.Sprintf("%-14s", "verbose")), ValueStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))
	return nil
}

func showConfigPath(cmd *cobra.Command) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
