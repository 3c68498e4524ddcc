// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// FormatTable renders the classified view as a styled field table.
	FormatTable OutputFormat = "table"
	// FormatJSON renders the classified view as JSON.
	FormatJSON OutputFormat = "json"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)

type (
	// ColorScheme selects the terminal color scheme for styled output.
	ColorScheme string

	// OutputFormat selects how the inspect command renders a classified
	// command line.
	OutputFormat string

	// UIConfig holds user-interface settings for the CLI.
	UIConfig struct {
		// ColorScheme selects auto, dark, or light styling.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Format is the default output format for inspect.
		Format OutputFormat `mapstructure:"format"`
		// Verbose enables diagnostic logging.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root cmdlens configuration.
	Config struct {
		UI UIConfig `mapstructure:"ui"`
	}
)

// Validate returns an error if the ColorScheme is not a recognized value.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be auto, dark, or light)", ErrInvalidColorScheme, string(s))
	}
}

// Validate returns an error if the OutputFormat is not a recognized value.
func (f OutputFormat) Validate() error {
	switch f {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be table or json)", ErrInvalidOutputFormat, string(f))
	}
}

// Validate checks every typed field of the configuration.
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	return c.UI.Format.Validate()
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Format:      FormatTable,
			Verbose:     false,
		},
	}
}
