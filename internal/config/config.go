// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"cmdlens/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "cmdlens"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// ConfigDir returns the cmdlens configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the cmdlens configuration. A custom file set via
// SetConfigFilePathOverride is used exclusively; otherwise the platform
// config directory and the current directory are searched. A missing file is
// not an error: defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.format", defaults.UI.Format)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	if configFileOverride != "" {
		if !fileExists(configFileOverride) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFileOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'cmdlens config show' to see the default configuration").
				Wrap(fmt.Errorf("config file not found: %s", configFileOverride)).
				BuildError()
		}
		v.SetConfigFile(configFileOverride)
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(cfgDir)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No config file: defaults apply.
			return DefaultConfig(), nil
		}
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(v.ConfigFileUsed()).
			WithSuggestion("Check that the file contains valid TOML syntax").
			WithSuggestion("See 'cmdlens config --help' for configuration options").
			Wrap(err).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(v.ConfigFileUsed()).
			WithSuggestion("Use one of the values listed in the error message").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
