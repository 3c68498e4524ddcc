// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the cmdlens CLI configuration.
//
// Configuration lives in a TOML file under the platform config directory
// (e.g. $XDG_CONFIG_HOME/cmdlens/config.toml on Linux) and is read through
// viper. Only the CLI consults it; the cmdline library itself reads no
// configuration or environment.
package config
