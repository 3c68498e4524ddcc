// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cmdlens.
//
// This package implements the Cobra command hierarchy for the cmdlens CLI:
// the root command, the inspect and check commands that exercise the
// pkg/cmdline classifier, and configuration display.
package cmd
