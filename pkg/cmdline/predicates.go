// SPDX-License-Identifier: MPL-2.0

package cmdline

import "slices"

// IsHelpRequest reports whether the invocation asked for help via "-h" or
// "--help".
func (c *Command) IsHelpRequest() bool {
	return c.ContainsOption("-h") || c.ContainsOption("--help")
}

// IsVersionRequest reports whether the invocation asked for the version via
// "-v" or "--version".
func (c *Command) IsVersionRequest() bool {
	return c.ContainsOption("-v") || c.ContainsOption("--version")
}

// IsUsageRequest reports whether the invocation asked for usage via
// "--usage".
func (c *Command) IsUsageRequest() bool {
	return c.ContainsOption("--usage")
}

// HasInvalidOptions reports whether any classified option is missing from
// the caller-supplied allow-list. An invocation without options is vacuously
// valid.
func (c *Command) HasInvalidOptions(valid []string) bool {
	for _, opt := range c.Options {
		if !slices.Contains(valid, opt) {
			return true
		}
	}
	return false
}

// HasInvalidDefinitions reports whether any classified definition name is
// missing from the caller-supplied allow-list. An invocation without
// definitions is vacuously valid.
func (c *Command) HasInvalidDefinitions(valid []string) bool {
	for name := range c.Definitions {
		if !slices.Contains(valid, name) {
			return true
		}
	}
	return false
}
