// SPDX-License-Identifier: MPL-2.0

package cmdline

import "slices"

// HasArgs reports whether the invocation carried any arguments beyond the
// executable path.
func (c *Command) HasArgs() bool { return c.Argc > 1 }

// HasOptions reports whether any option tokens were classified.
func (c *Command) HasOptions() bool { return len(c.Options) > 0 }

// HasDefinitions reports whether any "option=value" definitions were
// classified.
func (c *Command) HasDefinitions() bool { return len(c.Definitions) > 0 }

// HasMops reports whether the invocation carried any short options, i.e.
// whether the multi-option short syntax expansion is present.
func (c *Command) HasMops() bool { return c.Mops != nil }

// HasDoubleHyphenArgs reports whether any tokens followed a "--" sentinel.
func (c *Command) HasDoubleHyphenArgs() bool { return c.DoubleHyphenArgv != nil }

// ContainsArg reports whether needle appears among the arguments after the
// executable path, by exact string comparison against raw argv.
func (c *Command) ContainsArg(needle string) bool {
	return slices.Contains(c.Argv[1:], needle)
}

// ContainsOption reports whether needle appears in the classified options.
func (c *Command) ContainsOption(needle string) bool {
	return slices.Contains(c.Options, needle)
}

// ContainsDefinition reports whether needle is a classified definition name.
func (c *Command) ContainsDefinition(needle string) bool {
	_, ok := c.Definitions[needle]
	return ok
}

// ContainsMops reports whether needle appears in the expanded short option
// switches. An absent expansion yields false, never an error.
func (c *Command) ContainsMops(needle string) bool {
	return c.Mops != nil && slices.Contains(c.Mops, needle)
}

// ContainsAllArgs reports whether every needle appears among the arguments.
// An empty needle list is vacuously true.
func (c *Command) ContainsAllArgs(needles []string) bool {
	for _, n := range needles {
		if !c.ContainsArg(n) {
			return false
		}
	}
	return true
}

// ContainsAnyArgs reports whether at least one needle appears among the
// arguments. An empty needle list yields false.
func (c *Command) ContainsAnyArgs(needles []string) bool {
	return slices.ContainsFunc(needles, c.ContainsArg)
}

// ContainsAllOptions reports whether every needle is a classified option.
// An empty needle list is vacuously true.
func (c *Command) ContainsAllOptions(needles []string) bool {
	for _, n := range needles {
		if !c.ContainsOption(n) {
			return false
		}
	}
	return true
}

// ContainsAnyOptions reports whether at least one needle is a classified
// option.
func (c *Command) ContainsAnyOptions(needles []string) bool {
	return slices.ContainsFunc(needles, c.ContainsOption)
}

// ContainsAllDefinitions reports whether every needle is a classified
// definition name. An empty needle list is vacuously true.
func (c *Command) ContainsAllDefinitions(needles []string) bool {
	for _, n := range needles {
		if !c.ContainsDefinition(n) {
			return false
		}
	}
	return true
}

// ContainsAnyDefinitions reports whether at least one needle is a classified
// definition name.
func (c *Command) ContainsAnyDefinitions(needles []string) bool {
	return slices.ContainsFunc(needles, c.ContainsDefinition)
}

// ContainsAllMops reports whether every needle appears in the expanded short
// option switches. When no expansion is present the result is false before
// needles are even inspected.
func (c *Command) ContainsAllMops(needles []string) bool {
	if c.Mops == nil {
		return false
	}
	for _, n := range needles {
		if !slices.Contains(c.Mops, n) {
			return false
		}
	}
	return true
}

// ContainsAnyMops reports whether at least one needle appears in the
// expanded short option switches. When no expansion is present the result is
// false before needles are even inspected.
func (c *Command) ContainsAnyMops(needles []string) bool {
	if c.Mops == nil {
		return false
	}
	return slices.ContainsFunc(needles, c.ContainsMops)
}

// ContainsSequence reports whether needles appear starting at argv index 1
// in exactly that order with no gaps. It is false when needles is empty or
// longer than the available arguments.
func (c *Command) ContainsSequence(needles []string) bool {
	if len(needles) == 0 || len(needles) > c.Argc-1 {
		return false
	}
	for i, n := range needles {
		if c.Argv[i+1] != n {
			return false
		}
	}
	return true
}
