// SPDX-License-Identifier: MPL-2.0

package cmdline

import "slices"

// ArgAt returns the argv token at index i. The second return is false when
// the index is out of range.
func (c *Command) ArgAt(i int) (string, bool) {
	if i < 0 || i >= c.Argc {
		return "", false
	}
	return c.Argv[i], true
}

// IndexOf returns the argv index of the first exact occurrence of needle.
// The second return is false when needle is absent.
func (c *Command) IndexOf(needle string) (int, bool) {
	if i := slices.Index(c.Argv, needle); i >= 0 {
		return i, true
	}
	return 0, false
}

// ArgAfter returns the token immediately following the first occurrence of
// needle. The second return is false when needle is absent or is the last
// token.
func (c *Command) ArgAfter(needle string) (string, bool) {
	i, ok := c.IndexOf(needle)
	if !ok || i+1 >= c.Argc {
		return "", false
	}
	return c.Argv[i+1], true
}

// ArgsAfter returns a copy of all tokens from the position after the first
// occurrence of needle through the end of argv. The second return is false
// when needle is absent or is the last token.
func (c *Command) ArgsAfter(needle string) ([]string, bool) {
	i, ok := c.IndexOf(needle)
	if !ok || i+1 >= c.Argc {
		return nil, false
	}
	return slices.Clone(c.Argv[i+1:]), true
}

// Definition returns the value recorded for the definition option name.
// The second return is false when no such definition was classified.
func (c *Command) Definition(name string) (string, bool) {
	value, ok := c.Definitions[name]
	return value, ok
}

// FirstArg returns the first argument after the executable path. The second
// return is false when the invocation carried no arguments.
func (c *Command) FirstArg() (string, bool) {
	return c.firstArg, c.Argc > 1
}

// LastArg returns the last argv token. The second return is false when the
// invocation carried no arguments beyond the executable path.
func (c *Command) LastArg() (string, bool) {
	return c.lastArg, c.Argc > 1
}

// ArgsAfterDoubleHyphen returns a copy of the raw tokens after the first
// "--" sentinel. The second return is false when there is no sentinel or
// nothing follows it.
func (c *Command) ArgsAfterDoubleHyphen() ([]string, bool) {
	if c.DoubleHyphenArgv == nil {
		return nil, false
	}
	return slices.Clone(c.DoubleHyphenArgv), true
}

// LastOptionIndex returns the argv index of the rightmost option before any
// "--" sentinel, or 0 when the invocation carried no options.
func (c *Command) LastOptionIndex() int {
	return c.LastOptIndex
}
