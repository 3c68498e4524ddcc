// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"fmt"
	"os"
	"strings"
)

// Command is an immutable, classified view over one command-line invocation.
// It is built once by New, which runs every classifier eagerly; no field is
// recomputed afterwards and no method mutates the view, so a Command is safe
// to share read-only across goroutines without locking.
//
// Exported fields are owned by the Command and must be treated as read-only
// by callers.
type Command struct {
	// Argv is the full argument vector. Argv[0] is the executable path.
	Argv []string

	// Argc is len(Argv).
	Argc int

	// Executable is Argv[0].
	Executable string

	// Options holds the option names in first-seen argv order, with
	// definition options reduced to their name part. Scanning stopped at
	// the first "--" sentinel; "-" and "--" themselves are excluded.
	Options []string

	// Definitions maps definition option names to their values, populated
	// up to the first "--" sentinel. Later occurrences of a name overwrite
	// earlier ones.
	Definitions map[string]string

	// DoubleHyphenArgv holds the raw tokens after the first "--" sentinel,
	// or nil when there is no sentinel or nothing follows it.
	DoubleHyphenArgv []string

	// Mops is the multi-option short syntax expansion of Options, or nil
	// when the invocation carried no short options.
	Mops []string

	// LastOptIndex is the argv index of the rightmost option before any
	// "--" sentinel, or 0 when there are no options.
	LastOptIndex int

	firstArg string
	lastArg  string
}

// New builds a Command view from a raw argument vector. The vector is cloned,
// so the caller keeps ownership of its slice.
//
// argv must be non-empty: index 0 is always the executable path. An empty
// argv cannot occur through process startup and is a caller contract
// violation, so New panics on it rather than returning an error.
func New(argv []string) *Command {
	if len(argv) == 0 {
		panic("cmdline: New requires non-empty argv (argv[0] is the executable path)")
	}

	own := make([]string, len(argv))
	copy(own, argv)

	options := ParseOptions(own)
	c := &Command{
		Argv:             own,
		Argc:             len(own),
		Executable:       own[0],
		Options:          options,
		Definitions:      ParseDefinitions(own),
		DoubleHyphenArgv: ParseDoubleHyphenArgs(own),
		Mops:             ExpandMops(options),
		LastOptIndex:     LastOptionIndex(own),
	}
	if c.Argc > 1 {
		c.firstArg = own[1]
		c.lastArg = own[c.Argc-1]
	}
	return c
}

// FromOSArgs builds a Command view from the current process arguments.
func FromOSArgs() *Command {
	return New(os.Args)
}

// String renders the invocation as "Command: '<argv joined by spaces>'".
func (c *Command) String() string {
	return fmt.Sprintf("Command: '%s'", strings.Join(c.Argv, " "))
}
