// SPDX-License-Identifier: MPL-2.0

// Package cmdline classifies the raw argument sequence of a command-line
// invocation into a structured, queryable view.
//
// The package has two layers. The classifier functions (ParseOptions,
// ParseDefinitions, ParseDoubleHyphenArgs, ExpandMops, LastOptionIndex) are
// pure functions over an argv slice, each producing one classification.
// The Command type is built once from a raw argv by running every classifier
// and storing the results; all query methods are read-only lookups over those
// precomputed fields.
//
// Classification follows POSIX/GNU conventions: tokens beginning with a
// hyphen are options, "option=value" tokens are definitions, the literal "--"
// stops option scanning and marks everything after it as raw trailing
// arguments, the lone "-" is never an option, and multi-character short
// option bundles like "-abc" expand to "-a", "-b", "-c".
//
//	c := cmdline.New([]string{"app", "--level=debug", "--", "-file"})
//	c.Definition("--level")        // "debug", true
//	c.ArgsAfterDoubleHyphen()      // ["-file"], true
package cmdline
