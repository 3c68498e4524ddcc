// SPDX-License-Identifier: MPL-2.0

package cmdline

import "strings"

const (
	// hyphen is the lone "-" token, the POSIX stdin/stdout placeholder.
	// It is never classified as an option.
	hyphen = "-"

	// doubleHyphen is the sentinel that terminates option scanning.
	// Only an exact match counts; "--foo" is a long option, not a sentinel.
	doubleHyphen = "--"
)

// isOptionToken reports whether arg is classified as an option token:
// it begins with a hyphen and is neither the lone "-" placeholder nor the
// "--" sentinel.
func isOptionToken(arg string) bool {
	return strings.HasPrefix(arg, hyphen) && arg != hyphen && arg != doubleHyphen
}

// ParseOptions returns the option names found in argv, in argv order.
// Definition options ("--opt=val") contribute only the name part before the
// first '='. Scanning stops at the first "--" sentinel; the lone "-" is
// skipped. The function never fails: any input yields a (possibly empty)
// result.
func ParseOptions(argv []string) []string {
	var options []string
	for _, arg := range argv {
		if arg == doubleHyphen {
			break
		}
		if !isOptionToken(arg) {
			continue
		}
		if IsDefinitionOption(arg) {
			name, _ := DefinitionParts(arg)
			options = append(options, name)
		} else {
			options = append(options, arg)
		}
	}
	return options
}

// ParseDefinitions returns the option-name to value mapping for every
// definition option in argv, scanned up to (not including) the first "--"
// sentinel. Values are everything after the first '=', so "--opt=a=b" maps
// "--opt" to "a=b", and "--opt=" maps "--opt" to the empty string. When the
// same name appears more than once, the later occurrence wins.
func ParseDefinitions(argv []string) map[string]string {
	definitions := make(map[string]string)
	for _, arg := range argv {
		if arg == doubleHyphen {
			break
		}
		if isOptionToken(arg) && IsDefinitionOption(arg) {
			name, value := DefinitionParts(arg)
			definitions[name] = value
		}
	}
	return definitions
}

// IsDefinitionOption reports whether token carries an inline definition,
// i.e. contains at least one '=' character.
func IsDefinitionOption(token string) bool {
	return strings.Contains(token, "=")
}

// DefinitionParts splits a definition option into its name and value around
// the first '='. Further '=' characters remain part of the value.
//
// Precondition: token contains '='. Callers must check with
// IsDefinitionOption first; passing a token without '=' is a contract
// violation and panics.
func DefinitionParts(token string) (name, value string) {
	eq := strings.IndexByte(token, '=')
	if eq < 0 {
		panic("cmdline: DefinitionParts requires a token containing '='")
	}
	return token[:eq], token[eq+1:]
}

// ParseDoubleHyphenArgs returns a copy of all tokens strictly after the
// first exact "--" sentinel, without any option interpretation. The result
// is nil when argv has no sentinel, or when nothing follows it; absence and
// emptiness are deliberately distinct.
func ParseDoubleHyphenArgs(argv []string) []string {
	for i, arg := range argv {
		if arg != doubleHyphen {
			continue
		}
		if i+1 >= len(argv) {
			return nil
		}
		trailing := make([]string, len(argv)-i-1)
		copy(trailing, argv[i+1:])
		return trailing
	}
	return nil
}

// ExpandMops expands multi-option short syntax over an already-scanned
// options list (as produced by ParseOptions). Every short option with more
// than one character after the hyphen is expanded character by character
// into independent "-<char>" switches, preserving order; single-character
// shorts pass through unexpanded; long options are dropped. The result is
// nil when the list holds no short options at all, so callers can tell "no
// shorts present" apart from "shorts present but none matched".
//
// Expansion iterates Unicode scalars, but the syntax assumes Basic Latin
// switch characters; it is not safe for combining sequences.
func ExpandMops(options []string) []string {
	var mops []string
	for _, opt := range options {
		if strings.HasPrefix(opt, doubleHyphen) {
			continue
		}
		switches := []rune(strings.TrimPrefix(opt, hyphen))
		if len(switches) > 1 {
			for _, r := range switches {
				mops = append(mops, hyphen+string(r))
			}
		} else {
			mops = append(mops, opt)
		}
	}
	return mops
}

// LastOptionIndex returns the argv index of the rightmost token classified
// as an option before any "--" sentinel, or 0 when argv holds no options.
func LastOptionIndex(argv []string) int {
	last := 0
	for i, arg := range argv {
		if arg == doubleHyphen {
			break
		}
		if isOptionToken(arg) {
			last = i
		}
	}
	return last
}
