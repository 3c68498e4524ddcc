// SPDX-License-Identifier: MPL-2.0

// Package optpath provides typed wrappers around path/filepath functions for
// path-valued option and definition strings (e.g. the value of
// "--output=dir/file.txt"). Each wrapper accepts and returns OptionPath so
// path-valued command-line data stays typed from classification to use.
package optpath

import (
	"fmt"
	"path/filepath"
)

// OptionPath is a filesystem path carried as an option or definition value.
type OptionPath string

// String returns the path as a plain string.
func (p OptionPath) String() string { return string(p) }

// Join wraps filepath.Join, accepting and returning OptionPath.
func Join(elem ...OptionPath) OptionPath {
	strs := make([]string, len(elem))
	for i, e := range elem {
		strs[i] = string(e)
	}
	return OptionPath(filepath.Join(strs...))
}

// Dir wraps filepath.Dir for OptionPath.
func Dir(p OptionPath) OptionPath {
	return OptionPath(filepath.Dir(string(p)))
}

// Base wraps filepath.Base for OptionPath.
func Base(p OptionPath) OptionPath {
	return OptionPath(filepath.Base(string(p)))
}

// Ext wraps filepath.Ext for OptionPath.
func Ext(p OptionPath) string {
	return filepath.Ext(string(p))
}

// Abs wraps filepath.Abs for OptionPath. Returns an error if the underlying
// OS call fails.
func Abs(p OptionPath) (OptionPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return OptionPath(abs), nil
}

// Clean wraps filepath.Clean for OptionPath.
func Clean(p OptionPath) OptionPath {
	return OptionPath(filepath.Clean(string(p)))
}

// FromSlash wraps filepath.FromSlash for OptionPath. Converts forward
// slashes to the OS-specific path separator.
func FromSlash(p OptionPath) OptionPath {
	return OptionPath(filepath.FromSlash(string(p)))
}

// IsAbs wraps filepath.IsAbs for OptionPath.
func IsAbs(p OptionPath) bool {
	return filepath.IsAbs(string(p))
}
