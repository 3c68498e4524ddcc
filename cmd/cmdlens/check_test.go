// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"
)

func setAllowLists(t *testing.T, options, definitions []string) {
	t.Helper()

	origOptions, origDefinitions := validOptions, validDefinitions
	t.Cleanup(func() { validOptions, validDefinitions = origOptions, origDefinitions })
	validOptions = options
	validDefinitions = definitions
}

func TestRunCheckAllowsKnownOptions(t *testing.T) {
	// Not parallel: mutates package-level allow-list vars.
	setAllowLists(t, []string{"-v", "--verbose"}, []string{"--level"})

	c, stdout, _ := newCaptureCommand()
	if err := runCheck(c, []string{"mytool", "--verbose", "--level=debug", "build"}); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "ok") {
		t.Errorf("check output missing success marker:\n%s", stdout.String())
	}
}

func TestRunCheckRejectsUnknownOption(t *testing.T) {
	setAllowLists(t, []string{"-v"}, nil)

	c, _, stderr := newCaptureCommand()
	err := runCheck(c, []string{"mytool", "--bogus"})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("runCheck() error = %v, want ExitError with code 1", err)
	}
	if !strings.Contains(stderr.String(), "--bogus") {
		t.Errorf("check output does not name the offending option:\n%s", stderr.String())
	}
}

func TestRunCheckRejectsUnknownDefinition(t *testing.T) {
	setAllowLists(t, nil, []string{"--level"})

	c, _, stderr := newCaptureCommand()
	err := runCheck(c, []string{"mytool", "--bogus=1"})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("runCheck() error = %v, want ExitError with code 1", err)
	}
	if !strings.Contains(stderr.String(), "--bogus") {
		t.Errorf("check output does not name the offending definition:\n%s", stderr.String())
	}
}

func TestRunCheckVacuouslyValid(t *testing.T) {
	setAllowLists(t, nil, nil)

	c, stdout, _ := newCaptureCommand()
	if err := runCheck(c, []string{"mytool", "positional"}); err != nil {
		t.Fatalf("runCheck() on an option-free command line error = %v", err)
	}
	if !strings.Contains(stdout.String(), "ok") {
		t.Errorf("check output missing success marker:\n%s", stdout.String())
	}
}

func TestRunCheckEmptyArgvFails(t *testing.T) {
	setAllowLists(t, nil, nil)

	c, _, _ := newCaptureCommand()
	err := runCheck(c, nil)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Fatalf("runCheck(nil) error = %v, want ExitError with code 2", err)
	}
}
