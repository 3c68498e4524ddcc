// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme    ColorScheme
		wantValid bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{ColorScheme("neon"), false},
		{ColorScheme(""), false},
	}

	for _, tt := range tests {
		err := tt.scheme.Validate()
		if (err == nil) != tt.wantValid {
			t.Errorf("ColorScheme(%q).Validate() error = %v, wantValid %v", tt.scheme, err, tt.wantValid)
		}
		if !tt.wantValid && !errors.Is(err, ErrInvalidColorScheme) {
			t.Errorf("error does not wrap ErrInvalidColorScheme: %v", err)
		}
	}
}

func TestOutputFormatValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format    OutputFormat
		wantValid bool
	}{
		{FormatTable, true},
		{FormatJSON, true},
		{OutputFormat("yaml"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		err := tt.format.Validate()
		if (err == nil) != tt.wantValid {
			t.Errorf("OutputFormat(%q).Validate() error = %v, wantValid %v", tt.format, err, tt.wantValid)
		}
		if !tt.wantValid && !errors.Is(err, ErrInvalidOutputFormat) {
			t.Errorf("error does not wrap ErrInvalidOutputFormat: %v", err)
		}
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}
