// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"slices"
	"testing"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{
			name: "executable only",
			argv: []string{"app"},
			want: nil,
		},
		{
			name: "mixed short long and definition options",
			argv: []string{"tester", "subcommand", "-o", "spacedefinition", "--longoption", "--defoption=equaldefinition", "lastpos"},
			want: []string{"-o", "--longoption", "--defoption"},
		},
		{
			name: "definition reduced to name part",
			argv: []string{"app", "--opt=val"},
			want: []string{"--opt"},
		},
		{
			name: "lone hyphen is never an option",
			argv: []string{"app", "-"},
			want: nil,
		},
		{
			name: "scanning stops at double hyphen",
			argv: []string{"app", "-o", "--", "--keep", "-x"},
			want: []string{"-o"},
		},
		{
			name: "double hyphen as first argument",
			argv: []string{"app", "--", "-a", "-b"},
			want: nil,
		},
		{
			name: "order preserved",
			argv: []string{"app", "-b", "-a", "--zeta", "--alpha"},
			want: []string{"-b", "-a", "--zeta", "--alpha"},
		},
		{
			name: "value with further equals stays out of the name",
			argv: []string{"app", "--opt=a=b"},
			want: []string{"--opt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseOptions(tt.argv); !slices.Equal(got, tt.want) {
				t.Errorf("ParseOptions(%q) = %q, want %q", tt.argv, got, tt.want)
			}
		})
	}
}

func TestParseDefinitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want map[string]string
	}{
		{
			name: "no definitions",
			argv: []string{"app", "-o", "sub"},
			want: map[string]string{},
		},
		{
			name: "single definition",
			argv: []string{"app", "--opt=val", "sub"},
			want: map[string]string{"--opt": "val"},
		},
		{
			name: "short definition",
			argv: []string{"app", "-n=3"},
			want: map[string]string{"-n": "3"},
		},
		{
			name: "empty value after equals is valid",
			argv: []string{"app", "--opt="},
			want: map[string]string{"--opt": ""},
		},
		{
			name: "split on first equals only",
			argv: []string{"app", "--path=a=b=c"},
			want: map[string]string{"--path": "a=b=c"},
		},
		{
			name: "later occurrence wins",
			argv: []string{"app", "--opt=first", "--opt=second"},
			want: map[string]string{"--opt": "second"},
		},
		{
			name: "scanning stops at double hyphen",
			argv: []string{"app", "--keep=yes", "--", "--drop=no"},
			want: map[string]string{"--keep": "yes"},
		},
		{
			name: "non-option tokens with equals are ignored",
			argv: []string{"app", "key=value"},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseDefinitions(tt.argv)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseDefinitions(%q) = %v, want %v", tt.argv, got, tt.want)
			}
			for name, value := range tt.want {
				if gotValue, ok := got[name]; !ok || gotValue != value {
					t.Errorf("ParseDefinitions(%q)[%q] = %q, %v, want %q", tt.argv, name, gotValue, ok, value)
				}
			}
		})
	}
}

func TestIsDefinitionOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  bool
	}{
		{"--option=definition", true},
		{"--option", false},
		{"-o=x", true},
		{"--opt=", true},
		{"-o", false},
	}

	for _, tt := range tests {
		if got := IsDefinitionOption(tt.token); got != tt.want {
			t.Errorf("IsDefinitionOption(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestDefinitionParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token     string
		wantName  string
		wantValue string
	}{
		{"--option=definition", "--option", "definition"},
		{"--opt=", "--opt", ""},
		{"-n=3", "-n", "3"},
		{"--path=a=b=c", "--path", "a=b=c"},
	}

	for _, tt := range tests {
		name, value := DefinitionParts(tt.token)
		if name != tt.wantName || value != tt.wantValue {
			t.Errorf("DefinitionParts(%q) = %q, %q, want %q, %q", tt.token, name, value, tt.wantName, tt.wantValue)
		}
	}
}

func TestDefinitionPartsPanicsWithoutEquals(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("DefinitionParts did not panic on a token without '='")
		}
	}()
	DefinitionParts("--option")
}

func TestParseDoubleHyphenArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{
			name: "no sentinel",
			argv: []string{"app", "-o", "sub"},
			want: nil,
		},
		{
			name: "sentinel with nothing after it",
			argv: []string{"app", "-o", "--"},
			want: nil,
		},
		{
			name: "tokens after sentinel pass through raw",
			argv: []string{"app", "-o", "--", "--keep", "-x"},
			want: []string{"--keep", "-x"},
		},
		{
			name: "only first sentinel counts",
			argv: []string{"app", "--", "a", "--", "b"},
			want: []string{"a", "--", "b"},
		},
		{
			name: "long option is not a sentinel",
			argv: []string{"app", "--force", "sub"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseDoubleHyphenArgs(tt.argv)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseDoubleHyphenArgs(%q) = %q, want %q", tt.argv, got, tt.want)
			}
			if (got == nil) != (tt.want == nil) {
				t.Errorf("ParseDoubleHyphenArgs(%q) presence = %v, want %v", tt.argv, got != nil, tt.want != nil)
			}
		})
	}
}

func TestExpandMops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options []string
		want    []string
	}{
		{
			name:    "no options",
			options: nil,
			want:    nil,
		},
		{
			name:    "only long options yield absent expansion",
			options: []string{"--help", "--verbose"},
			want:    nil,
		},
		{
			name:    "bundle expands in character order",
			options: []string{"-abc"},
			want:    []string{"-a", "-b", "-c"},
		},
		{
			name:    "single-character shorts pass through",
			options: []string{"-hij", "-l"},
			want:    []string{"-h", "-i", "-j", "-l"},
		},
		{
			name:    "long options dropped from expansion",
			options: []string{"-ab", "--long", "-c"},
			want:    []string{"-a", "-b", "-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExpandMops(tt.options)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExpandMops(%q) = %q, want %q", tt.options, got, tt.want)
			}
			if (got == nil) != (tt.want == nil) {
				t.Errorf("ExpandMops(%q) presence = %v, want %v", tt.options, got != nil, tt.want != nil)
			}
		})
	}
}

func TestLastOptionIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want int
	}{
		{name: "no options", argv: []string{"app", "sub"}, want: 0},
		{name: "executable only", argv: []string{"app"}, want: 0},
		{name: "single option", argv: []string{"app", "-o"}, want: 1},
		{name: "rightmost option wins", argv: []string{"app", "-a", "sub", "--b"}, want: 3},
		{name: "options after sentinel do not count", argv: []string{"app", "-a", "--", "-z"}, want: 1},
		{name: "lone hyphen does not count", argv: []string{"app", "-a", "-"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := LastOptionIndex(tt.argv); got != tt.want {
				t.Errorf("LastOptionIndex(%q) = %d, want %d", tt.argv, got, tt.want)
			}
		})
	}
}
